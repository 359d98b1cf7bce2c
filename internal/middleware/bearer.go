package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lightechllc/authcore/internal/models"
	"github.com/lightechllc/authcore/pkg/response"
)

// Context keys set by the bearer authenticator.
const (
	ContextUserKey  = "currentUser"
	ContextTokenKey = "accessToken"
)

type bearerAuthenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*models.User, *models.AccessToken, error)
}

// Bearer protects routes behind a valid access token. Any failure, including
// a malformed header, yields 401 with no indication of the cause.
func Bearer(svc bearerAuthenticator, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthenticated(c)
			return
		}

		user, token, err := svc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			logger.Error("bearer authentication failed", zap.Error(err))
			response.Unauthenticated(c)
			return
		}
		if token == nil {
			response.Unauthenticated(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// UserFrom returns the authenticated resource owner stored on the context.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// TokenFrom returns the access token stored on the context.
func TokenFrom(c *gin.Context) (*models.AccessToken, bool) {
	v, exists := c.Get(ContextTokenKey)
	if !exists {
		return nil, false
	}
	token, ok := v.(*models.AccessToken)
	return token, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
