package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lightechllc/authcore/internal/models"
	"github.com/lightechllc/authcore/pkg/oautherrors"
	"github.com/lightechllc/authcore/pkg/response"
)

type oauthService interface {
	Token(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error)
	Revoke(ctx context.Context, req models.RevokeRequest) (*models.RevokeResponse, error)
	Introspect(ctx context.Context, req models.IntrospectRequest) (*models.Introspection, error)
}

// OAuthHandler wires the token, revocation, and introspection endpoints to the
// OAuth service. Requests are form-encoded per RFC 6749 §4.3.2.
type OAuthHandler struct {
	service oauthService
}

// NewOAuthHandler creates a new handler.
func NewOAuthHandler(svc oauthService) *OAuthHandler {
	return &OAuthHandler{service: svc}
}

// Token godoc
// @Summary OAuth2 token endpoint
// @Description Issues an access/refresh token pair for the password and refresh_token grants (RFC 6749)
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type" Enums(password, refresh_token)
// @Param username formData string false "Resource owner username (password grant)"
// @Param password formData string false "Resource owner password (password grant)"
// @Param refresh_token formData string false "Refresh token (refresh_token grant)"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} oautherrors.Error
// @Failure 401 {object} oautherrors.Error
// @Router /oauth/token [post]
func (h *OAuthHandler) Token(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.ProtocolError(c, oautherrors.Wrap(err, oautherrors.ErrInvalidRequest.Code, oautherrors.ErrInvalidRequest.Status, "request body must be form-encoded"))
		return
	}

	clientID, clientSecret := clientCredentials(c)
	req := models.TokenRequest{
		GrantType:    c.Request.PostFormValue("grant_type"),
		Username:     c.Request.PostFormValue("username"),
		Password:     c.Request.PostFormValue("password"),
		RefreshToken: c.Request.PostFormValue("refresh_token"),
		Scope:        c.Request.PostFormValue("scope"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		IP:           c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
	}

	res, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		response.ProtocolError(c, err)
		return
	}

	response.Token(c, http.StatusOK, res)
}

// Revoke godoc
// @Summary OAuth2 revocation endpoint
// @Description Revokes an access or refresh token (RFC 7009); the response does not disclose whether the token existed
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param token formData string true "Token value to revoke"
// @Param token_type_hint formData string false "Hint" Enums(access_token, refresh_token)
// @Success 200 {object} models.RevokeResponse
// @Failure 400 {object} oautherrors.Error
// @Failure 401 {object} oautherrors.Error
// @Router /oauth/revoke [post]
func (h *OAuthHandler) Revoke(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.ProtocolError(c, oautherrors.Wrap(err, oautherrors.ErrInvalidRequest.Code, oautherrors.ErrInvalidRequest.Status, "request body must be form-encoded"))
		return
	}

	clientID, clientSecret := clientCredentials(c)
	req := models.RevokeRequest{
		Token:         c.Request.PostFormValue("token"),
		TokenTypeHint: c.Request.PostFormValue("token_type_hint"),
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		IP:            c.ClientIP(),
		UserAgent:     c.GetHeader("User-Agent"),
	}

	res, err := h.service.Revoke(c.Request.Context(), req)
	if err != nil {
		response.ProtocolError(c, err)
		return
	}

	response.Token(c, http.StatusOK, res)
}

// Introspect godoc
// @Summary OAuth2 introspection endpoint
// @Description Reports whether a token is active and its metadata (RFC 7662)
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce json
// @Param token formData string true "Token value to introspect"
// @Param token_type_hint formData string false "Hint" Enums(access_token, refresh_token)
// @Success 200 {object} models.Introspection
// @Failure 400 {object} oautherrors.Error
// @Failure 401 {object} oautherrors.Error
// @Router /oauth/introspect [post]
func (h *OAuthHandler) Introspect(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.ProtocolError(c, oautherrors.Wrap(err, oautherrors.ErrInvalidRequest.Code, oautherrors.ErrInvalidRequest.Status, "request body must be form-encoded"))
		return
	}

	clientID, clientSecret := clientCredentials(c)
	req := models.IntrospectRequest{
		Token:         c.Request.PostFormValue("token"),
		TokenTypeHint: c.Request.PostFormValue("token_type_hint"),
		ClientID:      clientID,
		ClientSecret:  clientSecret,
	}

	res, err := h.service.Introspect(c.Request.Context(), req)
	if err != nil {
		response.ProtocolError(c, err)
		return
	}

	response.Token(c, http.StatusOK, res)
}

// clientCredentials extracts client authentication from the HTTP Basic header
// when present, falling back to body parameters (RFC 6749 §2.3.1).
func clientCredentials(c *gin.Context) (string, string) {
	if id, secret, ok := c.Request.BasicAuth(); ok {
		return id, secret
	}
	return c.Request.PostFormValue("client_id"), c.Request.PostFormValue("client_secret")
}
