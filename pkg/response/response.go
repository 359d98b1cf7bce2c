package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lightechllc/authcore/pkg/oautherrors"
)

// Token sends a token endpoint payload. RFC 6749 §5.1 requires responses
// containing tokens to be marked uncacheable.
func Token(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// JSON sends a plain success response.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// ProtocolError normalises the error into the RFC taxonomy and writes
// {error, error_description} with the mapped status. invalid_client carries
// a WWW-Authenticate challenge per RFC 6749 §5.2.
func ProtocolError(c *gin.Context, err error) {
	perr := oautherrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	if perr.Code == oautherrors.ErrInvalidClient.Code {
		c.Header("WWW-Authenticate", `Basic realm="oauth"`)
	}
	c.JSON(perr.Status, perr)
}

// Unauthenticated aborts a bearer-protected request with 401 and no body.
// The reason for the failure is deliberately not disclosed.
func Unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", TokenTypeBearerChallenge)
	c.AbortWithStatus(http.StatusUnauthorized)
}

// TokenTypeBearerChallenge is the challenge sent on failed bearer authentication.
const TokenTypeBearerChallenge = `Bearer realm="oauth"`
