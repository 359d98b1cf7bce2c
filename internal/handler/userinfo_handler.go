package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lightechllc/authcore/internal/middleware"
	"github.com/lightechllc/authcore/pkg/response"
)

// UserInfoHandler serves the bearer-protected identity endpoint.
type UserInfoHandler struct{}

// NewUserInfoHandler creates a new handler.
func NewUserInfoHandler() *UserInfoHandler {
	return &UserInfoHandler{}
}

// UserInfo godoc
// @Summary Authenticated user info
// @Description Returns the resource owner and granted scope resolved from the bearer token
// @Tags OAuth2
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo
// @Failure 401 {string} string ""
// @Router /userinfo [get]
func (h *UserInfoHandler) UserInfo(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok || user == nil {
		response.Unauthenticated(c)
		return
	}

	payload := gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
	}
	if token, ok := middleware.TokenFrom(c); ok {
		payload["scope"] = token.Scope
	}

	response.JSON(c, http.StatusOK, payload)
}
