package v1

import (
	"strings"

	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/internal/errcode"
	"blogapi/internal/metrics"
	"blogapi/middleware"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI exposes the register/login/logout/me handlers.
type AuthAPI struct {
	service *service.AuthService
}

func NewAuthAPI(s *service.AuthService) *AuthAPI {
	return &AuthAPI{service: s}
}

// Register handles new account creation.
func (a *AuthAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	resp, err := a.service.Register(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, resp)
}

// Login validates credentials and returns a fresh token.
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		response.BadRequest(c, err)
		return
	}
	resp, err := a.service.Login(&req)
	if err != nil {
		metrics.IncLogin("failed")
		response.Fail(c, err)
		return
	}
	metrics.IncLogin("success")
	response.OK(c, resp)
}

// Logout shadow-lists the presented token until its natural expiry.
func (a *AuthAPI) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		metrics.IncLogout("bad_request")
		response.BadRequest(c, errcode.Newf(errcode.BadRequest, "missing token"))
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := a.service.Logout(token); err != nil {
		metrics.IncLogout("failed")
		response.Fail(c, err)
		return
	}
	metrics.IncLogout("success")
	response.OKMessage(c, "logout success")
}

// Me resolves the authenticated principal to its full user record.
func (a *AuthAPI) Me(c *gin.Context) {
	username := c.GetString(middleware.ContextUsernameKey)
	user, err := a.service.GetCurrentUser(username)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, user)
}
