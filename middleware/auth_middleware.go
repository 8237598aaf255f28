package middleware

import (
	"errors"
	"strings"

	"blogapi/api/v1/response"
	"blogapi/internal/auth"
	"blogapi/internal/errcode"

	"github.com/gin-gonic/gin"
)

// Context keys the auth middleware populates for downstream handlers.
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// AuthMiddleware validates the bearer token: it must be present, not
// shadow-listed, well formed and unexpired. On success the claims land
// in the request context.
func AuthMiddleware(session *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, errcode.TokenInvalid)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		in, _ := session.InBlackList(token)
		if in {
			response.Unauthorized(c, errcode.TokenBlacklisted)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			kind := errcode.TokenInvalid
			if errors.Is(err, auth.ErrTokenExpired) {
				kind = errcode.TokenExpired
			}
			response.Unauthorized(c, kind)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
