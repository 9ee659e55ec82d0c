package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityarmn/go-todo-app/pkg/helpers"
	"github.com/adityarmn/go-todo-app/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth reads the session cookie, validates the token, and injects the
// caller's identity into the Gin context. Stateless given the signing secret.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.TokenCookieName)
		if err != nil || token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "No token provided!")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortFail(c, http.StatusForbidden, "Invalid or expired token!")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
