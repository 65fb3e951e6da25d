package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auth_middleware.go -destination=mock_auth_middleware.go -package=middleware

type AuthMiddleware interface {
	// RequireToken rejects requests whose bearer token does not match the
	// configured operator token. An empty token disables the check.
	RequireToken() gin.HandlerFunc
}

type authMiddleware struct {
	token []byte
}

func (a *authMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(a.token) == 0 {
			c.Next()
			return
		}
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is empty",
			})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), a.token) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(token string) AuthMiddleware {
	return &authMiddleware{
		token: []byte(token),
	}
}
