package middlewares

import (
	"net/http"
	"strings"

	"blogapp/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// AuthMiddleware verifies the bearer token and attaches the resolved user id
// to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		userID, username, err := utils.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxUsername, username)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid token is present but never
// rejects the request. Used on reads where the paywall check wants to know
// who is asking.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			token := strings.TrimPrefix(header, "Bearer ")
			if userID, username, err := utils.ParseJWT(token); err == nil {
				c.Set(ctxUserID, userID)
				c.Set(ctxUsername, username)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, zero when the request
// went through no auth middleware.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
