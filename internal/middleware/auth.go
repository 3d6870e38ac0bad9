package middleware

import (
	"net/http"
	"strings"

	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
	"bakery_shop/internal/session"

	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

// RequireAuth resolves the bearer token to a session and loads the
// user into the request context. Identity is passed down to services
// as explicit parameters; nothing below this layer reads session state.
func RequireAuth(sessions *session.Store, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		data, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		// Load the user fresh so admin changes take effect immediately.
		user, err := userRepo.GetByID(data.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(userKey, user)
		c.Set("session_token", token)
		c.Next()
	}
}

// RequireAdmin rejects non-admin identities. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// SessionToken returns the token the current request authenticated with.
func SessionToken(c *gin.Context) string {
	val, exists := c.Get("session_token")
	if !exists {
		return ""
	}
	token, _ := val.(string)
	return token
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}
