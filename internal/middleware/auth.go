package middleware

import (
	"net/http"
	"strings"

	"vendlink/internal/models"
	"vendlink/internal/services"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "user"

// RequireAuth resolves the Bearer token to the current user and aborts with
// 401 otherwise. Handlers behind it read the user via CurrentUser.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}

		user, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(CurrentUserKey).(*models.User)
}
