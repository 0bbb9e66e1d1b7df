package middleware

import (
	"net/http"
	"strings"

	"auto360_server/internal/db"
	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware validates the session token and attaches the user, with
// store memberships preloaded, to the request context. Handlers never do
// their own token lookups.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Invalid authorization header format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}
		token := tokenParts[1]

		var user models.User
		err := db.GetDB().Preload("Memberships").Where("token = ?", token).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Unauthorized",
					"message": "Invalid or expired token",
				})
			} else {
				colors.PrintError("Database error during authentication: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Internal server error",
					"message": "Authentication service unavailable",
				})
			}
			c.Abort()
			return
		}

		if !user.IsTokenValid() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"message": "Token has expired",
			})
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := userInterface.(*models.User)
	return user, ok
}
