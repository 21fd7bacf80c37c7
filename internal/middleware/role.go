package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/models"
)

// RequireRole gates a route group to the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route group to studio staff with admin rights.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleManager, models.RoleOwner)
}
