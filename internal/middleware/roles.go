package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the verified claim's
// role is a member of the given set. Must run after AuthMiddleware.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)

		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
	}
}
