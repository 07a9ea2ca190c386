package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey guards catalog administration with the X-Admin-Key header.
// With no key configured every request is refused.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-Admin-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(clientKey), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
