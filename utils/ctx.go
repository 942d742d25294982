package utils

import "github.com/gin-gonic/gin"

// CurrentUsername reads the staff username the auth middleware stored.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
