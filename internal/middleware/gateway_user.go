package middleware

import (
	"github.com/gin-gonic/gin"
)

// GatewayUser reads the user identity forwarded by the authentication proxy.
// Session handling itself lives outside this service; we only propagate the
// identity for logging and rate limiting.
func GatewayUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetHeader("X-User-ID"); uid != "" {
			c.Set("user_id", uid)
		}
		c.Next()
	}
}
