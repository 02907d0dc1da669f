package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumistudio/backend-studio/metrics"
)

// Metrics counts every finished request by method, route pattern and
// status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.IncHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
	}
}
