package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Savin-AS94/hw05-final/metrics"
)

// CountRequests feeds the request counter after the handler ran.
func CountRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
