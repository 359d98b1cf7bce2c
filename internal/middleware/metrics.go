package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lightechllc/authcore/internal/service"
)

// Metrics records per-request duration and status. The route template is
// used as the path label so token values never become label cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
