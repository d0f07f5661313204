package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records the outcome of a single HTTP request.
type RequestObserver interface {
	ObserveRequest(route, method, status string, seconds float64)
}

// Metrics reports every request to obs, labelled by the matched route
// pattern so unknown paths collapse into one series.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
