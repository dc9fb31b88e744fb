// Package middleware contains gin middleware shared by the web server.
package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
)

var requestCount atomic.Int64

// RequestCounter counts every handled request for the status endpoint.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestCount.Inc()
		c.Next()
	}
}

// RequestCount returns the number of requests handled since startup.
func RequestCount() int64 {
	return requestCount.Load()
}
