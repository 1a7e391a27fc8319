package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gatherly/gatherly/pkg/response"
)

// KeyFunc derives the limiter bucket for a request.
type KeyFunc func(c *gin.Context) string

// KeyByIP buckets requests by client IP.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		if ip := c.GetString("real_ip"); ip != "" {
			return ip
		}
		if ip := c.ClientIP(); ip != "" {
			return ip
		}
		return "unknown"
	}
}

// RateLimit applies a per-key token bucket kept in process memory. Buckets
// are never evicted; with per-IP keys the map stays small enough for a
// single-instance deployment.
func RateLimit(rps rate.Limit, burst int, key KeyFunc) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		buckets = make(map[string]*rate.Limiter)
	)
	limiter := func(k string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := buckets[k]
		if !ok {
			l = rate.NewLimiter(rps, burst)
			buckets[k] = l
		}
		return l
	}
	return func(c *gin.Context) {
		if !limiter(key(c)).Allow() {
			resp := response.Error(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}
