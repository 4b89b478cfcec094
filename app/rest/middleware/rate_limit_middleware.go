package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-IP limits, stricter on the auth endpoints.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}
	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the middleware function.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			switch {
			case strings.Contains(path, "/auth/signup"):
				limit = rate.Every(30 * time.Second)
				burst = 3
			case strings.Contains(path, "/auth/signin"):
				limit = rate.Every(10 * time.Second)
				burst = 5
			case strings.Contains(path, "/proxy-image"):
				limit = rate.Every(200 * time.Millisecond)
				burst = 30
			default:
				limit = rate.Every(1 * time.Second)
				burst = 20
			}

			if !rl.allow(ip, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error": "Rate limit exceeded",
					"code":  "RATE_LIMIT_EXCEEDED",
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mutex.Unlock()
	}
}
