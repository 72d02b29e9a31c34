package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Checkout and status mutations (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// init starts the background cleanup routine.
func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given identity key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimitMiddleware checks if the request is allowed by the rate limiter.
// Authenticated users get a per-user bucket, anonymous requests fall back to
// a per-IP bucket. Checkout is rate limited on the strict tier.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := resolveRateTier(c)

		var identity string
		if userID, ok := GetUserIDFromContext(c.Request.Context()); ok {
			identity = fmt.Sprintf("user:%d", userID)
		} else {
			identity = "ip:" + c.ClientIP()
		}

		// Same user keeps separate quotas for strict vs general actions.
		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := getVisitor(key, limit, burst)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}

		c.Next()
	}
}

// resolveRateTier determines which rate limit policy applies to the request.
func resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/orders" {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
