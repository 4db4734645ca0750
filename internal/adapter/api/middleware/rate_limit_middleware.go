package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"familymarket/pkg/logger"
)

// RateLimiter is a per-IP token bucket.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blocked    bool
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if blocked, resetAt := rl.take(ip); blocked {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(time.Until(resetAt).Seconds()),
				})
			}
			return next(c)
		}
	}
}

// take consumes one token for ip, blocking the ip for a full window once
// its bucket empties.
func (rl *RateLimiter) take(ip string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastSeen: now}
		return false, time.Time{}
	}

	if v.blocked {
		if now.Before(v.blockUntil) {
			return true, v.blockUntil
		}
		v.blocked = false
		v.tokens = rl.rate
	}

	// Refill proportionally to elapsed time.
	elapsed := now.Sub(v.lastSeen)
	v.tokens += int(elapsed / rl.window * time.Duration(rl.rate))
	if v.tokens > rl.rate {
		v.tokens = rl.rate
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		v.blocked = true
		v.blockUntil = now.Add(rl.window)
		logger.Warn("Rate limit triggered for IP %s", ip)
		return true, v.blockUntil
	}

	v.tokens--
	return false, time.Time{}
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

var (
	generalLimiter = NewRateLimiter(60, time.Minute)
	authLimiter    = NewRateLimiter(5, time.Minute)
	paymentLimiter = NewRateLimiter(10, time.Minute)
	webhookLimiter = NewRateLimiter(100, time.Minute)
)

func GeneralRateLimit() echo.MiddlewareFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() echo.MiddlewareFunc {
	return authLimiter.Middleware()
}

func PaymentRateLimit() echo.MiddlewareFunc {
	return paymentLimiter.Middleware()
}

func WebhookRateLimit() echo.MiddlewareFunc {
	return webhookLimiter.Middleware()
}
