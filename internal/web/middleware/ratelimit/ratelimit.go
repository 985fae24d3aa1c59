// Package ratelimit provides a per-IP token bucket middleware for the
// abuse-prone counter endpoints. The limit is a configurable policy, not a
// fixed behavior: a zero rate disables the middleware entirely.
package ratelimit

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time

	limit rate.Limit
	burst int
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}

	s.lastSeen[ip] = time.Now()

	return limiter
}

// cleanup periodically drops buckets of IPs not seen for a day.
func (s *limiterStore) cleanup() {
	for range time.Tick(1 * time.Hour) {
		s.mu.Lock()

		cutoff := time.Now().Add(-24 * time.Hour)
		for ip, lastSeen := range s.lastSeen {
			if lastSeen.Before(cutoff) {
				delete(s.limiters, ip)
				delete(s.lastSeen, ip)
			}
		}

		s.mu.Unlock()
	}
}

// New creates the middleware. With limit <= 0 it is a pass-through: repeated
// likes from the same caller are then accepted as intentional simplicity.
func New(limit float64, burst int) fiber.Handler {
	if limit <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if burst < 1 {
		burst = 1
	}

	store := &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		limit:    rate.Limit(limit),
		burst:    burst,
	}

	go store.cleanup()

	return func(c *fiber.Ctx) error {
		if !store.get(c.IP()).Allow() {
			return c.SendStatus(fiber.StatusTooManyRequests)
		}

		return c.Next()
	}
}
