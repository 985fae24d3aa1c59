// Package health provides the liveness probe.
package health

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the liveness probe path.
const Path = "/health"

// Response is the probe body.
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Service is the health handler service.
type Service struct {
	cfg   *config.Config
	alive *atomic.Bool
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler. The alive flag is flipped by the web
// service during shutdown so load balancers drain this instance.
func (s *Service) Init(app *fiber.App, cfg *config.Config, alive *atomic.Bool) error {
	if app == nil || cfg == nil || alive == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.alive = alive

	app.Get(Path, s.Get)

	return nil
}

// Get answers the probe. During shutdown drain it returns 503.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.JSON(Response{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
