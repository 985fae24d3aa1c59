// Package stats provides the visit log and aggregate statistics handlers.
package stats

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/visit"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

const (
	// VisitsPath is the visit log resource path.
	VisitsPath = handler.APIPrefix + "/visits"

	// StatsPath is the aggregate statistics path.
	StatsPath = handler.APIPrefix + "/stats"
)

// VisitRequest is the visit record payload. IP and user agent come from the
// request itself, only the page is taken from the body.
type VisitRequest struct {
	Page string `json:"page" validate:"required"`
}

// Service is the stats handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the stats handler.
var Handler = Service{}

// Init initializes the stats handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, counterLimit fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Post(VisitsPath, counterLimit, s.Record)
	app.Get(StatsPath, s.Aggregate)

	return nil
}

// Record appends one row to the visit log.
func (s *Service) Record(c *fiber.Ctx) error {
	var req VisitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	ip := c.Get(fiber.HeaderXForwardedFor)
	if ip == "" {
		ip = "unknown"
	}

	row := models.Visit{
		Page:      req.Page,
		IP:        ip,
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}

	if err := visit.Record(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to record visit")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}

// Aggregate returns the visit and content counters.
func (s *Service) Aggregate(c *fiber.Ctx) error {
	out, err := visit.Aggregate(s.db, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate stats")
		return fiber.ErrInternalServerError
	}

	return c.JSON(out)
}
