// Package settings provides the REST handlers for the generic key-value store.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/setting"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the settings resource path.
const Path = handler.APIPrefix + "/settings"

// ValueResponse is the body of a settings read. Value is null when the key
// does not exist, callers can not tell missing from never-written.
type ValueResponse struct {
	Value *string `json:"value"`
}

// UpdateRequest is the settings write payload. Last write wins.
type UpdateRequest struct {
	Value string `json:"value"`
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path+"/:key", s.Get)
	app.Put(Path+"/:key", s.Set)

	return nil
}

// Get returns the value of one setting, null when missing.
func (s *Service) Get(c *fiber.Ctx) error {
	row, err := setting.Get(s.db, c.Params("key"))
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return c.JSON(ValueResponse{Value: nil})
		}

		if errors.Is(err, setting.ErrSettingKeyEmpty) {
			return fiber.ErrBadRequest
		}

		log.Error().Err(err).Str("key", c.Params("key")).Msg("failed to get setting")

		return fiber.ErrInternalServerError
	}

	return c.JSON(ValueResponse{Value: &row.Value})
}

// Set upserts one setting.
func (s *Service) Set(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := setting.Set(s.db, c.Params("key"), req.Value); err != nil {
		if errors.Is(err, setting.ErrSettingKeyEmpty) {
			return fiber.ErrBadRequest
		}

		log.Error().Err(err).Str("key", c.Params("key")).Msg("failed to set setting")

		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
