// Package playlist provides the REST handlers for the music playlist.
package playlist

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/playlist"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the playlist resource path.
const Path = handler.APIPrefix + "/playlist"

// CreateRequest is the track create payload.
type CreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Artist   string `json:"artist"`
	URL      string `json:"url" validate:"required,url"`
	Cover    string `json:"cover"`
	Position int    `json:"position"`
}

// Service is the playlist handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the playlist handler.
var Handler = Service{}

// Init initializes the playlist handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns all tracks in manual position order.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := playlist.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list playlist")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Create inserts a track and returns the assigned identity only.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Track{
		Title:    req.Title,
		Artist:   req.Artist,
		URL:      req.URL,
		Cover:    req.Cover,
		Position: req.Position,
	}

	if err := playlist.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create track")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// Delete removes a track unconditionally.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := playlist.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete track")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
