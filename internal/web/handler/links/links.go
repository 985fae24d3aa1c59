// Package links provides the REST handlers for friend links.
package links

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/link"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the links resource path.
const Path = handler.APIPrefix + "/links"

// CreateRequest is the friend link create payload.
type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Position    int    `json:"position"`
}

// Service is the links handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the links handler.
var Handler = Service{}

// Init initializes the links handler.
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

// List returns all friend links in manual position order.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := link.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list links")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Create inserts a friend link and returns the assigned identity only.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Link{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Logo:        req.Logo,
		Position:    req.Position,
	}

	if err := link.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create link")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// Delete removes a friend link unconditionally.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := link.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete link")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
