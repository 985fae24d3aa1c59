// Package notes provides the REST handlers for short notes.
package notes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/note"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the notes resource path.
const Path = handler.APIPrefix + "/notes"

// CreateRequest is the note create payload. Notes have no update operation.
type CreateRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

// Service is the notes handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the notes handler.
var Handler = Service{}

// Init initializes the notes handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, counterLimit fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Delete(Path+"/:id", s.Delete)
	app.Post(Path+"/:id/like", counterLimit, s.Like)

	return nil
}

// List returns all notes, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := note.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list notes")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Create inserts a new note and returns the assigned identity only.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    handler.EncodeTags(req.Tags),
	}

	if err := note.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create note")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// Delete removes a note unconditionally.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := note.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete note")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}

// Like adds exactly one to the like counter of a note.
func (s *Service) Like(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := note.Like(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to like note")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
