// Package guestbook provides the REST handlers for the guestbook.
package guestbook

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/guestbook"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the guestbook resource path.
const Path = handler.APIPrefix + "/guestbook"

// DefaultEmoji is stored when the client sends none.
const DefaultEmoji = "😊"

// CreateRequest is the guestbook create payload. The emoji rides in the old
// email column, matching what the web client has always sent.
type CreateRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
	Emoji   string `json:"emoji"`
}

// Service is the guestbook handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the guestbook handler.
var Handler = Service{}

// Init initializes the guestbook handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Post(Path, s.Create)

	return nil
}

// List returns all guestbook entries, newest first. There is no moderation
// queue for the guestbook.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := guestbook.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guestbook")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Create inserts a guestbook entry and returns the assigned identity only.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	emoji := req.Emoji
	if emoji == "" {
		emoji = DefaultEmoji
	}

	row := models.GuestbookEntry{
		Name:    req.Author,
		Email:   emoji,
		Message: req.Content,
	}

	if err := guestbook.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create guestbook entry")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}
