// Package posts provides the REST handlers for blog posts.
package posts

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/post"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
	"github.com/starfield-blog/starfield/internal/web/handler"
)

// Path is the posts resource path.
const Path = handler.APIPrefix + "/posts"

// CreateRequest is the create payload. Tags arrive as a list and are stored
// serialized.
type CreateRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}

// UpdateRequest is the full-row update payload. Every field overwrites the
// stored row, there is no partial merge.
type UpdateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"cover_image"`
	IsPublished bool     `json:"is_published"`
	IsPinned    bool     `json:"is_pinned"`
}

// Service is the posts handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the posts handler.
var Handler = Service{}

// Init initializes the posts handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, counterLimit fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)
	app.Post(Path+"/:id/like", counterLimit, s.Like)

	return nil
}

// List returns all published posts, pinned first then newest first.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := post.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Get returns one post and bumps its view counter first. A missing id
// answers with a JSON null body, not with a 404.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	row, err := post.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return c.JSON(nil)
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to get post")

		return fiber.ErrInternalServerError
	}

	return c.JSON(row)
}

// Create inserts a new post and returns the assigned identity only.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        handler.EncodeTags(req.Tags),
		CoverImage:  req.CoverImage,
		IsPublished: true,
	}

	if err := post.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create post")
		return fiber.ErrInternalServerError
	}

	log.Debug().Uint64("id", row.ID).Str("title", row.Title).Msg("post created")

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// Update overwrites the full row. Updating a missing id still succeeds.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        handler.EncodeTags(req.Tags),
		CoverImage:  req.CoverImage,
		IsPublished: req.IsPublished,
		IsPinned:    req.IsPinned,
	}

	if err := post.Update(s.db, id, &row); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to update post")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}

// Delete removes a post unconditionally. Comments are not cascaded.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := post.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete post")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}

// Like adds exactly one to the like counter of a post.
func (s *Service) Like(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := post.Like(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to like post")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
