// Package comments provides the REST handlers for post comments.
//
// Two route shapes exist for historical client compatibility: the flat
// /api/comments surface and the nested /api/posts/:postId/comments surface.
// Both obey the same explicit moderation policy.
package comments

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/controller/comment"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/web/handler"
	"github.com/starfield-blog/starfield/internal/web/handler/posts"
)

// Path is the flat comments resource path.
const Path = handler.APIPrefix + "/comments"

// CreateRequest is the flat create payload. ParentID is accepted for client
// compatibility but threading is not stored.
type CreateRequest struct {
	PostID   handler.FlexID `json:"postId" validate:"required"`
	Author   string         `json:"author" validate:"required"`
	Content  string         `json:"content" validate:"required"`
	ParentID handler.FlexID `json:"parentId"`
}

// CreateNestedRequest is the nested create payload carrying an email.
type CreateNestedRequest struct {
	Author  string `json:"author" validate:"required"`
	Email   string `json:"email"`
	Content string `json:"content" validate:"required"`
}

// Service is the comments handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the comments handler.
var Handler = Service{}

// Init initializes the comments handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, counterLimit fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path+"/:postId", s.List)
	app.Post(Path, s.Create)
	app.Post(Path+"/:id/like", counterLimit, s.Like)

	app.Get(posts.Path+"/:postId/comments", s.List)
	app.Post(posts.Path+"/:postId/comments", s.CreateNested)

	return nil
}

// List returns the comments of one post, newest first, filtered by the
// moderation policy.
func (s *Service) List(c *fiber.Ctx) error {
	postID, err := handler.ParamID(c, "postId")
	if err != nil {
		return fiber.ErrBadRequest
	}

	rows, err := comment.ListForPost(s.db, postID, s.cfg.Content.ModerateComments)
	if err != nil {
		log.Error().Err(err).Uint64("post_id", postID).Msg("failed to list comments")
		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

// Create inserts a comment via the flat surface. The email column stays
// empty here, the flat client never collects one.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Comment{
		PostID:  uint64(req.PostID),
		Author:  req.Author,
		Content: req.Content,
	}

	if err := comment.Create(s.db, &row); err != nil {
		log.Error().Err(err).Msg("failed to create comment")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// CreateNested inserts a comment via the nested surface.
func (s *Service) CreateNested(c *fiber.Ctx) error {
	postID, err := handler.ParamID(c, "postId")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req CreateNestedRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := s.validator.Struct(req); err != nil {
		return fiber.ErrBadRequest
	}

	row := models.Comment{
		PostID:  postID,
		Author:  req.Author,
		Email:   req.Email,
		Content: req.Content,
	}

	if err := comment.Create(s.db, &row); err != nil {
		log.Error().Err(err).Uint64("post_id", postID).Msg("failed to create comment")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.IDResponse{ID: row.ID})
}

// Like adds exactly one to the like counter of a comment.
func (s *Service) Like(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := comment.Like(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to like comment")
		return fiber.ErrInternalServerError
	}

	return c.JSON(handler.Success)
}
