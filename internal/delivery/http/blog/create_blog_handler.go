package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/model"
)

type BlogCreator interface {
	CreateBlog(ctx context.Context, blog *model.CreateBlogDTO) (*model.Blog, error)
}

type CreateBlogHandler struct {
	blogService BlogCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreateBlogHandler(blogService BlogCreator, validate *validator.Validate, log *logger.Logger) *CreateBlogHandler {
	return &CreateBlogHandler{blogService: blogService, validate: validate, log: log}
}

type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished *bool  `json:"isPublished"`
}

func (h *CreateBlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, h.log, custom_errors.ErrUnauthenticated, "create")
		return
	}

	var req CreateBlogRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, h.log, err, "create")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Create blog request rejected", slog.String("error", err.Error()))
		writeError(w, h.log, custom_errors.ErrValidation, "create")
		return
	}

	blog, err := h.blogService.CreateBlog(r.Context(), &model.CreateBlogDTO{
		Author:      caller.UserID,
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, h.log, err, "create")
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Message: "Created successfully", Data: blog})
}
