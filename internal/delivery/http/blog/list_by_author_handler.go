package blog_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type AuthorLister interface {
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error)
}

type ListByAuthorHandler struct {
	blogService AuthorLister
	validate    *validator.Validate
	log         *logger.Logger
}

func NewListByAuthorHandler(blogService AuthorLister, validate *validator.Validate, log *logger.Logger) *ListByAuthorHandler {
	return &ListByAuthorHandler{blogService: blogService, validate: validate, log: log}
}

func (h *ListByAuthorHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := h.validate.Var(userID, "required,userid"); err != nil {
		writeError(w, h.log, custom_errors.ErrInvalidUserID, "list")
		return
	}

	blogs, err := h.blogService.ListByAuthor(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "list")
		return
	}
	if blogs == nil {
		blogs = []*model.Blog{}
	}
	writeJSON(w, http.StatusOK, authorBlogsResponse{
		Message: "Retrieved blogs for user " + userID,
		Blogs:   blogs,
	})
}
