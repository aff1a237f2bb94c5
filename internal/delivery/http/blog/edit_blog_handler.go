package blog_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/model"
)

type BlogEditor interface {
	EditBlog(ctx context.Context, callerID string, blogID string, patch *model.UpdateBlogDTO) (*model.Blog, error)
}

type EditBlogHandler struct {
	blogService BlogEditor
	log         *logger.Logger
}

func NewEditBlogHandler(blogService BlogEditor, log *logger.Logger) *EditBlogHandler {
	return &EditBlogHandler{blogService: blogService, log: log}
}

// EditBlogRequest fields are pointers so an absent field differs from an explicit zero value.
// Blank values are rejected by the service once ownership is confirmed.
type EditBlogRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"isPublished"`
}

func (h *EditBlogHandler) EditBlog(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, h.log, custom_errors.ErrUnauthenticated, "edit")
		return
	}

	var req EditBlogRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, h.log, err, "edit")
		return
	}
	blog, err := h.blogService.EditBlog(r.Context(), caller.UserID, chi.URLParam(r, "id"), &model.UpdateBlogDTO{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(w, h.log, err, "edit")
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Message: "Updated successfully", Data: blog})
}
