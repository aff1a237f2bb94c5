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

type BlogDeleter interface {
	DeleteBlog(ctx context.Context, callerID string, blogID string) (*model.Blog, error)
}

type DeleteBlogHandler struct {
	blogService BlogDeleter
	log         *logger.Logger
}

func NewDeleteBlogHandler(blogService BlogDeleter, log *logger.Logger) *DeleteBlogHandler {
	return &DeleteBlogHandler{blogService: blogService, log: log}
}

func (h *DeleteBlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, h.log, custom_errors.ErrUnauthenticated, "delete")
		return
	}

	blog, err := h.blogService.DeleteBlog(r.Context(), caller.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err, "delete")
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Message: "Blog deleted successfully", Data: blog})
}
