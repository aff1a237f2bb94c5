package blog_http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type AdminBlogDeleter interface {
	AdminDeleteBlog(ctx context.Context, blogID string) (*model.Blog, error)
}

type AdminDeleteBlogHandler struct {
	blogService AdminBlogDeleter
	log         *logger.Logger
}

func NewAdminDeleteBlogHandler(blogService AdminBlogDeleter, log *logger.Logger) *AdminDeleteBlogHandler {
	return &AdminDeleteBlogHandler{blogService: blogService, log: log}
}

func (h *AdminDeleteBlogHandler) AdminDeleteBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogService.AdminDeleteBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err, "delete")
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Message: "Admin deleted blog", Data: blog})
}
