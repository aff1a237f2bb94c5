package blog_http

import (
	"context"
	"net/http"

	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type PublishedLister interface {
	ListPublished(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PublicBlog], error)
}

type ListPublishedHandler struct {
	blogService PublishedLister
	log         *logger.Logger
}

func NewListPublishedHandler(blogService PublishedLister, log *logger.Logger) *ListPublishedHandler {
	return &ListPublishedHandler{blogService: blogService, log: log}
}

func (h *ListPublishedHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	page, err := h.blogService.ListPublished(r.Context(), parsePagination(r))
	if err != nil {
		writeError(w, h.log, err, "list")
		return
	}
	writeJSON(w, http.StatusOK, newListResponse("Retrieved successfully", page))
}
