package blog_http

import (
	"context"
	"net/http"

	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type AdminLister interface {
	AdminListAll(ctx context.Context, pagination model.Pagination) (*model.Page[*model.AdminBlog], error)
}

type AdminListHandler struct {
	blogService AdminLister
	log         *logger.Logger
}

func NewAdminListHandler(blogService AdminLister, log *logger.Logger) *AdminListHandler {
	return &AdminListHandler{blogService: blogService, log: log}
}

func (h *AdminListHandler) AdminListAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.blogService.AdminListAll(r.Context(), parsePagination(r))
	if err != nil {
		writeError(w, h.log, err, "list")
		return
	}
	writeJSON(w, http.StatusOK, newListResponse("Admin: Retrieved all blogs", page))
}
