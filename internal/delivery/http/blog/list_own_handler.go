package blog_http

import (
	"context"
	"net/http"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/model"
)

type OwnLister interface {
	ListOwn(ctx context.Context, callerID string, pagination model.Pagination) (*model.Page[*model.Blog], error)
}

type ListOwnHandler struct {
	blogService OwnLister
	log         *logger.Logger
}

func NewListOwnHandler(blogService OwnLister, log *logger.Logger) *ListOwnHandler {
	return &ListOwnHandler{blogService: blogService, log: log}
}

func (h *ListOwnHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeError(w, h.log, custom_errors.ErrUnauthenticated, "list")
		return
	}

	page, err := h.blogService.ListOwn(r.Context(), caller.UserID, parsePagination(r))
	if err != nil {
		writeError(w, h.log, err, "list")
		return
	}
	writeJSON(w, http.StatusOK, newListResponse("Retrieved successfully", page))
}
