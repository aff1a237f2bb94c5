package blog_http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

type messageResponse struct {
	Message string `json:"message"`
}

type dataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type listResponse[T any] struct {
	Message    string `json:"message"`
	Blogs      []T    `json:"blogs"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	TotalItems int    `json:"totalItems"`
}

type authorBlogsResponse struct {
	Message string        `json:"message"`
	Blogs   []*model.Blog `json:"blogs"`
}

func newListResponse[T any](message string, page *model.Page[T]) listResponse[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Message:    message,
		Blogs:      items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps service errors to a status and a short message. Unknown errors are logged
// and answered with a generic 500.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, action string) {
	switch {
	case errors.Is(err, errInvalidBody):
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
	case errors.Is(err, custom_errors.ErrValidation):
		if action == "create" {
			writeMessage(w, http.StatusBadRequest, "Title and content required")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Title and content must not be empty")
	case errors.Is(err, custom_errors.ErrNoUpdateFields):
		writeMessage(w, http.StatusBadRequest, "Nothing to update: send title, content or isPublished")
	case errors.Is(err, custom_errors.ErrInvalidBlogID):
		writeMessage(w, http.StatusBadRequest, "Invalid blog ID")
	case errors.Is(err, custom_errors.ErrInvalidUserID):
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
	case errors.Is(err, custom_errors.ErrBlogNotFound):
		writeMessage(w, http.StatusNotFound, "Blog not found")
	case errors.Is(err, custom_errors.ErrNotBlogAuthor):
		writeMessage(w, http.StatusUnauthorized, "Not authorized to "+action+" this blog")
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Missing user ID")
	default:
		log.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// decodeBody decodes a JSON body of at most maxBodyBytes. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	return nil
}

// parsePagination reads page and limit from the query string. Absent, non-numeric or
// non-positive values fall back to the defaults.
func parsePagination(r *http.Request) model.Pagination {
	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = model.DefaultPage
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil {
		limit = model.DefaultLimit
	}
	return model.NewPagination(page, limit)
}
