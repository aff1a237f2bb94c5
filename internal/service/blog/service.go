package blog_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	user_client "blog-service/internal/clients/user"
	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	blog_repository "blog-service/internal/repository/blog"
)

type BlogService struct {
	blogRepo   blog_repository.Repository
	log        *logger.Logger
	userClient user_client.Client
	metrics    metrics.MetricsProvider
}

func NewBlogService(
	blogRepo blog_repository.Repository,
	log *logger.Logger,
	userClient user_client.Client,
	metrics metrics.MetricsProvider,
) *BlogService {
	return &BlogService{
		blogRepo:   blogRepo,
		log:        log,
		userClient: userClient,
		metrics:    metrics,
	}
}

func (s *BlogService) CreateBlog(ctx context.Context, dto *model.CreateBlogDTO) (*model.Blog, error) {
	if dto == nil || dto.Title == "" || dto.Content == "" {
		s.metrics.IncrementBlogOperations("create", false)
		return nil, custom_errors.ErrValidation
	}
	if !model.IsValidUserID(dto.Author) {
		s.metrics.IncrementBlogOperations("create", false)
		return nil, custom_errors.ErrInvalidUserID
	}

	isPublished := true
	if dto.IsPublished != nil {
		isPublished = *dto.IsPublished
	}

	created, err := s.blogRepo.Create(ctx, &model.Blog{
		Title:       dto.Title,
		Content:     dto.Content,
		Author:      dto.Author,
		IsPublished: isPublished,
	})
	if err != nil {
		s.metrics.IncrementBlogOperations("create", false)
		s.log.Error("Failed to create blog", slog.String("author", dto.Author), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementBlogOperations("create", true)
	s.log.Info("Blog created", slog.String("id", created.ID.String()), slog.String("author", created.Author))
	return created, nil
}

func (s *BlogService) EditBlog(ctx context.Context, callerID string, blogID string, patch *model.UpdateBlogDTO) (*model.Blog, error) {
	existing, err := s.getOwnedBlog(ctx, "edit", callerID, blogID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		s.metrics.IncrementBlogOperations("edit", false)
		return nil, custom_errors.ErrNoUpdateFields
	}
	if (patch.Title != nil && *patch.Title == "") || (patch.Content != nil && *patch.Content == "") {
		s.metrics.IncrementBlogOperations("edit", false)
		return nil, custom_errors.ErrValidation
	}

	updated, err := s.blogRepo.Update(ctx, existing.ID, patch)
	if err != nil {
		s.metrics.IncrementBlogOperations("edit", false)
		if errors.Is(err, custom_errors.ErrBlogNotFound) {
			s.log.Debug("Blog disappeared before update", slog.String("id", blogID))
			return nil, custom_errors.ErrBlogNotFound
		}
		s.log.Error("Failed to update blog", slog.String("id", blogID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementBlogOperations("edit", true)
	return updated, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, callerID string, blogID string) (*model.Blog, error) {
	existing, err := s.getOwnedBlog(ctx, "delete", callerID, blogID)
	if err != nil {
		return nil, err
	}
	return s.delete(ctx, "delete", existing.ID)
}

func (s *BlogService) AdminDeleteBlog(ctx context.Context, blogID string) (*model.Blog, error) {
	id, err := s.parseBlogID("admin_delete", blogID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getBlog(ctx, "admin_delete", id); err != nil {
		return nil, err
	}
	return s.delete(ctx, "admin_delete", id)
}

func (s *BlogService) Ping(ctx context.Context) error {
	return s.blogRepo.Ping(ctx)
}

func (s *BlogService) delete(ctx context.Context, operation string, id uuid.UUID) (*model.Blog, error) {
	deleted, err := s.blogRepo.Delete(ctx, id)
	if err != nil {
		s.metrics.IncrementBlogOperations(operation, false)
		if errors.Is(err, custom_errors.ErrBlogNotFound) {
			return nil, custom_errors.ErrBlogNotFound
		}
		s.log.Error("Failed to delete blog", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementBlogOperations(operation, true)
	s.log.Info("Blog deleted", slog.String("id", id.String()), slog.String("operation", operation))
	return deleted, nil
}

// getOwnedBlog runs the id, existence and authorship checks shared by edit and delete.
func (s *BlogService) getOwnedBlog(ctx context.Context, operation, callerID, blogID string) (*model.Blog, error) {
	id, err := s.parseBlogID(operation, blogID)
	if err != nil {
		return nil, err
	}

	blog, err := s.getBlog(ctx, operation, id)
	if err != nil {
		return nil, err
	}

	if blog.Author != callerID {
		s.metrics.IncrementBlogOperations(operation, false)
		s.log.Debug("Caller is not author of blog", slog.String("caller", callerID), slog.String("author", blog.Author))
		return nil, custom_errors.ErrNotBlogAuthor
	}
	return blog, nil
}

func (s *BlogService) getBlog(ctx context.Context, operation string, id uuid.UUID) (*model.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementBlogOperations(operation, false)
		if errors.Is(err, custom_errors.ErrBlogNotFound) {
			s.log.Debug("Blog not found", slog.String("id", id.String()))
			return nil, custom_errors.ErrBlogNotFound
		}
		s.log.Error("Failed to get blog by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return blog, nil
}

func (s *BlogService) parseBlogID(operation, blogID string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(blogID))
	if err != nil {
		s.metrics.IncrementBlogOperations(operation, false)
		return uuid.Nil, custom_errors.ErrInvalidBlogID
	}
	return id, nil
}
