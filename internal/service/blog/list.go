package blog_service

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/iter"

	"blog-service/internal/custom_errors"
	"blog-service/internal/model"
)

func (s *BlogService) ListPublished(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PublicBlog], error) {
	pagination = model.NewPagination(pagination.Page, pagination.Limit)
	published := true

	blogs, total, err := s.listPage(ctx, "list_published", model.BlogFilters{IsPublished: &published}, pagination)
	if err != nil {
		return nil, err
	}

	authors := s.resolveAuthors(ctx, blogs)
	items := make([]*model.PublicBlog, len(blogs))
	for i, blog := range blogs {
		items[i] = model.NewPublicBlog(blog, authors[i])
	}

	return newPage(items, pagination, total), nil
}

func (s *BlogService) AdminListAll(ctx context.Context, pagination model.Pagination) (*model.Page[*model.AdminBlog], error) {
	pagination = model.NewPagination(pagination.Page, pagination.Limit)

	blogs, total, err := s.listPage(ctx, "admin_list_all", model.BlogFilters{}, pagination)
	if err != nil {
		return nil, err
	}

	authors := s.resolveAuthors(ctx, blogs)
	items := make([]*model.AdminBlog, len(blogs))
	for i, blog := range blogs {
		items[i] = model.NewAdminBlog(blog, authors[i])
	}

	return newPage(items, pagination, total), nil
}

func (s *BlogService) ListOwn(ctx context.Context, callerID string, pagination model.Pagination) (*model.Page[*model.Blog], error) {
	pagination = model.NewPagination(pagination.Page, pagination.Limit)

	blogs, total, err := s.listPage(ctx, "list_own", model.BlogFilters{Author: &callerID}, pagination)
	if err != nil {
		return nil, err
	}

	return newPage(blogs, pagination, total), nil
}

func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error) {
	if !model.IsValidUserID(authorID) {
		s.metrics.IncrementBlogOperations("list_by_author", false)
		return nil, custom_errors.ErrInvalidUserID
	}

	blogs, err := s.blogRepo.GetByAuthor(ctx, authorID)
	if err != nil {
		s.metrics.IncrementBlogOperations("list_by_author", false)
		s.log.Error("Failed to list blogs by author", slog.String("author", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementBlogOperations("list_by_author", true)
	return blogs, nil
}

func (s *BlogService) listPage(ctx context.Context, operation string, filters model.BlogFilters, pagination model.Pagination) ([]*model.Blog, int, error) {
	limit, offset := pagination.Limit, pagination.Offset()
	filters.Limit = &limit
	filters.Offset = &offset

	blogs, total, err := s.blogRepo.List(ctx, filters)
	if err != nil {
		s.metrics.IncrementBlogOperations(operation, false)
		s.log.Error("Failed to list blogs",
			slog.String("operation", operation),
			slog.Int("page", pagination.Page),
			slog.Int("limit", pagination.Limit),
			slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementBlogOperations(operation, true)
	return blogs, total, nil
}

// resolveAuthors looks up every author concurrently. The result is index-aligned with blogs;
// a failed lookup leaves a nil entry and never fails the batch.
func (s *BlogService) resolveAuthors(ctx context.Context, blogs []*model.Blog) []*model.User {
	if len(blogs) == 0 {
		return nil
	}

	mapper := iter.Mapper[*model.Blog, *model.User]{MaxGoroutines: len(blogs)}
	return mapper.Map(blogs, func(blog **model.Blog) *model.User {
		author, err := s.userClient.GetUser(ctx, (*blog).Author)
		if err != nil {
			s.log.Warn("Failed to fetch author for blog",
				slog.String("blog_id", (*blog).ID.String()),
				slog.String("author", (*blog).Author),
				slog.String("error", err.Error()))
			return nil
		}
		return author
	})
}

func newPage[T any](items []T, pagination model.Pagination, total int) *model.Page[T] {
	return &model.Page[T]{
		Items:      items,
		Page:       pagination.Page,
		TotalPages: model.TotalPages(total, pagination.Limit),
		TotalItems: total,
	}
}
