package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

type BlogRepository struct {
	log     *logger.Logger
	mu      sync.RWMutex
	blogs   map[uuid.UUID]*model.Blog
	nextSeq int64
	now     func() time.Time
}

type Option func(*BlogRepository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *BlogRepository) {
		r.now = now
	}
}

func NewBlogRepository(log *logger.Logger, opts ...Option) *BlogRepository {
	r := &BlogRepository{
		log:     log,
		blogs:   make(map[uuid.UUID]*model.Blog),
		nextSeq: 1,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (p *BlogRepository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := blog.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := pgtype.Timestamptz{Time: p.now().UTC(), Valid: true}

	newBlog := &model.Blog{
		ID:          id,
		Title:       blog.Title,
		Content:     blog.Content,
		Author:      blog.Author,
		IsPublished: blog.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
		Seq:         p.nextSeq,
	}
	p.nextSeq++
	p.blogs[id] = newBlog

	result := *newBlog
	return &result, nil
}

func (p *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	blog, exists := p.blogs[id]
	if !exists {
		p.log.Debug("Blog not found by id", slog.String("id", id.String()))
		return nil, custom_errors.ErrBlogNotFound
	}

	result := *blog
	return &result, nil
}

func (p *BlogRepository) GetByAuthor(ctx context.Context, author string) ([]*model.Blog, error) {
	blogs, _, err := p.List(ctx, model.BlogFilters{Author: &author})
	return blogs, err
}

func (p *BlogRepository) Update(ctx context.Context, id uuid.UUID, update *model.UpdateBlogDTO) (*model.Blog, error) {
	if update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	blog, exists := p.blogs[id]
	if !exists {
		return nil, custom_errors.ErrBlogNotFound
	}

	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Content != nil {
		blog.Content = *update.Content
	}
	if update.IsPublished != nil {
		blog.IsPublished = *update.IsPublished
	}
	blog.UpdatedAt = pgtype.Timestamptz{Time: p.now().UTC(), Valid: true}

	result := *blog
	return &result, nil
}

func (p *BlogRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	blog, exists := p.blogs[id]
	if !exists {
		return nil, custom_errors.ErrBlogNotFound
	}
	delete(p.blogs, id)

	return blog, nil
}

func (p *BlogRepository) List(ctx context.Context, filters model.BlogFilters) ([]*model.Blog, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	filtered := make([]*model.Blog, 0, len(p.blogs))
	for _, blog := range p.blogs {
		if filters.Author != nil && blog.Author != *filters.Author {
			continue
		}
		if filters.IsPublished != nil && blog.IsPublished != *filters.IsPublished {
			continue
		}
		blogCopy := *blog
		filtered = append(filtered, &blogCopy)
	}

	sort.Slice(filtered, func(i, j int) bool {
		ti, tj := filtered[i].CreatedAt.Time, filtered[j].CreatedAt.Time
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return filtered[i].Seq < filtered[j].Seq
	})

	total := len(filtered)

	if filters.Offset != nil {
		offset := max(*filters.Offset, 0)
		if offset >= len(filtered) {
			return []*model.Blog{}, total, nil
		}
		filtered = filtered[offset:]
	}

	if filters.Limit != nil && *filters.Limit < len(filtered) {
		filtered = filtered[:*filters.Limit]
	}

	return filtered, total, nil
}

func (p *BlogRepository) Ping(ctx context.Context) error {
	return nil
}
