package blog_repository

import (
	"context"

	"github.com/google/uuid"

	"blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/blog --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	GetByAuthor(ctx context.Context, author string) ([]*model.Blog, error)
	Update(ctx context.Context, id uuid.UUID, update *model.UpdateBlogDTO) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	List(ctx context.Context, filters model.BlogFilters) ([]*model.Blog, int, error)
	Ping(ctx context.Context) error
}
