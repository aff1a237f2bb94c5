package blog_service

import (
	"context"

	"blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/service --outpkg mocks --filename Service.go
type Service interface {
	ListPublished(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PublicBlog], error)
	AdminListAll(ctx context.Context, pagination model.Pagination) (*model.Page[*model.AdminBlog], error)
	ListByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error)
	ListOwn(ctx context.Context, callerID string, pagination model.Pagination) (*model.Page[*model.Blog], error)

	CreateBlog(ctx context.Context, blog *model.CreateBlogDTO) (*model.Blog, error)
	EditBlog(ctx context.Context, callerID string, blogID string, patch *model.UpdateBlogDTO) (*model.Blog, error)
	DeleteBlog(ctx context.Context, callerID string, blogID string) (*model.Blog, error)
	AdminDeleteBlog(ctx context.Context, blogID string) (*model.Blog, error)

	Ping(ctx context.Context) error
}
