package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-service/internal/model"
)

// Service is a mock type for the blog Service type
type Service struct {
	mock.Mock
}

func (_m *Service) ListPublished(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PublicBlog], error) {
	ret := _m.Called(ctx, pagination)
	var r0 *model.Page[*model.PublicBlog]
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Page[*model.PublicBlog])
	}
	return r0, ret.Error(1)
}

func (_m *Service) AdminListAll(ctx context.Context, pagination model.Pagination) (*model.Page[*model.AdminBlog], error) {
	ret := _m.Called(ctx, pagination)
	var r0 *model.Page[*model.AdminBlog]
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Page[*model.AdminBlog])
	}
	return r0, ret.Error(1)
}

func (_m *Service) ListByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error) {
	ret := _m.Called(ctx, authorID)
	var r0 []*model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Service) ListOwn(ctx context.Context, callerID string, pagination model.Pagination) (*model.Page[*model.Blog], error) {
	ret := _m.Called(ctx, callerID, pagination)
	var r0 *model.Page[*model.Blog]
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Page[*model.Blog])
	}
	return r0, ret.Error(1)
}

func (_m *Service) CreateBlog(ctx context.Context, blog *model.CreateBlogDTO) (*model.Blog, error) {
	ret := _m.Called(ctx, blog)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Service) EditBlog(ctx context.Context, callerID string, blogID string, patch *model.UpdateBlogDTO) (*model.Blog, error) {
	ret := _m.Called(ctx, callerID, blogID, patch)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Service) DeleteBlog(ctx context.Context, callerID string, blogID string) (*model.Blog, error) {
	ret := _m.Called(ctx, callerID, blogID)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Service) AdminDeleteBlog(ctx context.Context, blogID string) (*model.Blog, error) {
	ret := _m.Called(ctx, blogID)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Service) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewService creates a new instance of Service and registers cleanup assertions.
func NewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *Service {
	m := &Service{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
