package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"blog-service/internal/model"
)

// Repository is a mock type for the blog Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	ret := _m.Called(ctx, blog)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GetByAuthor(ctx context.Context, author string) ([]*model.Blog, error) {
	ret := _m.Called(ctx, author)
	var r0 []*model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) Update(ctx context.Context, id uuid.UUID, update *model.UpdateBlogDTO) (*model.Blog, error) {
	ret := _m.Called(ctx, id, update)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Blog)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) List(ctx context.Context, filters model.BlogFilters) ([]*model.Blog, int, error) {
	ret := _m.Called(ctx, filters)
	var r0 []*model.Blog
	if v := ret.Get(0); v != nil {
		r0 = v.([]*model.Blog)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (_m *Repository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewRepository creates a new instance of Repository and registers cleanup assertions.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
