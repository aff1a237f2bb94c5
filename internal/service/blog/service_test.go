package blog_service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
	"blog-service/internal/model"
	blog_repository_mock "blog-service/mocks/blog"
	user_client_mock "blog-service/mocks/user"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBlogService_CreateBlog(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	createdID := uuid.New()

	tests := []struct {
		name    string
		mocks   func(blogRepo *blog_repository_mock.Repository)
		dto     *model.CreateBlogDTO
		want    *model.Blog
		wantErr error
	}{
		{
			name: "Success defaults to published",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("Create", mock.Anything, &model.Blog{Title: "T", Content: "C", Author: "user-1", IsPublished: true}).
					Return(&model.Blog{ID: createdID, Title: "T", Content: "C", Author: "user-1", IsPublished: true}, nil)
			},
			dto:  &model.CreateBlogDTO{Author: "user-1", Title: "T", Content: "C"},
			want: &model.Blog{ID: createdID, Title: "T", Content: "C", Author: "user-1", IsPublished: true},
		},
		{
			name: "Success as draft",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("Create", mock.Anything, &model.Blog{Title: "T", Content: "C", Author: "user-1", IsPublished: false}).
					Return(&model.Blog{ID: createdID, Title: "T", Content: "C", Author: "user-1"}, nil)
			},
			dto:  &model.CreateBlogDTO{Author: "user-1", Title: "T", Content: "C", IsPublished: ptr(false)},
			want: &model.Blog{ID: createdID, Title: "T", Content: "C", Author: "user-1"},
		},
		{
			name:    "Missing title",
			mocks:   func(blogRepo *blog_repository_mock.Repository) {},
			dto:     &model.CreateBlogDTO{Author: "user-1", Content: "C"},
			wantErr: custom_errors.ErrValidation,
		},
		{
			name:    "Missing content",
			mocks:   func(blogRepo *blog_repository_mock.Repository) {},
			dto:     &model.CreateBlogDTO{Author: "user-1", Title: "T"},
			wantErr: custom_errors.ErrValidation,
		},
		{
			name:    "Malformed author",
			mocks:   func(blogRepo *blog_repository_mock.Repository) {},
			dto:     &model.CreateBlogDTO{Author: "bad id", Title: "T", Content: "C"},
			wantErr: custom_errors.ErrInvalidUserID,
		},
		{
			name: "Store failure",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Blog")).Return(nil, errors.New("connection reset"))
			},
			dto:     &model.CreateBlogDTO{Author: "user-1", Title: "T", Content: "C"},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogRepo := blog_repository_mock.NewRepository(t)
			userClient := user_client_mock.NewClient(t)
			tt.mocks(blogRepo)

			s := NewBlogService(blogRepo, log, userClient, metrics)
			got, err := s.CreateBlog(context.Background(), tt.dto)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlogService_EditBlog(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	blogID := uuid.New()
	existing := &model.Blog{ID: blogID, Title: "T", Content: "C", Author: "user-1", IsPublished: true}

	tests := []struct {
		name       string
		mocks      func(blogRepo *blog_repository_mock.Repository)
		callerID   string
		blogID     string
		patch      *model.UpdateBlogDTO
		want       *model.Blog
		wantErr    error
		wantUpdate bool
	}{
		{
			name: "Success unpublish",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
				blogRepo.On("Update", mock.Anything, blogID, &model.UpdateBlogDTO{IsPublished: ptr(false)}).
					Return(&model.Blog{ID: blogID, Title: "T", Content: "C", Author: "user-1"}, nil)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{IsPublished: ptr(false)},
			want:     &model.Blog{ID: blogID, Title: "T", Content: "C", Author: "user-1"},
		},
		{
			name:     "Malformed id",
			mocks:    func(blogRepo *blog_repository_mock.Repository) {},
			callerID: "user-1",
			blogID:   "not-a-uuid",
			patch:    &model.UpdateBlogDTO{Title: ptr("x")},
			wantErr:  custom_errors.ErrInvalidBlogID,
		},
		{
			name: "Not found",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(nil, custom_errors.ErrBlogNotFound)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{Title: ptr("x")},
			wantErr:  custom_errors.ErrBlogNotFound,
		},
		{
			name: "Not the author",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
			},
			callerID: "user-2",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{Title: ptr("x")},
			wantErr:  custom_errors.ErrNotBlogAuthor,
		},
		{
			name: "Empty patch",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{},
			wantErr:  custom_errors.ErrNoUpdateFields,
		},
		{
			name: "Blank title",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{Title: ptr("")},
			wantErr:  custom_errors.ErrValidation,
		},
		{
			name: "Lookup failure",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(nil, custom_errors.ErrDatabaseQuery)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			patch:    &model.UpdateBlogDTO{Title: ptr("x")},
			wantErr:  custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Update failure",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
				blogRepo.On("Update", mock.Anything, blogID, mock.Anything).Return(nil, errors.New("boom"))
			},
			callerID:   "user-1",
			blogID:     blogID.String(),
			patch:      &model.UpdateBlogDTO{Content: ptr("new")},
			wantErr:    custom_errors.ErrDatabaseQuery,
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogRepo := blog_repository_mock.NewRepository(t)
			tt.mocks(blogRepo)

			s := NewBlogService(blogRepo, log, user_client_mock.NewClient(t), metrics)
			got, err := s.EditBlog(context.Background(), tt.callerID, tt.blogID, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				if !tt.wantUpdate {
					blogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlogService_DeleteBlog(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	blogID := uuid.New()
	existing := &model.Blog{ID: blogID, Title: "T", Content: "C", Author: "user-1"}

	tests := []struct {
		name     string
		mocks    func(blogRepo *blog_repository_mock.Repository)
		callerID string
		blogID   string
		wantErr  error
	}{
		{
			name: "Success",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
				blogRepo.On("Delete", mock.Anything, blogID).Return(existing, nil)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
		},
		{
			name:     "Malformed id",
			mocks:    func(blogRepo *blog_repository_mock.Repository) {},
			callerID: "user-1",
			blogID:   "123",
			wantErr:  custom_errors.ErrInvalidBlogID,
		},
		{
			name: "Not found",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(nil, custom_errors.ErrBlogNotFound)
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			wantErr:  custom_errors.ErrBlogNotFound,
		},
		{
			name: "Not the author",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
			},
			callerID: "user-2",
			blogID:   blogID.String(),
			wantErr:  custom_errors.ErrNotBlogAuthor,
		},
		{
			name: "Delete failure",
			mocks: func(blogRepo *blog_repository_mock.Repository) {
				blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
				blogRepo.On("Delete", mock.Anything, blogID).Return(nil, errors.New("boom"))
			},
			callerID: "user-1",
			blogID:   blogID.String(),
			wantErr:  custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogRepo := blog_repository_mock.NewRepository(t)
			tt.mocks(blogRepo)

			s := NewBlogService(blogRepo, log, user_client_mock.NewClient(t), metrics)
			got, err := s.DeleteBlog(context.Background(), tt.callerID, tt.blogID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, existing, got)
		})
	}
}

func TestBlogService_AdminDeleteBlog(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	blogID := uuid.New()
	existing := &model.Blog{ID: blogID, Title: "T", Content: "C", Author: "someone-else"}

	t.Run("Success without ownership check", func(t *testing.T) {
		blogRepo := blog_repository_mock.NewRepository(t)
		blogRepo.On("GetByID", mock.Anything, blogID).Return(existing, nil)
		blogRepo.On("Delete", mock.Anything, blogID).Return(existing, nil)

		s := NewBlogService(blogRepo, log, user_client_mock.NewClient(t), metrics)
		got, err := s.AdminDeleteBlog(context.Background(), blogID.String())
		assert.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("Not found", func(t *testing.T) {
		blogRepo := blog_repository_mock.NewRepository(t)
		blogRepo.On("GetByID", mock.Anything, blogID).Return(nil, custom_errors.ErrBlogNotFound)

		s := NewBlogService(blogRepo, log, user_client_mock.NewClient(t), metrics)
		_, err := s.AdminDeleteBlog(context.Background(), blogID.String())
		assert.ErrorIs(t, err, custom_errors.ErrBlogNotFound)
	})

	t.Run("Malformed id", func(t *testing.T) {
		s := NewBlogService(blog_repository_mock.NewRepository(t), log, user_client_mock.NewClient(t), metrics)
		_, err := s.AdminDeleteBlog(context.Background(), "zzz")
		assert.ErrorIs(t, err, custom_errors.ErrInvalidBlogID)
	})
}
