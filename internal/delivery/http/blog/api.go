package blog_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/model"
	blog_service "blog-service/internal/service/blog"
)

// NewValidator returns a validator with the "userid" rule registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return model.IsValidUserID(fl.Field().String())
	})
	return v
}

type BlogHandler struct {
	log *logger.Logger

	listPublished   *ListPublishedHandler
	listOwn         *ListOwnHandler
	createBlog      *CreateBlogHandler
	editBlog        *EditBlogHandler
	deleteBlog      *DeleteBlogHandler
	adminList       *AdminListHandler
	listByAuthor    *ListByAuthorHandler
	adminDeleteBlog *AdminDeleteBlogHandler
	health          *HealthHandler
}

func NewBlogHandler(blogService blog_service.Service, log *logger.Logger) *BlogHandler {
	validate := NewValidator()
	return &BlogHandler{
		log:             log,
		listPublished:   NewListPublishedHandler(blogService, log),
		listOwn:         NewListOwnHandler(blogService, log),
		createBlog:      NewCreateBlogHandler(blogService, validate, log),
		editBlog:        NewEditBlogHandler(blogService, log),
		deleteBlog:      NewDeleteBlogHandler(blogService, log),
		adminList:       NewAdminListHandler(blogService, log),
		listByAuthor:    NewListByAuthorHandler(blogService, validate, log),
		adminDeleteBlog: NewAdminDeleteBlogHandler(blogService, log),
		health:          NewHealthHandler(blogService, log),
	}
}

// Register mounts the public, user and admin routes on r.
func (h *BlogHandler) Register(r chi.Router) {
	r.Get("/health", h.health.Health)

	r.Get("/public/viewall", h.listPublished.ListPublished)

	r.Route("/user", func(r chi.Router) {
		r.Use(middleware.ExtractUser(h.log))
		r.Get("/myblogs", h.listOwn.ListOwn)
		r.Post("/create-blog", h.createBlog.CreateBlog)
		r.Put("/edit-blog/{id}", h.editBlog.EditBlog)
		r.Delete("/delete-blog/{id}", h.deleteBlog.DeleteBlog)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.log))
		r.Get("/blogs", h.adminList.AdminListAll)
		r.Get("/blogs/{id}", h.listByAuthor.ListByAuthor)
		r.Delete("/blogs/{id}", h.adminDeleteBlog.AdminDeleteBlog)
	})
}
