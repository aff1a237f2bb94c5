package model

import "github.com/jackc/pgx/v5/pgtype"

// AuthorView is the display profile attached to a public blog. Nil means the lookup failed.
type AuthorView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PublicBlog hides the identifier and publish flag.
type PublicBlog struct {
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Author    *AuthorView        `json:"author"`
	CreatedAt pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt pgtype.Timestamptz `json:"updatedAt"`
}

type AuthorInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AdminBlog keeps the raw author id next to the resolved profile.
type AdminBlog struct {
	*Blog
	AuthorInfo *AuthorInfo `json:"authorInfo"`
}

func NewPublicBlog(blog *Blog, author *User) *PublicBlog {
	view := &PublicBlog{
		Title:     blog.Title,
		Content:   blog.Content,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	if author != nil {
		view.Author = &AuthorView{Username: author.Username, Email: author.Email}
	}
	return view
}

func NewAdminBlog(blog *Blog, author *User) *AdminBlog {
	view := &AdminBlog{Blog: blog}
	if author != nil {
		view.AuthorInfo = &AuthorInfo{ID: blog.Author, Username: author.Username, Email: author.Email}
	}
	return view
}
