package model

type CreateBlogDTO struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}
