package model

// UpdateBlogDTO is a partial update. A nil field is left untouched.
type UpdateBlogDTO struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

func (u *UpdateBlogDTO) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Content == nil && u.IsPublished == nil)
}
