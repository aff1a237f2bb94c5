package model

type BlogFilters struct {
	Author      *string
	IsPublished *bool
	Limit       *int
	Offset      *int
}
