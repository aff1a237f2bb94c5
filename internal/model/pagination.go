package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Pagination struct {
	Page  int
	Limit int
}

// NewPagination replaces non-positive values with the defaults.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset saturates at math.MaxInt so an oversized page yields an empty result.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func TotalPages(totalItems, limit int) int {
	if limit < 1 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / limit
	if totalItems%limit != 0 {
		pages++
	}
	return pages
}

type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int
}
