package model

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Blog struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Author      string             `json:"author"`
	IsPublished bool               `json:"isPublished"`
	CreatedAt   pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt   pgtype.Timestamptz `json:"updatedAt"`
	// Seq is the insertion sequence; it breaks createdAt ties.
	Seq int64 `json:"-"`
}
