package user_client

import (
	"context"

	"blog-service/internal/model"
)

//go:generate mockery --name Client --dir . --output ../../../mocks/user --outpkg mocks --filename Client.go
type Client interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}
