package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-service/internal/model"
)

// Client is a mock type for the user Client type
type Client struct {
	mock.Mock
}

func (_m *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.User)
	}
	return r0, ret.Error(1)
}

// NewClient creates a new instance of Client and registers cleanup assertions.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
