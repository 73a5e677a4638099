package mocks

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/miloosorio186/dashboard-tech/internal/gateway"
	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// MockGateway is a mock implementation of gateway.Gateway. Per-resource
// latencies let tests stagger the fetch join; call counters let tests assert
// how many round-trips actually happened.
type MockGateway struct {
	UsersFunc    func(ctx context.Context) ([]models.User, error)
	ProductsFunc func(ctx context.Context) ([]models.Product, error)
	CartsFunc    func(ctx context.Context) ([]models.Cart, error)
	PostsFunc    func(ctx context.Context) ([]models.Post, error)

	UsersLatency    time.Duration
	ProductsLatency time.Duration
	CartsLatency    time.Duration
	PostsLatency    time.Duration

	UsersCalls    int64
	ProductsCalls int64
	CartsCalls    int64
	PostsCalls    int64
}

// Verify interface compliance
var _ gateway.Gateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) FetchUsers(ctx context.Context) ([]models.User, error) {
	atomic.AddInt64(&m.UsersCalls, 1)
	sleep(m.UsersLatency)
	if m.UsersFunc != nil {
		return m.UsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockGateway) FetchProducts(ctx context.Context) ([]models.Product, error) {
	atomic.AddInt64(&m.ProductsCalls, 1)
	sleep(m.ProductsLatency)
	if m.ProductsFunc != nil {
		return m.ProductsFunc(ctx)
	}
	return []models.Product{}, nil
}

func (m *MockGateway) FetchCarts(ctx context.Context) ([]models.Cart, error) {
	atomic.AddInt64(&m.CartsCalls, 1)
	sleep(m.CartsLatency)
	if m.CartsFunc != nil {
		return m.CartsFunc(ctx)
	}
	return []models.Cart{}, nil
}

func (m *MockGateway) FetchPosts(ctx context.Context) ([]models.Post, error) {
	atomic.AddInt64(&m.PostsCalls, 1)
	sleep(m.PostsLatency)
	if m.PostsFunc != nil {
		return m.PostsFunc(ctx)
	}
	return []models.Post{}, nil
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
