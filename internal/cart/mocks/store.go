package mocks

import (
	"context"

	"github.com/darkkaiser/zzirit-storefront/internal/cart"
	"github.com/stretchr/testify/mock"
)

// MockStore는 cart.Store 인터페이스의 Mock 구현체입니다.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) AddLine(ctx context.Context, cartID string, line cart.Line) (cart.Cart, error) {
	args := m.Called(ctx, cartID, line)
	return args.Get(0).(cart.Cart), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, cartID string) (cart.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(cart.Cart), args.Error(1)
}

func (m *MockStore) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
