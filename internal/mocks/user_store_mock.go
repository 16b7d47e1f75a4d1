package mocks

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReadAll is a mock implementation of store.UserStore.ReadAll
func (m *TestifyMockUserStore) ReadAll(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReadByID is a mock implementation of store.UserStore.ReadByID
func (m *TestifyMockUserStore) ReadByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.UserStore.Update
func (m *TestifyMockUserStore) Update(
	ctx context.Context,
	user *domain.User,
) (store.UpdateResult[*domain.User], error) {
	args := m.Called(ctx, user)
	res, _ := args.Get(0).(store.UpdateResult[*domain.User])
	return res, args.Error(1)
}

// Delete is a mock implementation of store.UserStore.Delete
func (m *TestifyMockUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// Ping is a mock implementation of store.UserStore.Ping
func (m *TestifyMockUserStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
