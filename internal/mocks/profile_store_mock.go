package mocks

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockProfileStore is a mock of store.ProfileStore interface for use with testify/mock
type TestifyMockProfileStore struct {
	mock.Mock
}

var _ store.ProfileStore = (*TestifyMockProfileStore)(nil)

func (m *TestifyMockProfileStore) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, profile)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockProfileStore) ReadAll(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if profiles, ok := args.Get(0).([]*domain.Profile); ok {
		return profiles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockProfileStore) ReadByID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockProfileStore) Update(
	ctx context.Context,
	profile *domain.Profile,
) (store.UpdateResult[*domain.Profile], error) {
	args := m.Called(ctx, profile)
	res, _ := args.Get(0).(store.UpdateResult[*domain.Profile])
	return res, args.Error(1)
}

func (m *TestifyMockProfileStore) Delete(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockProfileStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
