package mocks

import (
	"context"

	"github.com/dataincloud/resource-api/internal/domain"
	"github.com/dataincloud/resource-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPostStore is a mock of store.PostStore interface for use with testify/mock
type TestifyMockPostStore struct {
	mock.Mock
}

var _ store.PostStore = (*TestifyMockPostStore)(nil)

func (m *TestifyMockPostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, post)
	if p, ok := args.Get(0).(*domain.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) ReadAll(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]*domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) ReadByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) Update(
	ctx context.Context,
	post *domain.Post,
) (store.UpdateResult[*domain.Post], error) {
	args := m.Called(ctx, post)
	res, _ := args.Get(0).(store.UpdateResult[*domain.Post])
	return res, args.Error(1)
}

func (m *TestifyMockPostStore) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
