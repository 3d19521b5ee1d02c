package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"weddingplanner/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRecordRepository is a mock implementation of RecordRepository.
type MockRecordRepository[T any] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) Create(ctx context.Context, rec *T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) ListByOwner(ctx context.Context, ownerID string, limit int) ([]T, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, ownerID, id string, rec *T) (int64, error) {
	args := m.Called(ctx, ownerID, id, rec)
	return args.Get(0).(int64), args.Error(1)
}
