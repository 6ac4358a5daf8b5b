package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafael/mathsolver/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) All(ctx context.Context) ([]models.UserProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) ByCategory(ctx context.Context, category string) (*models.UserProgress, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress models.UserProgress) (*models.UserProgress, error) {
	args := m.Called(ctx, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}
