package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafael/mathsolver/internal/models"
)

// MockProblemRepository is a mock implementation of repository.ProblemRepository
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Insert(ctx context.Context, problem models.InsertProblem) (*models.Problem, error) {
	args := m.Called(ctx, problem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemRepository) Get(ctx context.Context, id string) (*models.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}

func (m *MockProblemRepository) Recent(ctx context.Context, limit int) ([]models.Problem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}

func (m *MockProblemRepository) Favorites(ctx context.Context) ([]models.Problem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}

func (m *MockProblemRepository) SetFavorite(ctx context.Context, id string, isFavorite bool) error {
	args := m.Called(ctx, id, isFavorite)
	return args.Error(0)
}
