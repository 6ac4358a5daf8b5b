package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafael/mathsolver/internal/models"
)

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Insert(ctx context.Context, attempt models.InsertProblemAttempt) (*models.ProblemAttempt, error) {
	args := m.Called(ctx, attempt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProblemAttempt), args.Error(1)
}

func (m *MockAttemptRepository) ForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProblemAttempt), args.Error(1)
}
