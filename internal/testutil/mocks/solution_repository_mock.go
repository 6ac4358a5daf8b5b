package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafael/mathsolver/internal/models"
)

// MockSolutionRepository is a mock implementation of repository.SolutionRepository
type MockSolutionRepository struct {
	mock.Mock
}

func (m *MockSolutionRepository) Insert(ctx context.Context, solution models.InsertSolution) (*models.Solution, error) {
	args := m.Called(ctx, solution)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Solution), args.Error(1)
}

func (m *MockSolutionRepository) InsertWithProblem(ctx context.Context, problem models.InsertProblem, solution models.InsertSolution) (*models.Problem, *models.Solution, error) {
	args := m.Called(ctx, problem, solution)
	var p *models.Problem
	var s *models.Solution
	if args.Get(0) != nil {
		p = args.Get(0).(*models.Problem)
	}
	if args.Get(1) != nil {
		s = args.Get(1).(*models.Solution)
	}
	return p, s, args.Error(2)
}

func (m *MockSolutionRepository) ForProblem(ctx context.Context, problemID string) (*models.Solution, error) {
	args := m.Called(ctx, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Solution), args.Error(1)
}
