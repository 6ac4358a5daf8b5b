package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/solver"
)

// MockSolverClient is a mock implementation of solver.ClientInterface
type MockSolverClient struct {
	mock.Mock
}

func (m *MockSolverClient) Solve(ctx context.Context, req models.SolveRequest) (*solver.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solver.Result), args.Error(1)
}
