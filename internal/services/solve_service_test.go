package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/services"
	"github.com/rafael/mathsolver/internal/solver"
	"github.com/rafael/mathsolver/internal/testutil/mocks"
)

func TestSolvePersistsProblemAndSolution(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockSolverClient)
	solutions := new(mocks.MockSolutionRepository)
	svc := services.NewSolveService(client, solutions)

	req := models.SolveRequest{ProblemText: "2x + 5 = 15", Category: "algebra", Difficulty: 2}
	solved := &solver.Result{
		Data: models.SolutionData{
			Steps:       []models.SolutionStep{{Step: 1, Description: "subtract 5", Result: "2x = 10"}},
			Explanation: "isolate x",
			Concepts:    []string{"linear equations"},
		},
		FinalAnswer: "x = 5",
		Confidence:  92,
		TimeToSolve: 1850,
	}
	client.On("Solve", ctx, req).Return(solved, nil)

	wantProblem := models.InsertProblem{ProblemText: "2x + 5 = 15", Category: "algebra", Difficulty: 2}
	wantSolution := models.InsertSolution{
		Solution:    solved.Data,
		FinalAnswer: "x = 5",
		Confidence:  92,
		TimeToSolve: 1850,
		Method:      "AI-powered solution",
	}
	storedProblem := &models.Problem{ID: "p1", ProblemText: req.ProblemText, Category: req.Category, Difficulty: req.Difficulty}
	storedSolution := &models.Solution{ID: "s1", ProblemID: "p1", FinalAnswer: "x = 5", Confidence: 92, Method: "AI-powered solution"}
	solutions.On("InsertWithProblem", ctx, wantProblem, wantSolution).Return(storedProblem, storedSolution, nil)

	result, err := svc.Solve(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "p1", result.Problem.ID)
	assert.Equal(t, "p1", result.Solution.ProblemID)
	assert.Equal(t, "AI-powered solution", result.Solution.Method)

	client.AssertExpectations(t)
	solutions.AssertExpectations(t)
}

func TestSolveImageRequestStoresDataURL(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockSolverClient)
	solutions := new(mocks.MockSolutionRepository)
	svc := services.NewSolveService(client, solutions)

	req := models.SolveRequest{Category: "geometry", Difficulty: 1, ImageData: "aGVsbG8="}
	client.On("Solve", ctx, req).Return(&solver.Result{FinalAnswer: "42", Confidence: 75}, nil)

	solutions.On("InsertWithProblem", ctx, mock.MatchedBy(func(p models.InsertProblem) bool {
		return p.ImageURL == "data:image/jpeg;base64,aGVsbG8="
	}), mock.Anything).Return(&models.Problem{ID: "p1"}, &models.Solution{ID: "s1"}, nil)

	_, err := svc.Solve(ctx, req)
	require.NoError(t, err)
	solutions.AssertExpectations(t)
}

func TestSolveInvalidRequestSkipsSolver(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockSolverClient)
	solutions := new(mocks.MockSolutionRepository)
	svc := services.NewSolveService(client, solutions)

	tests := []struct {
		name string
		req  models.SolveRequest
	}{
		{"unknown category", models.SolveRequest{ProblemText: "x", Category: "astrology", Difficulty: 1}},
		{"difficulty out of range", models.SolveRequest{ProblemText: "x", Category: "algebra", Difficulty: 7}},
		{"no text or image", models.SolveRequest{Category: "algebra", Difficulty: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Solve(ctx, tt.req)
			require.Error(t, err)
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
		})
	}

	client.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything)
	solutions.AssertNotCalled(t, "InsertWithProblem", mock.Anything, mock.Anything, mock.Anything)
}

func TestSolveSolverFailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockSolverClient)
	solutions := new(mocks.MockSolutionRepository)
	svc := services.NewSolveService(client, solutions)

	req := models.SolveRequest{ProblemText: "x", Category: "algebra", Difficulty: 1}
	client.On("Solve", ctx, req).Return(nil, errors.NewSolverUnavailableError(stderrors.New("connection refused")))

	_, err := svc.Solve(ctx, req)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSolverUnavailable, appErr.Code)
	assert.Equal(t, 502, appErr.Status)

	solutions.AssertNotCalled(t, "InsertWithProblem", mock.Anything, mock.Anything, mock.Anything)
}

func TestSolveStorageFailureWrapsInternal(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockSolverClient)
	solutions := new(mocks.MockSolutionRepository)
	svc := services.NewSolveService(client, solutions)

	req := models.SolveRequest{ProblemText: "x", Category: "algebra", Difficulty: 1}
	client.On("Solve", ctx, req).Return(&solver.Result{FinalAnswer: "y", Confidence: 80}, nil)
	solutions.On("InsertWithProblem", ctx, mock.Anything, mock.Anything).
		Return(nil, nil, stderrors.New("disk full"))

	_, err := svc.Solve(ctx, req)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
}
