package services

import (
	"context"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/repository"
	"github.com/rafael/mathsolver/internal/solver"
)

// SolveMethod is recorded on every AI-produced solution.
const SolveMethod = "AI-powered solution"

// SolveResult pairs the persisted problem with its solution.
type SolveResult struct {
	Problem  *models.Problem  `json:"problem"`
	Solution *models.Solution `json:"solution"`
}

// SolveService handles AI problem solving
type SolveService interface {
	// Solve validates the request, asks the reasoning model for a
	// structured solution and persists problem + solution as one unit.
	Solve(ctx context.Context, req models.SolveRequest) (*SolveResult, error)
}

type solveService struct {
	client    solver.ClientInterface
	solutions repository.SolutionRepository
}

// NewSolveService creates a new SolveService
func NewSolveService(client solver.ClientInterface, solutions repository.SolutionRepository) SolveService {
	return &solveService{client: client, solutions: solutions}
}

func (s *solveService) Solve(ctx context.Context, req models.SolveRequest) (*SolveResult, error) {
	log := logger.FromContext(ctx).WithField("category", req.Category)

	if err := req.Validate(); err != nil {
		log.Warn("solve request rejected: %v", err)
		return nil, err
	}

	result, err := s.client.Solve(ctx, req)
	if err != nil {
		log.Error("solver call failed: %v", err)
		return nil, appError(err)
	}

	insertProblem := models.InsertProblem{
		ProblemText: req.ProblemText,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
	}
	if req.ImageData != "" {
		insertProblem.ImageURL = solver.ImageDataURL(req.ImageData)
	}

	insertSolution := models.InsertSolution{
		Solution:    result.Data,
		FinalAnswer: result.FinalAnswer,
		Confidence:  result.Confidence,
		TimeToSolve: result.TimeToSolve,
		Method:      SolveMethod,
	}

	problem, solution, err := s.solutions.InsertWithProblem(ctx, insertProblem, insertSolution)
	if err != nil {
		log.Error("failed to persist solve result: %v", err)
		return nil, appError(err)
	}

	log.Info("problem solved: problem_id=%s, confidence=%d, time_to_solve_ms=%d",
		problem.ID, solution.Confidence, solution.TimeToSolve)
	return &SolveResult{Problem: problem, Solution: solution}, nil
}
