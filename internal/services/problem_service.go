package services

import (
	"context"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/repository"
)

// ProblemService handles problem-related business logic
type ProblemService interface {
	CreateProblem(ctx context.Context, insert models.InsertProblem) (*models.Problem, error)
	RecentProblems(ctx context.Context, limit int) ([]models.Problem, error)
	FavoriteProblems(ctx context.Context) ([]models.Problem, error)
	SetFavorite(ctx context.Context, id string, isFavorite bool) error
	SolutionForProblem(ctx context.Context, problemID string) (*models.Solution, error)
}

type problemService struct {
	problems  repository.ProblemRepository
	solutions repository.SolutionRepository
}

// NewProblemService creates a new ProblemService
func NewProblemService(problems repository.ProblemRepository, solutions repository.SolutionRepository) ProblemService {
	return &problemService{problems: problems, solutions: solutions}
}

// appError passes application errors through unchanged and wraps
// everything else as internal.
func appError(err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	return errors.NewInternalError(err)
}

func (s *problemService) CreateProblem(ctx context.Context, insert models.InsertProblem) (*models.Problem, error) {
	log := logger.FromContext(ctx)

	if err := insert.Validate(); err != nil {
		log.Warn("problem payload rejected: %v", err)
		return nil, err
	}

	problem, err := s.problems.Insert(ctx, insert)
	if err != nil {
		log.Error("failed to create problem: %v", err)
		return nil, appError(err)
	}
	log.Info("problem created: id=%s, category=%s", problem.ID, problem.Category)
	return problem, nil
}

func (s *problemService) RecentProblems(ctx context.Context, limit int) ([]models.Problem, error) {
	if limit <= 0 {
		limit = 10
	}
	problems, err := s.problems.Recent(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list recent problems: %v", err)
		return nil, appError(err)
	}
	return problems, nil
}

func (s *problemService) FavoriteProblems(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.problems.Favorites(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list favorite problems: %v", err)
		return nil, appError(err)
	}
	return problems, nil
}

func (s *problemService) SetFavorite(ctx context.Context, id string, isFavorite bool) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return errors.NewValidationError("id", "cannot be empty")
	}
	if err := s.problems.SetFavorite(ctx, id, isFavorite); err != nil {
		log.Warn("failed to set favorite: id=%s: %v", id, err)
		return appError(err)
	}
	log.Debug("favorite updated: id=%s, is_favorite=%t", id, isFavorite)
	return nil
}

func (s *problemService) SolutionForProblem(ctx context.Context, problemID string) (*models.Solution, error) {
	log := logger.FromContext(ctx)

	solution, err := s.solutions.ForProblem(ctx, problemID)
	if err != nil {
		log.Error("failed to get solution: problem_id=%s: %v", problemID, err)
		return nil, appError(err)
	}
	if solution == nil {
		return nil, errors.NewNotFoundError("solution", problemID)
	}
	return solution, nil
}
