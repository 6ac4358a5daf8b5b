package repository

import (
	"context"

	"github.com/rafael/mathsolver/internal/models"
)

// ProblemRepository handles math-problem data access
type ProblemRepository interface {
	Insert(ctx context.Context, problem models.InsertProblem) (*models.Problem, error)
	Get(ctx context.Context, id string) (*models.Problem, error)
	List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error)
	Recent(ctx context.Context, limit int) ([]models.Problem, error)
	Favorites(ctx context.Context) ([]models.Problem, error)
	SetFavorite(ctx context.Context, id string, isFavorite bool) error
}

// SolutionRepository handles solution data access
type SolutionRepository interface {
	Insert(ctx context.Context, solution models.InsertSolution) (*models.Solution, error)
	// InsertWithProblem persists a problem and its solution as one unit.
	// The solution's ProblemID is assigned from the newly created problem.
	InsertWithProblem(ctx context.Context, problem models.InsertProblem, solution models.InsertSolution) (*models.Problem, *models.Solution, error)
	// ForProblem returns the latest solution for the problem by creation
	// time, or nil when none exists.
	ForProblem(ctx context.Context, problemID string) (*models.Solution, error)
}

// SessionRepository handles study-session data access
type SessionRepository interface {
	Insert(ctx context.Context, session models.InsertStudySession) (*models.StudySession, error)
	List(ctx context.Context) ([]models.StudySession, error)
}

// ProgressRepository handles the per-category progress ledger
type ProgressRepository interface {
	All(ctx context.Context) ([]models.UserProgress, error)
	// ByCategory returns nil when the category has no record yet.
	ByCategory(ctx context.Context, category string) (*models.UserProgress, error)
	// Upsert creates or replaces the single record for the category.
	Upsert(ctx context.Context, progress models.UserProgress) (*models.UserProgress, error)
}

// AttemptRepository handles the append-only attempt log
type AttemptRepository interface {
	Insert(ctx context.Context, attempt models.InsertProblemAttempt) (*models.ProblemAttempt, error)
	ForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error)
}

// Store bundles the per-entity repositories of one storage backend.
type Store struct {
	Problems  ProblemRepository
	Solutions SolutionRepository
	Sessions  SessionRepository
	Progress  ProgressRepository
	Attempts  AttemptRepository
}
