package services

import (
	"context"
	"sync"
	"time"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/progress"
	"github.com/rafael/mathsolver/internal/repository"
)

// ProgressService maintains the per-category progress ledger
type ProgressService interface {
	// RecordAttempt appends to the attempt log and folds the result into
	// the category ledger of the attempted problem.
	RecordAttempt(ctx context.Context, insert models.InsertProblemAttempt) (*models.ProblemAttempt, error)
	Progress(ctx context.Context) ([]models.ProgressWithAccuracy, error)
	AttemptsForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error)
}

type progressService struct {
	problems repository.ProblemRepository
	ledger   repository.ProgressRepository
	attempts repository.AttemptRepository

	// Serializes the per-category read-modify-write so concurrent
	// attempts cannot lose updates.
	mu sync.Mutex
}

// NewProgressService creates a new ProgressService
func NewProgressService(problems repository.ProblemRepository, ledger repository.ProgressRepository, attempts repository.AttemptRepository) ProgressService {
	return &progressService{problems: problems, ledger: ledger, attempts: attempts}
}

func (s *progressService) RecordAttempt(ctx context.Context, insert models.InsertProblemAttempt) (*models.ProblemAttempt, error) {
	log := logger.FromContext(ctx)

	if err := insert.Validate(); err != nil {
		log.Warn("attempt payload rejected: %v", err)
		return nil, err
	}

	problem, err := s.problems.Get(ctx, insert.ProblemID)
	if err != nil {
		log.Error("failed to load problem for attempt: %v", err)
		return nil, appError(err)
	}
	if problem == nil {
		return nil, errors.NewNotFoundError("problem", insert.ProblemID)
	}

	attempt, err := s.attempts.Insert(ctx, insert)
	if err != nil {
		log.Error("failed to record attempt: %v", err)
		return nil, appError(err)
	}

	if err := s.updateLedger(ctx, problem.Category, insert); err != nil {
		// The attempt is already in the log; surface the ledger failure
		// so the caller knows the counters may lag.
		log.Error("failed to update progress ledger: category=%s: %v", problem.Category, err)
		return nil, appError(err)
	}

	log.Info("attempt recorded: problem_id=%s, category=%s, is_correct=%t",
		insert.ProblemID, problem.Category, insert.IsCorrect)
	return attempt, nil
}

func (s *progressService) updateLedger(ctx context.Context, category string, insert models.InsertProblemAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.ledger.ByCategory(ctx, category)
	if err != nil {
		return err
	}
	current := progress.NewRecord(category)
	if record != nil {
		current = *record
	}

	updated := progress.ApplyAttempt(current, insert.IsCorrect, insert.TimeSpent, time.Now().UTC())
	_, err = s.ledger.Upsert(ctx, updated)
	return err
}

func (s *progressService) Progress(ctx context.Context) ([]models.ProgressWithAccuracy, error) {
	records, err := s.ledger.All(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list progress: %v", err)
		return nil, appError(err)
	}

	out := make([]models.ProgressWithAccuracy, 0, len(records))
	for _, r := range records {
		out = append(out, models.ProgressWithAccuracy{
			UserProgress: r,
			Accuracy:     progress.Accuracy(r),
		})
	}
	return out, nil
}

func (s *progressService) AttemptsForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error) {
	attempts, err := s.attempts.ForProblem(ctx, problemID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list attempts: problem_id=%s: %v", problemID, err)
		return nil, appError(err)
	}
	return attempts, nil
}
