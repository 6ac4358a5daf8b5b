package memory

import (
	"context"
	"sort"

	"github.com/rafael/mathsolver/internal/models"
)

type attemptRepo Store

func (r *attemptRepo) Insert(ctx context.Context, insert models.InsertProblemAttempt) (*models.ProblemAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempt := models.ProblemAttempt{
		ID:          newID(),
		ProblemID:   insert.ProblemID,
		UserAnswer:  insert.UserAnswer,
		IsCorrect:   insert.IsCorrect,
		HintsUsed:   insert.HintsUsed,
		TimeSpent:   insert.TimeSpent,
		AttemptedAt: r.now(),
	}
	r.attempts[attempt.ID] = attempt

	snap := attempt
	return &snap, nil
}

func (r *attemptRepo) ForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.ProblemAttempt
	for _, a := range r.attempts {
		if a.ProblemID == problemID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AttemptedAt.After(out[j].AttemptedAt)
	})
	return out, nil
}
