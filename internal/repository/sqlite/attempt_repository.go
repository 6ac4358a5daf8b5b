package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

type attemptRepository struct {
	db *sql.DB
}

func (r *attemptRepository) Insert(ctx context.Context, insert models.InsertProblemAttempt) (*models.ProblemAttempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("recording attempt: problem_id=%s, is_correct=%t", insert.ProblemID, insert.IsCorrect)

	attempt := models.ProblemAttempt{
		ID:          uuid.NewString(),
		ProblemID:   insert.ProblemID,
		UserAnswer:  insert.UserAnswer,
		IsCorrect:   insert.IsCorrect,
		HintsUsed:   insert.HintsUsed,
		TimeSpent:   insert.TimeSpent,
		AttemptedAt: now(),
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO problem_attempts (id, problem_id, user_answer, is_correct, hints_used, time_spent, attempted_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, attempt.ID, attempt.ProblemID, nullable(attempt.UserAnswer), attempt.IsCorrect,
		attempt.HintsUsed, attempt.TimeSpent, attempt.AttemptedAt)
	if err != nil {
		log.Error("failed to record attempt: %v", err)
		return nil, err
	}
	log.Debug("attempt recorded: id=%s", attempt.ID)
	return &attempt, nil
}

func (r *attemptRepository) ForProblem(ctx context.Context, problemID string) ([]models.ProblemAttempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing attempts: problem_id=%s", problemID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, problem_id, user_answer, is_correct, hints_used, time_spent, attempted_at
FROM problem_attempts
WHERE problem_id = ?
ORDER BY attempted_at DESC, rowid DESC
`, problemID)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var attempts []models.ProblemAttempt
	for rows.Next() {
		var a models.ProblemAttempt
		var userAnswer sql.NullString
		if err := rows.Scan(&a.ID, &a.ProblemID, &userAnswer, &a.IsCorrect, &a.HintsUsed, &a.TimeSpent, &a.AttemptedAt); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		a.UserAnswer = userAnswer.String
		attempts = append(attempts, a)
	}
	log.Debug("found %d attempts", len(attempts))
	return attempts, rows.Err()
}
