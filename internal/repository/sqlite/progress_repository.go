package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

type progressRepository struct {
	db *sql.DB
}

const progressColumns = `id, category, problems_solved, correct_answers, average_time, current_streak, best_streak, last_studied, skill_level`

func (r *progressRepository) All(ctx context.Context) ([]models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress records")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+progressColumns+`
FROM user_progress
ORDER BY category
`)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.UserProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		records = append(records, *p)
	}
	log.Debug("found %d progress records", len(records))
	return records, rows.Err()
}

func (r *progressRepository) ByCategory(ctx context.Context, category string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: category=%s", category)

	row := r.db.QueryRowContext(ctx, `
SELECT `+progressColumns+`
FROM user_progress
WHERE category = ?
`, category)

	p, err := scanProgress(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress record for category: %s", category)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

// Upsert relies on the UNIQUE constraint on category, keeping exactly
// one ledger record per category regardless of concurrent callers.
func (r *progressRepository) Upsert(ctx context.Context, progress models.UserProgress) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: category=%s, solved=%d, streak=%d",
		progress.Category, progress.ProblemsSolved, progress.CurrentStreak)

	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}

	var avgTime sql.NullInt64
	if progress.AverageTime != 0 {
		avgTime = sql.NullInt64{Int64: int64(progress.AverageTime), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_progress (id, category, problems_solved, correct_answers, average_time, current_streak, best_streak, last_studied, skill_level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(category) DO UPDATE SET
    problems_solved = excluded.problems_solved,
    correct_answers = excluded.correct_answers,
    average_time = excluded.average_time,
    current_streak = excluded.current_streak,
    best_streak = excluded.best_streak,
    last_studied = excluded.last_studied,
    skill_level = excluded.skill_level
`, progress.ID, progress.Category, progress.ProblemsSolved, progress.CorrectAnswers,
		avgTime, progress.CurrentStreak, progress.BestStreak, progress.LastStudied, progress.SkillLevel)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
		return nil, err
	}

	// Re-read so the caller sees the stored record, ID included when the
	// conflict path kept the original row.
	return r.ByCategory(ctx, progress.Category)
}

func scanProgress(row rowScanner) (*models.UserProgress, error) {
	var p models.UserProgress
	var avgTime sql.NullInt64
	if err := row.Scan(&p.ID, &p.Category, &p.ProblemsSolved, &p.CorrectAnswers,
		&avgTime, &p.CurrentStreak, &p.BestStreak, &p.LastStudied, &p.SkillLevel); err != nil {
		return nil, err
	}
	p.AverageTime = int(avgTime.Int64)
	return &p, nil
}
