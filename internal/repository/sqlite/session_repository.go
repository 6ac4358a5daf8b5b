package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

type sessionRepository struct {
	db *sql.DB
}

func (r *sessionRepository) Insert(ctx context.Context, insert models.InsertStudySession) (*models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting study session: name=%s", insert.SessionName)

	categories, err := jsonColumn(insert.Categories)
	if err != nil {
		return nil, err
	}

	session := models.StudySession{
		ID:                uuid.NewString(),
		SessionName:       insert.SessionName,
		ProblemsSolved:    insert.ProblemsSolved,
		TotalTime:         insert.TotalTime,
		AverageDifficulty: insert.AverageDifficulty,
		Categories:        insert.Categories,
		StartedAt:         now(),
		EndedAt:           insert.EndedAt,
	}

	var avgDifficulty sql.NullInt64
	if session.AverageDifficulty != 0 {
		avgDifficulty = sql.NullInt64{Int64: int64(session.AverageDifficulty), Valid: true}
	}
	var endedAt any
	if session.EndedAt != nil {
		endedAt = *session.EndedAt
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO study_sessions (id, session_name, problems_solved, total_time, average_difficulty, categories, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, session.ID, nullable(session.SessionName), session.ProblemsSolved, session.TotalTime,
		avgDifficulty, categories, session.StartedAt, endedAt)
	if err != nil {
		log.Error("failed to insert study session: %v", err)
		return nil, err
	}
	log.Debug("study session inserted: id=%s", session.ID)
	return &session, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing study sessions")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, session_name, problems_solved, total_time, average_difficulty, categories, started_at, ended_at
FROM study_sessions
ORDER BY started_at DESC, rowid DESC
`)
	if err != nil {
		log.Error("failed to list study sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var s models.StudySession
		var name, categories sql.NullString
		var avgDifficulty sql.NullInt64
		var endedAt sql.NullTime
		if err := rows.Scan(&s.ID, &name, &s.ProblemsSolved, &s.TotalTime, &avgDifficulty, &categories, &s.StartedAt, &endedAt); err != nil {
			log.Error("failed to scan study session row: %v", err)
			return nil, err
		}
		s.SessionName = name.String
		s.AverageDifficulty = int(avgDifficulty.Int64)
		if err := scanJSON(categories, &s.Categories); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			ended := endedAt.Time
			s.EndedAt = &ended
		}
		sessions = append(sessions, s)
	}
	log.Debug("found %d study sessions", len(sessions))
	return sessions, rows.Err()
}
