package memory

import (
	"context"
	"sort"

	"github.com/rafael/mathsolver/internal/models"
)

type sessionRepo Store

func (r *sessionRepo) Insert(ctx context.Context, insert models.InsertStudySession) (*models.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := models.StudySession{
		ID:                newID(),
		SessionName:       insert.SessionName,
		ProblemsSolved:    insert.ProblemsSolved,
		TotalTime:         insert.TotalTime,
		AverageDifficulty: insert.AverageDifficulty,
		Categories:        copyTags(insert.Categories),
		StartedAt:         r.now(),
	}
	if insert.EndedAt != nil {
		ended := *insert.EndedAt
		session.EndedAt = &ended
	}
	r.sessions[session.ID] = session

	out := snapshotSession(session)
	return &out, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]models.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.StudySession
	for _, s := range r.sessions {
		out = append(out, snapshotSession(s))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}

func snapshotSession(s models.StudySession) models.StudySession {
	s.Categories = copyTags(s.Categories)
	if s.EndedAt != nil {
		ended := *s.EndedAt
		s.EndedAt = &ended
	}
	return s
}
