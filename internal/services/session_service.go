package services

import (
	"context"

	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/repository"
)

// SessionService handles study-session business logic
type SessionService interface {
	StartSession(ctx context.Context, insert models.InsertStudySession) (*models.StudySession, error)
	ListSessions(ctx context.Context) ([]models.StudySession, error)
}

type sessionService struct {
	sessions repository.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions repository.SessionRepository) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) StartSession(ctx context.Context, insert models.InsertStudySession) (*models.StudySession, error) {
	log := logger.FromContext(ctx)

	if err := insert.Validate(); err != nil {
		log.Warn("study session payload rejected: %v", err)
		return nil, err
	}

	session, err := s.sessions.Insert(ctx, insert)
	if err != nil {
		log.Error("failed to start study session: %v", err)
		return nil, appError(err)
	}
	log.Info("study session started: id=%s", session.ID)
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]models.StudySession, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list study sessions: %v", err)
		return nil, appError(err)
	}
	return sessions, nil
}
