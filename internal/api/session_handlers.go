package api

import (
	"net/http"

	"github.com/rafael/mathsolver/internal/models"
)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertStudySession
	if err := decodeJSON(r, &insert); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.SessionService.StartSession(r.Context(), insert)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.SessionService.ListSessions(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []models.StudySession{}
	}
	respondJSON(w, r, http.StatusOK, sessions)
}
