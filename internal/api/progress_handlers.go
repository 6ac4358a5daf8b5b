package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafael/mathsolver/internal/models"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	records, err := s.ProgressService.Progress(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, records)
}

func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "id")

	var insert models.InsertProblemAttempt
	if err := decodeJSON(r, &insert); err != nil {
		handleError(w, r, err)
		return
	}
	// The path is authoritative for the problem reference.
	insert.ProblemID = problemID

	attempt, err := s.ProgressService.RecordAttempt(r.Context(), insert)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, attempt)
}

func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "id")

	attempts, err := s.ProgressService.AttemptsForProblem(r.Context(), problemID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []models.ProblemAttempt{}
	}
	respondJSON(w, r, http.StatusOK, attempts)
}
