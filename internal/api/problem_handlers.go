package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafael/mathsolver/internal/models"
)

func (s *Server) handleRecentProblems(w http.ResponseWriter, r *http.Request) {
	limit := s.RecentLimit
	if limit <= 0 {
		limit = 10
	}

	problems, err := s.ProblemService.RecentProblems(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if problems == nil {
		problems = []models.Problem{}
	}
	respondJSON(w, r, http.StatusOK, problems)
}

func (s *Server) handleCreateProblem(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertProblem
	if err := decodeJSON(r, &insert); err != nil {
		handleError(w, r, err)
		return
	}

	problem, err := s.ProblemService.CreateProblem(r.Context(), insert)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, problem)
}

func (s *Server) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "id")

	solution, err := s.ProblemService.SolutionForProblem(r.Context(), problemID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, solution)
}

func (s *Server) handleFavoriteProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := s.ProblemService.FavoriteProblems(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if problems == nil {
		problems = []models.Problem{}
	}
	respondJSON(w, r, http.StatusOK, problems)
}

func (s *Server) handleSetFavorite(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "id")

	var body struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProblemService.SetFavorite(r.Context(), problemID, body.IsFavorite); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
