package api

import (
	"net/http"

	"github.com/rafael/mathsolver/internal/models"
)

func (s *Server) handleSolveProblem(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.SolveService.Solve(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}
