package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/problems", s.handleRecentProblems)
		r.Post("/problems", s.handleCreateProblem)
		r.Post("/problems/solve", s.handleSolveProblem)
		r.Get("/problems/{id}/solution", s.handleGetSolution)
		r.Patch("/problems/{id}/favorite", s.handleSetFavorite)
		r.Post("/problems/{id}/attempt", s.handleRecordAttempt)
		r.Get("/problems/{id}/attempts", s.handleListAttempts)
		r.Get("/favorites", s.handleFavoriteProblems)
		r.Get("/progress", s.handleGetProgress)
		r.Post("/study-session", s.handleStartSession)
		r.Get("/study-sessions", s.handleListSessions)
	})

	return r
}
