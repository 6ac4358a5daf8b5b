package api

import (
	"github.com/rafael/mathsolver/internal/services"
)

type Server struct {
	ProblemService  services.ProblemService
	SolveService    services.SolveService
	ProgressService services.ProgressService
	SessionService  services.SessionService

	// RecentLimit caps GET /api/problems; zero falls back to 10.
	RecentLimit int
}
