// Package memory provides a non-durable storage backend holding all
// entities in process memory. It is the default for tests and selectable
// in production via STORAGE=memory; nothing survives a restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/repository"
)

// Store holds all entity maps behind one mutex. Reads return snapshots,
// never live references into the maps.
type Store struct {
	mu        sync.RWMutex
	problems  map[string]models.Problem
	solutions map[string]models.Solution
	sessions  map[string]models.StudySession
	progress  map[string]models.UserProgress // keyed by record ID
	attempts  map[string]models.ProblemAttempt
	now       func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		problems:  make(map[string]models.Problem),
		solutions: make(map[string]models.Solution),
		sessions:  make(map[string]models.StudySession),
		progress:  make(map[string]models.UserProgress),
		attempts:  make(map[string]models.ProblemAttempt),
		now:       time.Now,
	}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() repository.Store {
	return repository.Store{
		Problems:  (*problemRepo)(s),
		Solutions: (*solutionRepo)(s),
		Sessions:  (*sessionRepo)(s),
		Progress:  (*progressRepo)(s),
		Attempts:  (*attemptRepo)(s),
	}
}

// SetClock overrides the wall clock, for tests that need deterministic
// timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func newID() string {
	return uuid.NewString()
}

func copyTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func snapshotProblem(p models.Problem) models.Problem {
	p.Tags = copyTags(p.Tags)
	return p
}

func snapshotSolution(sol models.Solution) models.Solution {
	steps := make([]models.SolutionStep, len(sol.Solution.Steps))
	copy(steps, sol.Solution.Steps)
	sol.Solution.Steps = steps
	sol.Solution.Concepts = copyTags(sol.Solution.Concepts)
	if sol.Visualization != nil {
		v := *sol.Visualization
		sol.Visualization = &v
	}
	return sol
}

func sortProblemsByCreatedAtDesc(problems []models.Problem) {
	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].CreatedAt.After(problems[j].CreatedAt)
	})
}
