package memory

import (
	"context"

	"github.com/rafael/mathsolver/internal/models"
)

type solutionRepo Store

func (r *solutionRepo) insertLocked(insert models.InsertSolution) models.Solution {
	solution := models.Solution{
		ID:            newID(),
		ProblemID:     insert.ProblemID,
		Solution:      insert.Solution,
		FinalAnswer:   insert.FinalAnswer,
		Confidence:    insert.Confidence,
		TimeToSolve:   insert.TimeToSolve,
		Method:        insert.Method,
		Visualization: insert.Visualization,
		CreatedAt:     r.now(),
	}
	r.solutions[solution.ID] = snapshotSolution(solution)
	return solution
}

func (r *solutionRepo) Insert(ctx context.Context, insert models.InsertSolution) (*models.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	solution := r.insertLocked(insert)
	out := snapshotSolution(solution)
	return &out, nil
}

// InsertWithProblem writes the problem and solution under one lock so a
// reader never observes the problem without its solution.
func (r *solutionRepo) InsertWithProblem(ctx context.Context, insertProblem models.InsertProblem, insertSolution models.InsertSolution) (*models.Problem, *models.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	problem := models.Problem{
		ID:                  newID(),
		ProblemText:         insertProblem.ProblemText,
		Category:            insertProblem.Category,
		Difficulty:          insertProblem.Difficulty,
		ImageURL:            insertProblem.ImageURL,
		LatexRepresentation: insertProblem.LatexRepresentation,
		IsFavorite:          insertProblem.IsFavorite,
		Tags:                copyTags(insertProblem.Tags),
		CreatedAt:           r.now(),
	}
	r.problems[problem.ID] = problem

	insertSolution.ProblemID = problem.ID
	solution := r.insertLocked(insertSolution)

	outP := snapshotProblem(problem)
	outS := snapshotSolution(solution)
	return &outP, &outS, nil
}

// ForProblem returns the latest solution for the problem by creation
// time. Same-timestamp ties are broken arbitrarily.
func (r *solutionRepo) ForProblem(ctx context.Context, problemID string) (*models.Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Solution
	for _, s := range r.solutions {
		if s.ProblemID != problemID {
			continue
		}
		if latest == nil || !s.CreatedAt.Before(latest.CreatedAt) {
			snap := snapshotSolution(s)
			latest = &snap
		}
	}
	return latest, nil
}
