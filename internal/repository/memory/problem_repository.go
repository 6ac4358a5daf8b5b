package memory

import (
	"context"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/models"
)

type problemRepo Store

func (r *problemRepo) Insert(ctx context.Context, insert models.InsertProblem) (*models.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	problem := models.Problem{
		ID:                  newID(),
		ProblemText:         insert.ProblemText,
		Category:            insert.Category,
		Difficulty:          insert.Difficulty,
		ImageURL:            insert.ImageURL,
		LatexRepresentation: insert.LatexRepresentation,
		IsFavorite:          insert.IsFavorite,
		Tags:                copyTags(insert.Tags),
		CreatedAt:           r.now(),
	}
	r.problems[problem.ID] = problem

	out := snapshotProblem(problem)
	return &out, nil
}

func (r *problemRepo) Get(ctx context.Context, id string) (*models.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problem, ok := r.problems[id]
	if !ok {
		return nil, nil
	}
	out := snapshotProblem(problem)
	return &out, nil
}

func (r *problemRepo) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Problem
	for _, p := range r.problems {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.FavoritesOnly && !p.IsFavorite {
			continue
		}
		out = append(out, snapshotProblem(p))
	}
	sortProblemsByCreatedAtDesc(out)

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *problemRepo) Recent(ctx context.Context, limit int) ([]models.Problem, error) {
	return r.List(ctx, models.ProblemFilter{Limit: limit})
}

func (r *problemRepo) Favorites(ctx context.Context) ([]models.Problem, error) {
	return r.List(ctx, models.ProblemFilter{FavoritesOnly: true})
}

func (r *problemRepo) SetFavorite(ctx context.Context, id string, isFavorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	problem, ok := r.problems[id]
	if !ok {
		return errors.NewNotFoundError("problem", id)
	}
	problem.IsFavorite = isFavorite
	r.problems[id] = problem
	return nil
}
