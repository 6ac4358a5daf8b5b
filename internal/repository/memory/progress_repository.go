package memory

import (
	"context"
	"sort"

	"github.com/rafael/mathsolver/internal/models"
)

type progressRepo Store

func (r *progressRepo) All(ctx context.Context) ([]models.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.UserProgress, 0, len(r.progress))
	for _, p := range r.progress {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (r *progressRepo) ByCategory(ctx context.Context, category string) (*models.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.progress {
		if p.Category == category {
			snap := p
			return &snap, nil
		}
	}
	return nil, nil
}

func (r *progressRepo) Upsert(ctx context.Context, progress models.UserProgress) (*models.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.progress {
		if p.Category == progress.Category {
			progress.ID = id
			r.progress[id] = progress
			snap := progress
			return &snap, nil
		}
	}

	progress.ID = newID()
	r.progress[progress.ID] = progress
	snap := progress
	return &snap, nil
}
