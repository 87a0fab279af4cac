package memory

import (
	"context"
	"sync"

	"github.com/draftghost/statsportal/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
	order []string
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[string]team.Team)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, abbrev := range r.order {
		out = append(out, r.items[abbrev])
	}
	return out, nil
}

func (r *TeamRepository) UpsertMany(_ context.Context, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range teams {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := r.items[item.Abbrev]; !ok {
			r.order = append(r.order, item.Abbrev)
		}
		r.items[item.Abbrev] = item
	}
	return nil
}
