package memory

import (
	"context"
	"sync"

	"github.com/draftghost/statsportal/internal/domain/gameweek"
)

type gameweekKey struct {
	playerID string
	season   string
	gameweek int
}

type GameweekRepository struct {
	mu    sync.RWMutex
	items map[gameweekKey]gameweek.PlayerGameweek
	order []gameweekKey
}

func NewGameweekRepository() *GameweekRepository {
	return &GameweekRepository{items: make(map[gameweekKey]gameweek.PlayerGameweek)}
}

func (r *GameweekRepository) ListBySeasonAndPlayer(_ context.Context, season, playerID string) ([]gameweek.PlayerGameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameweek.PlayerGameweek, 0, 8)
	for _, key := range r.order {
		if key.season != season || key.playerID != playerID {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *GameweekRepository) ListBySeason(_ context.Context, season string) ([]gameweek.PlayerGameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameweek.PlayerGameweek, 0, len(r.order))
	for _, key := range r.order {
		if key.season != season {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *GameweekRepository) UpsertMany(_ context.Context, rows []gameweek.PlayerGameweek) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range rows {
		if err := item.Validate(); err != nil {
			return err
		}
		key := gameweekKey{playerID: item.PlayerID, season: item.Season, gameweek: item.Gameweek}
		if _, ok := r.items[key]; !ok {
			r.order = append(r.order, key)
		}
		r.items[key] = item
	}
	return nil
}
