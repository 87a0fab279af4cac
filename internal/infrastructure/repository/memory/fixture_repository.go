package memory

import (
	"context"
	"sync"

	"github.com/draftghost/statsportal/internal/domain/fixture"
)

type fixtureKey struct {
	season   string
	gameweek int
	homeTeam string
}

type FixtureRepository struct {
	mu    sync.RWMutex
	items map[fixtureKey]fixture.Fixture
	order []fixtureKey
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{items: make(map[fixtureKey]fixture.Fixture)}
}

func (r *FixtureRepository) ListBySeason(_ context.Context, season string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.order))
	for _, key := range r.order {
		if key.season != season {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *FixtureRepository) ListBySeasonGameweek(_ context.Context, season string, gameweek int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, 10)
	for _, key := range r.order {
		if key.season != season || key.gameweek != gameweek {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *FixtureRepository) UpsertMany(_ context.Context, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range fixtures {
		if err := item.Validate(); err != nil {
			return err
		}
		key := fixtureKey{season: item.Season, gameweek: item.Gameweek, homeTeam: item.HomeTeam}
		if _, ok := r.items[key]; !ok {
			r.order = append(r.order, key)
		}
		r.items[key] = item
	}
	return nil
}
