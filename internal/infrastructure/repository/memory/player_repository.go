// Package memory provides in-process repository implementations used by tests
// and database-less development runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/platform/id"
)

type PlayerRepository struct {
	mu          sync.RWMutex
	byID        map[string]player.Player
	idByFantrax map[string]string
	order       []string
	generator   id.Generator
}

func NewPlayerRepository(generator id.Generator) *PlayerRepository {
	if generator == nil {
		generator = id.NewRandomGenerator()
	}
	return &PlayerRepository{
		byID:        make(map[string]player.Player),
		idByFantrax: make(map[string]string),
		generator:   generator,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, playerID := range r.order {
		out = append(out, r.byID[playerID])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return item, true, nil
}

func (r *PlayerRepository) UpsertMany(_ context.Context, players []player.Player) ([]player.IDRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	refs := make([]player.IDRef, 0, len(players))
	for _, item := range players {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		existingID, ok := r.idByFantrax[item.FantraxID]
		if !ok {
			newID, err := r.generator.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate player id: %w", err)
			}
			existingID = newID
			r.idByFantrax[item.FantraxID] = existingID
			r.order = append(r.order, existingID)
		}

		item.ID = existingID
		r.byID[existingID] = item
		refs = append(refs, player.IDRef{ID: existingID, FantraxID: item.FantraxID})
	}
	return refs, nil
}
