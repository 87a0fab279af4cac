package gameweek

import "context"

// Repository exposes player-gameweek fact reads and the batch upsert used by
// ingest, conflict-keyed on (player, season, gameweek).
type Repository interface {
	ListBySeasonAndPlayer(ctx context.Context, season, playerID string) ([]PlayerGameweek, error)
	ListBySeason(ctx context.Context, season string) ([]PlayerGameweek, error)
	UpsertMany(ctx context.Context, rows []PlayerGameweek) error
}
