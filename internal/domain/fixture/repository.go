package fixture

import "context"

// Repository exposes fixture read and upsert operations.
type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]Fixture, error)
	ListBySeasonGameweek(ctx context.Context, season string, gameweek int) ([]Fixture, error)
	UpsertMany(ctx context.Context, fixtures []Fixture) error
}
