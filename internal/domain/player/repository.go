package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// UpsertMany inserts or updates by fantrax id and returns the resolved
	// internal ids for every player in the batch.
	UpsertMany(ctx context.Context, players []Player) ([]IDRef, error)
}
