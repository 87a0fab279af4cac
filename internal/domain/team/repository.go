package team

import "context"

// Repository exposes team read and upsert operations.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	UpsertMany(ctx context.Context, teams []Team) error
}
