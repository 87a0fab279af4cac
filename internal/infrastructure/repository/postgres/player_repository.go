package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/platform/id"
	qb "github.com/draftghost/statsportal/internal/platform/querybuilder"
)

const playerUpsertSuffix = `ON CONFLICT (fantrax_id)
DO UPDATE SET
    name = EXCLUDED.name,
    team = EXCLUDED.team,
    position = EXCLUDED.position,
    ownership_pct = EXCLUDED.ownership_pct,
    ownership_change = EXCLUDED.ownership_change,
    is_keeper = EXCLUDED.is_keeper
RETURNING id, fantrax_id`

// PlayerRepository persists players keyed by the provider's fantrax id.
type PlayerRepository struct {
	db        *sqlx.DB
	generator id.Generator
}

func NewPlayerRepository(db *sqlx.DB, generator id.Generator) *PlayerRepository {
	if generator == nil {
		generator = id.NewRandomGenerator()
	}

	return &PlayerRepository{db: db, generator: generator}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(
		"id", "fantrax_id", "name", "team", "position",
		"ownership_pct", "ownership_change", "is_keeper",
	).
		From("players").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var models []playerTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	players := make([]player.Player, 0, len(models))
	for _, model := range models {
		players = append(players, model.toDomain())
	}

	return players, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(
		"id", "fantrax_id", "name", "team", "position",
		"ownership_pct", "ownership_change", "is_keeper",
	).
		From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var model playerTableModel
	if err := r.db.GetContext(ctx, &model, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}

		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return model.toDomain(), true, nil
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, players []player.Player) ([]player.IDRef, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	refs := make([]player.IDRef, 0, len(players))
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("validate player: %w", err)
		}

		if p.ID == "" {
			newID, err := r.generator.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate player id: %w", err)
			}
			p.ID = newID
		}

		query, args, err := qb.InsertModel("players", playerToModel(p), playerUpsertSuffix)
		if err != nil {
			return nil, fmt.Errorf("build player upsert: %w", err)
		}

		var ref player.IDRef
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&ref.ID, &ref.FantraxID); err != nil {
			return nil, fmt.Errorf("upsert player %s: %w", p.FantraxID, err)
		}
		refs = append(refs, ref)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return refs, nil
}
