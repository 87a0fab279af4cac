package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	qb "github.com/draftghost/statsportal/internal/platform/querybuilder"
)

const fixtureUpsertSuffix = `ON CONFLICT (season, gameweek, home_team)
DO UPDATE SET
    away_team = EXCLUDED.away_team`

// FixtureRepository persists the season schedule.
type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, season string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("season", "gameweek", "home_team", "away_team").
		From("fixtures").
		Where(qb.Eq("season", season)).
		OrderBy("gameweek", "home_team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	return r.selectFixtures(ctx, query, args)
}

func (r *FixtureRepository) ListBySeasonGameweek(ctx context.Context, season string, gameweek int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("season", "gameweek", "home_team", "away_team").
		From("fixtures").
		Where(qb.Eq("season", season), qb.Eq("gameweek", gameweek)).
		OrderBy("home_team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	return r.selectFixtures(ctx, query, args)
}

func (r *FixtureRepository) selectFixtures(ctx context.Context, query string, args []any) ([]fixture.Fixture, error) {
	var models []fixtureTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	fixtures := make([]fixture.Fixture, 0, len(models))
	for _, model := range models {
		fixtures = append(fixtures, model.toDomain())
	}

	return fixtures, nil
}

func (r *FixtureRepository) UpsertMany(ctx context.Context, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, f := range fixtures {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("validate fixture: %w", err)
		}

		query, args, err := qb.InsertModel("fixtures", fixtureToModel(f), fixtureUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build fixture upsert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixture %s GW%d: %w", f.HomeTeam, f.Gameweek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
