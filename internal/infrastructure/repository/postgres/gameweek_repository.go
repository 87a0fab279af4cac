package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftghost/statsportal/internal/domain/gameweek"
	qb "github.com/draftghost/statsportal/internal/platform/querybuilder"
)

var playerGameweekColumns = []string{
	"player_id", "season", "gameweek", "position", "ghost_pts",
	"games_played", "games_started", "minutes_played", "raw_fantrax_pts",
	"goals", "assists", "key_passes", "shots_on_target", "tackles_won",
	"interceptions", "clearances", "dribbles_succeeded", "blocked_shots",
	"accurate_crosses", "aerials_won", "penalties_drawn", "penalties_missed",
	"dispossessed", "yellow_cards", "red_cards", "own_goals", "clean_sheet",
	"goals_against", "goals_against_outfield", "subbed_on", "subbed_off",
	"saves", "penalty_saves", "high_claims", "smothers",
}

const playerGameweekUpsertSuffix = `ON CONFLICT (player_id, season, gameweek)
DO UPDATE SET
    position = EXCLUDED.position,
    ghost_pts = EXCLUDED.ghost_pts,
    games_played = EXCLUDED.games_played,
    games_started = EXCLUDED.games_started,
    minutes_played = EXCLUDED.minutes_played,
    raw_fantrax_pts = EXCLUDED.raw_fantrax_pts,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    key_passes = EXCLUDED.key_passes,
    shots_on_target = EXCLUDED.shots_on_target,
    tackles_won = EXCLUDED.tackles_won,
    interceptions = EXCLUDED.interceptions,
    clearances = EXCLUDED.clearances,
    dribbles_succeeded = EXCLUDED.dribbles_succeeded,
    blocked_shots = EXCLUDED.blocked_shots,
    accurate_crosses = EXCLUDED.accurate_crosses,
    aerials_won = EXCLUDED.aerials_won,
    penalties_drawn = EXCLUDED.penalties_drawn,
    penalties_missed = EXCLUDED.penalties_missed,
    dispossessed = EXCLUDED.dispossessed,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    own_goals = EXCLUDED.own_goals,
    clean_sheet = EXCLUDED.clean_sheet,
    goals_against = EXCLUDED.goals_against,
    goals_against_outfield = EXCLUDED.goals_against_outfield,
    subbed_on = EXCLUDED.subbed_on,
    subbed_off = EXCLUDED.subbed_off,
    saves = EXCLUDED.saves,
    penalty_saves = EXCLUDED.penalty_saves,
    high_claims = EXCLUDED.high_claims,
    smothers = EXCLUDED.smothers`

// GameweekRepository persists the player-gameweek fact rows written by ingest.
type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) ListBySeasonAndPlayer(ctx context.Context, season, playerID string) ([]gameweek.PlayerGameweek, error) {
	query, args, err := qb.Select(playerGameweekColumns...).
		From("player_gameweeks").
		Where(qb.Eq("season", season), qb.Eq("player_id", playerID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player gameweeks query: %w", err)
	}

	return r.selectRows(ctx, query, args)
}

func (r *GameweekRepository) ListBySeason(ctx context.Context, season string) ([]gameweek.PlayerGameweek, error) {
	query, args, err := qb.Select(playerGameweekColumns...).
		From("player_gameweeks").
		Where(qb.Eq("season", season)).
		OrderBy("player_id", "gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player gameweeks query: %w", err)
	}

	return r.selectRows(ctx, query, args)
}

func (r *GameweekRepository) selectRows(ctx context.Context, query string, args []any) ([]gameweek.PlayerGameweek, error) {
	var models []playerGameweekTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select player gameweeks: %w", err)
	}

	rows := make([]gameweek.PlayerGameweek, 0, len(models))
	for _, model := range models {
		rows = append(rows, model.toDomain())
	}

	return rows, nil
}

func (r *GameweekRepository) UpsertMany(ctx context.Context, rows []gameweek.PlayerGameweek) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("validate player gameweek: %w", err)
		}

		query, args, err := qb.InsertModel("player_gameweeks", playerGameweekToModel(row), playerGameweekUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build player gameweek upsert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player gameweek %s GW%d: %w", row.PlayerID, row.Gameweek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
