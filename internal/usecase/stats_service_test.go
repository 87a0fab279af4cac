package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/scoring"
	"github.com/draftghost/statsportal/internal/infrastructure/repository/memory"
	"github.com/draftghost/statsportal/internal/platform/cache"
)

func TestStatsService_SeasonTotals(t *testing.T) {
	ctx := context.Background()

	playerRepo := memory.NewPlayerRepository(&sequenceIDGenerator{})
	gameweekRepo := memory.NewGameweekRepository()
	fixtureRepo := memory.NewFixtureRepository()

	refs, err := playerRepo.UpsertMany(ctx, []player.Player{
		{FantraxID: "fwd1", Name: "Alpha Forward", Team: "ARS", Position: player.PositionForward},
		{FantraxID: "mid1", Name: "Beta Midfielder", Team: "CHE", Position: player.PositionMidfielder},
		{FantraxID: "sub1", Name: "Gamma Unused", Team: "LIV", Position: player.PositionDefender},
	})
	if err != nil {
		t.Fatalf("seed players: %v", err)
	}

	if err := fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	rows := []gameweek.PlayerGameweek{
		{
			PlayerID: refs[0].ID, Season: "2025-26", Gameweek: 1, GhostPts: 3,
			StatLine: scoring.StatLine{Position: player.PositionForward, GamesPlayed: 1, RawFantraxPts: 12, Goals: 1},
		},
		{
			PlayerID: refs[0].ID, Season: "2025-26", Gameweek: 2, GhostPts: 1,
			StatLine: scoring.StatLine{Position: player.PositionForward, GamesPlayed: 1, RawFantraxPts: 8, Assists: 1},
		},
		{
			PlayerID: refs[1].ID, Season: "2025-26", Gameweek: 1, GhostPts: 2,
			StatLine: scoring.StatLine{Position: player.PositionMidfielder, GamesPlayed: 1, RawFantraxPts: 9, Goals: 1},
		},
	}
	if err := gameweekRepo.UpsertMany(ctx, rows); err != nil {
		t.Fatalf("seed gameweeks: %v", err)
	}

	service := NewStatsService(playerRepo, gameweekRepo, fixtureRepo, cache.NewStore(time.Minute))

	table, err := service.SeasonTotals(ctx, "2025-26")
	if err != nil {
		t.Fatalf("season totals: %v", err)
	}

	if len(table) != 2 {
		t.Fatalf("players without rows must be skipped, got %d rows", len(table))
	}
	if table[0].Name != "Alpha Forward" || table[1].Name != "Beta Midfielder" {
		t.Fatalf("expected points-descending order, got %q then %q", table[0].Name, table[1].Name)
	}
	if table[0].Totals.Points != 20 || table[0].Totals.GhostPts != 4 {
		t.Fatalf("unexpected leader totals: %+v", table[0].Totals)
	}
	if table[0].PositionDisplay != "FWD" {
		t.Fatalf("unexpected position display: %s", table[0].PositionDisplay)
	}
	if table[1].Totals.Points != 9 || table[1].Totals.Goals != 1 {
		t.Fatalf("unexpected runner-up totals: %+v", table[1].Totals)
	}

	// Second call must come from the cache and agree with the first.
	again, err := service.SeasonTotals(ctx, "2025-26")
	if err != nil {
		t.Fatalf("season totals from cache: %v", err)
	}
	if len(again) != len(table) {
		t.Fatalf("cache returned a different table: %d vs %d", len(again), len(table))
	}
}

func TestStatsService_SeasonTotals_InvalidSeason(t *testing.T) {
	service := NewStatsService(
		memory.NewPlayerRepository(&sequenceIDGenerator{}),
		memory.NewGameweekRepository(),
		memory.NewFixtureRepository(),
		nil,
	)

	if _, err := service.SeasonTotals(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
