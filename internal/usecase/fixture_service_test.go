package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/infrastructure/repository/memory"
)

func TestFixtureService_ListFixtures(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFixtureRepository()
	if err := repo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	service := NewFixtureService(repo)

	all, err := service.ListFixtures(ctx, "2025-26", 0)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 fixtures, got %d", len(all))
	}
	if all[0].Gameweek != 1 || all[len(all)-1].Gameweek != 2 {
		t.Fatalf("expected gameweek ordering, got %+v", all)
	}

	gw2, err := service.ListFixtures(ctx, "2025-26", 2)
	if err != nil {
		t.Fatalf("list gameweek fixtures: %v", err)
	}
	if len(gw2) != 3 {
		t.Fatalf("expected 3 fixtures in GW2, got %d", len(gw2))
	}

	if _, err := service.ListFixtures(ctx, "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty season, got %v", err)
	}
	if _, err := service.ListFixtures(ctx, "2025-26", 39); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range gameweek, got %v", err)
	}
}

func TestFixtureService_NextFixtures(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFixtureRepository()

	fixtures := make([]fixture.Fixture, 0, 8)
	for gw := 1; gw <= 8; gw++ {
		fixtures = append(fixtures, fixture.Fixture{Season: "2025-26", Gameweek: gw, HomeTeam: "ARS", AwayTeam: "CHE"})
	}
	if err := repo.UpsertMany(ctx, fixtures); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	service := NewFixtureService(repo)

	next, err := service.NextFixtures(ctx, "2025-26", "ars", 2)
	if err != nil {
		t.Fatalf("next fixtures: %v", err)
	}
	if len(next) != nextFixturesLimit {
		t.Fatalf("expected %d upcoming fixtures, got %d", nextFixturesLimit, len(next))
	}
	if next[0].Gameweek != 3 || next[4].Gameweek != 7 {
		t.Fatalf("unexpected upcoming window: %+v", next)
	}

	none, err := service.NextFixtures(ctx, "2025-26", "LIV", 0)
	if err != nil {
		t.Fatalf("next fixtures for uninvolved team: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no fixtures for uninvolved team, got %+v", none)
	}
}
