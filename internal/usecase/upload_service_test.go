package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/team"
	"github.com/draftghost/statsportal/internal/domain/upload"
	"github.com/draftghost/statsportal/internal/infrastructure/repository/memory"
	"github.com/draftghost/statsportal/internal/platform/cache"
	"github.com/draftghost/statsportal/internal/platform/logging"
)

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("player-%03d", g.next), nil
}

type uploadFixture struct {
	playerRepo   *memory.PlayerRepository
	teamRepo     *memory.TeamRepository
	fixtureRepo  *memory.FixtureRepository
	gameweekRepo *memory.GameweekRepository
	service      *UploadService
}

func newUploadFixture(t *testing.T) uploadFixture {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(&sequenceIDGenerator{})
	teamRepo := memory.NewTeamRepository()
	fixtureRepo := memory.NewFixtureRepository()
	gameweekRepo := memory.NewGameweekRepository()

	service := NewUploadService(
		playerRepo,
		teamRepo,
		fixtureRepo,
		gameweekRepo,
		cache.NewStore(time.Minute),
		logging.NewNop(),
	)

	return uploadFixture{
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		gameweekRepo: gameweekRepo,
		service:      service,
	}
}

func defenderRow() upload.RawRow {
	// OutfielderPoints for this line is exactly 24.00.
	return upload.RawRow{
		"ID":       "abc123",
		"Player":   "Test Defender",
		"Team":     "ARS",
		"Position": "D",
		"GWk":      "2",
		"FPts":     "24",
		"GP":       "1",
		"GS":       "1",
		"Min":      "90",
		"G":        "1",
		"CS":       "1",
		"KP":       "3",
		"SOT":      "1",
		"TkW":      "2",
		"YC":       "1",
		"H/A":      "A",
	}
}

func TestUploadService_IngestStats_HappyPath(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	if err := f.fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{defenderRow()})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}

	if !result.Success {
		t.Fatal("expected batch success")
	}
	if result.RowsProcessed != 1 {
		t.Fatalf("expected 1 row processed, got %d", result.RowsProcessed)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Errors)
	}

	players, err := f.playerRepo.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].FantraxID != "abc123" {
		t.Fatalf("unexpected players: %+v", players)
	}

	rows, err := f.gameweekRepo.ListBySeasonAndPlayer(ctx, "2025-26", players[0].ID)
	if err != nil {
		t.Fatalf("list gameweeks: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(rows))
	}
	// Ghost points: 24 raw minus the 10+6 headline goal and clean sheet share.
	if rows[0].GhostPts != 8 {
		t.Fatalf("unexpected ghost points: %v", rows[0].GhostPts)
	}
	if rows[0].Gameweek != 2 || rows[0].Goals != 1 {
		t.Fatalf("unexpected stored row: %+v", rows[0])
	}
}

func TestUploadService_IngestStats_KeeperUpload(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	if err := f.fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	// KeeperPoints for this line is exactly 12.00.
	row := upload.RawRow{
		"ID":       "gk9",
		"Player":   "Test Keeper",
		"Team":     "LIV",
		"Position": "D", // vendor noise; keeper uploads force position G
		"GWk":      "1",
		"FPts":     "12",
		"GP":       "1",
		"GS":       "1",
		"Min":      "90",
		"CS":       "1",
		"Sv":       "4",
		"GA":       "2",
		"H/A":      "H",
	}

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypeKeeper,
		Season:   "2025-26",
		Gameweek: 1,
	}, []upload.RawRow{row})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Errors)
	}

	players, _ := f.playerRepo.List(ctx)
	if len(players) != 1 || !players[0].IsKeeper || players[0].Position != "G" {
		t.Fatalf("unexpected keeper player: %+v", players)
	}

	rows, _ := f.gameweekRepo.ListBySeasonAndPlayer(ctx, "2025-26", players[0].ID)
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(rows))
	}
	// Ghost points: 12 raw minus the clean sheet headline at defender weight.
	if rows[0].GhostPts != 6 {
		t.Fatalf("unexpected keeper ghost points: %v", rows[0].GhostPts)
	}
}

func TestUploadService_IngestStats_DidNotPlayRowIsZeroed(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	if err := f.fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	row := defenderRow()
	row["GP"] = "0"
	row["FPts"] = "4.5"

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{row})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}
	if result.RowsProcessed != 1 {
		t.Fatalf("expected 1 row processed, got %d", result.RowsProcessed)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Errors)
	}

	players, _ := f.playerRepo.List(ctx)
	rows, _ := f.gameweekRepo.ListBySeasonAndPlayer(ctx, "2025-26", players[0].ID)
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(rows))
	}
	stored := rows[0]
	if stored.RawFantraxPts != 0 || stored.Goals != 0 || stored.GhostPts != 0 {
		t.Fatalf("expected zeroed did-not-play row, got %+v", stored)
	}
}

func TestUploadService_IngestStats_MismatchWarning(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	if err := f.fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	row := defenderRow()
	row["FPts"] = "30"

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{row})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}

	if !result.Success || result.RowsProcessed != 1 {
		t.Fatalf("mismatch must stay soft, got %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Errors)
	}
	want := "Row 1 (Test Defender): FPts mismatch, expected 24.00 got 30.00"
	if result.Errors[0] != want {
		t.Fatalf("unexpected warning:\nwant: %s\ngot:  %s", want, result.Errors[0])
	}
}

func TestUploadService_IngestStats_FixtureNotFoundWarning(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	if err := f.fixtureRepo.UpsertMany(ctx, memory.SeedFixtures("2025-26")); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}

	row := defenderRow()
	row["Team"] = "NEW" // not in the seeded fixture list

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{row})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}

	if result.RowsProcessed != 1 {
		t.Fatalf("resolution failure must not drop the row, got %d processed", result.RowsProcessed)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "fixture opponent not found for GW 2") {
		t.Fatalf("unexpected warnings: %v", result.Errors)
	}
}

func TestUploadService_IngestStats_NoFixturesLoadedWarnsPerRow(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	second := defenderRow()
	second["ID"] = "def456"
	second["Player"] = "Second Defender"
	second["Team"] = "CHE"

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{defenderRow(), second})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}

	if !result.Success {
		t.Fatal("missing fixtures must not abort the batch")
	}
	if result.RowsProcessed != 2 {
		t.Fatalf("expected 2 rows processed, got %d", result.RowsProcessed)
	}
	warned := 0
	for _, msg := range result.Errors {
		if strings.Contains(msg, "fixture opponent not found for GW 2") {
			warned++
		}
	}
	if warned != 2 {
		t.Fatalf("expected a warning per row, got %v", result.Errors)
	}
}

func TestUploadService_IngestStats_DidNotPlayRowStillWarnsOnMissingFixture(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	row := defenderRow()
	row["GP"] = "0"

	result, err := f.service.IngestStats(ctx, upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{row})
	if err != nil {
		t.Fatalf("ingest stats: %v", err)
	}

	if result.RowsProcessed != 1 {
		t.Fatalf("expected 1 row processed, got %d", result.RowsProcessed)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "fixture opponent not found for GW 2") {
		t.Fatalf("did-not-play rows still get a resolution warning, got %v", result.Errors)
	}
}

func TestUploadService_IngestStats_InvalidParams(t *testing.T) {
	f := newUploadFixture(t)

	_, err := f.service.IngestStats(context.Background(), upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 39,
	}, []upload.RawRow{defenderRow()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = f.service.IngestStats(context.Background(), upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty rows, got %v", err)
	}
}

func TestUploadService_IngestStats_IdentitylessRowsDropped(t *testing.T) {
	f := newUploadFixture(t)

	blank := upload.RawRow{"FPts": "10", "GP": "1"}
	_, err := f.service.IngestStats(context.Background(), upload.Params{
		Type:     upload.TypePlayer,
		Season:   "2025-26",
		Gameweek: 2,
	}, []upload.RawRow{blank})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when every row lacks identity, got %v", err)
	}
}

func TestUploadService_IngestFixtures(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	result, err := f.service.IngestFixtures(ctx, "2025-26", []fixture.Fixture{
		{Gameweek: 1, HomeTeam: "ars", AwayTeam: "che"},
	})
	if err != nil {
		t.Fatalf("ingest fixtures: %v", err)
	}
	if result.RowsProcessed != 1 {
		t.Fatalf("expected 1 fixture processed, got %d", result.RowsProcessed)
	}

	items, _ := f.fixtureRepo.ListBySeasonGameweek(ctx, "2025-26", 1)
	if len(items) != 1 || items[0].HomeTeam != "ARS" || items[0].AwayTeam != "CHE" {
		t.Fatalf("expected upper-cased codes, got %+v", items)
	}

	if _, err := f.service.IngestFixtures(ctx, "2025-26", []fixture.Fixture{
		{Gameweek: 40, HomeTeam: "ARS", AwayTeam: "CHE"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range gameweek, got %v", err)
	}
}

func TestUploadService_IngestTeams(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	result, err := f.service.IngestTeams(ctx, []team.Team{
		{Abbrev: "ars", ShortName: "Arsenal", FullName: "Arsenal FC"},
	})
	if err != nil {
		t.Fatalf("ingest teams: %v", err)
	}
	if result.RowsProcessed != 1 {
		t.Fatalf("expected 1 team processed, got %d", result.RowsProcessed)
	}

	teams, _ := f.teamRepo.List(ctx)
	if len(teams) != 1 || teams[0].Abbrev != "ARS" {
		t.Fatalf("expected upper-cased abbrev, got %+v", teams)
	}

	if _, err := f.service.IngestTeams(ctx, []team.Team{{Abbrev: "ARS"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for incomplete team, got %v", err)
	}
}
