package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/scoring"
	"github.com/draftghost/statsportal/internal/domain/team"
	"github.com/draftghost/statsportal/internal/domain/upload"
	"github.com/draftghost/statsportal/internal/platform/cache"
	"github.com/draftghost/statsportal/internal/platform/logging"
)

// pointsMismatchTolerance is the allowed drift between the provider's raw
// points and the recomputed value before a row earns a warning.
const pointsMismatchTolerance = 0.01

// BatchResult summarizes one upload batch. Errors carries soft warnings:
// the batch still succeeds when only row-level checks fail.
type BatchResult struct {
	Success       bool
	RowsProcessed int
	Errors        []string
}

type UploadService struct {
	playerRepo   player.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	gameweekRepo gameweek.Repository
	cacheStore   *cache.Store
	logger       *logging.Logger
}

func NewUploadService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	gameweekRepo gameweek.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *UploadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &UploadService{
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		gameweekRepo: gameweekRepo,
		cacheStore:   cacheStore,
		logger:       logger,
	}
}

// IngestStats runs one stats upload batch: map raw rows, upsert player
// identities, reconcile points against the provider, and upsert the
// player-gameweek facts. Player and gameweek upsert failures abort the batch;
// everything row-level degrades to a warning in the result.
func (s *UploadService) IngestStats(ctx context.Context, params upload.Params, rows []upload.RawRow) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.IngestStats")
	defer span.End()

	if err := params.Validate(); err != nil {
		return BatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no data rows found", ErrInvalidInput)
	}

	type statsRow struct {
		index      int
		normalized upload.NormalizedRow
		hint       string
	}

	mapped := make([]statsRow, 0, len(rows))
	for idx, raw := range rows {
		normalized := upload.MapRow(raw, params.Type, params.Gameweek)
		if !normalized.HasIdentity() {
			continue
		}
		mapped = append(mapped, statsRow{
			index:      idx + 1,
			normalized: normalized,
			hint:       raw.HomeAwayHint(),
		})
	}
	if len(mapped) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no rows with player identity", ErrInvalidInput)
	}

	players := make([]player.Player, 0, len(mapped))
	seen := make(map[string]struct{}, len(mapped))
	for _, row := range mapped {
		if _, ok := seen[row.normalized.FantraxID]; ok {
			continue
		}
		seen[row.normalized.FantraxID] = struct{}{}
		players = append(players, row.normalized.Player(params.Type))
	}

	refs, err := s.playerRepo.UpsertMany(ctx, players)
	if err != nil {
		return BatchResult{}, fmt.Errorf("upsert players: %w", err)
	}
	idByFantraxID := make(map[string]string, len(refs))
	for _, ref := range refs {
		idByFantraxID[ref.FantraxID] = ref.ID
	}

	var warnings []string

	fixtures, err := s.fixtureRepo.ListBySeasonGameweek(ctx, params.Season, params.Gameweek)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Could not load fixtures for GW %d: %v", params.Gameweek, err))
		fixtures = nil
	}

	batch := make([]gameweek.PlayerGameweek, 0, len(mapped))
	for _, row := range mapped {
		line := row.normalized.StatLine
		ghost := 0.0

		if line.GamesPlayed <= 0 {
			// Did-not-play rows must not carry residual stats or points.
			line.Zero()
		} else {
			expected := scoring.ExpectedPoints(line)
			if math.Abs(expected-line.RawFantraxPts) > pointsMismatchTolerance {
				warnings = append(warnings, fmt.Sprintf(
					"Row %d (%s): FPts mismatch, expected %.2f got %.2f",
					row.index, row.normalized.Name, expected, line.RawFantraxPts,
				))
			}
			ghost = scoring.GhostPoints(line)
		}

		// Every mapped row gets a resolution attempt, did-not-play included.
		if _, ok := fixture.Resolve(fixtures, row.normalized.Team, row.normalized.Gameweek, row.hint); !ok {
			warnings = append(warnings, fmt.Sprintf(
				"Row %d (%s): fixture opponent not found for GW %d",
				row.index, row.normalized.Name, row.normalized.Gameweek,
			))
		}

		playerID, ok := idByFantraxID[row.normalized.FantraxID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"Row %d: could not resolve player_id for fantrax_id %s",
				row.index, row.normalized.FantraxID,
			))
			continue
		}

		batch = append(batch, gameweek.PlayerGameweek{
			PlayerID: playerID,
			Season:   params.Season,
			Gameweek: row.normalized.Gameweek,
			GhostPts: ghost,
			StatLine: line,
		})
	}

	if len(batch) > 0 {
		if err := s.gameweekRepo.UpsertMany(ctx, batch); err != nil {
			return BatchResult{}, fmt.Errorf("upsert player gameweeks: %w", err)
		}
	}

	s.invalidateSeason(ctx, params.Season)
	s.logger.InfoContext(ctx, "stats upload ingested",
		"season", params.Season,
		"gameweek", params.Gameweek,
		"type", string(params.Type),
		"rows", len(batch),
		"warnings", len(warnings),
	)

	return BatchResult{
		Success:       true,
		RowsProcessed: len(batch),
		Errors:        warnings,
	}, nil
}

// IngestFixtures replaces or extends the season's fixture list. Fixtures must
// exist before stats uploads for the same gameweek resolve opponents.
func (s *UploadService) IngestFixtures(ctx context.Context, season string, fixtures []fixture.Fixture) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.IngestFixtures")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return BatchResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if len(fixtures) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no fixture rows found", ErrInvalidInput)
	}

	cleaned := make([]fixture.Fixture, 0, len(fixtures))
	for _, item := range fixtures {
		item.Season = season
		item.HomeTeam = strings.ToUpper(strings.TrimSpace(item.HomeTeam))
		item.AwayTeam = strings.ToUpper(strings.TrimSpace(item.AwayTeam))
		if err := item.Validate(); err != nil {
			return BatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cleaned = append(cleaned, item)
	}

	if err := s.fixtureRepo.UpsertMany(ctx, cleaned); err != nil {
		return BatchResult{}, fmt.Errorf("upsert fixtures: %w", err)
	}

	s.invalidateSeason(ctx, season)
	s.logger.InfoContext(ctx, "fixtures upload ingested", "season", season, "rows", len(cleaned))

	return BatchResult{Success: true, RowsProcessed: len(cleaned)}, nil
}

// IngestTeams loads the club reference table used to render opponent names.
func (s *UploadService) IngestTeams(ctx context.Context, teams []team.Team) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.IngestTeams")
	defer span.End()

	if len(teams) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no team rows found", ErrInvalidInput)
	}

	cleaned := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		item.Abbrev = strings.ToUpper(strings.TrimSpace(item.Abbrev))
		item.ShortName = strings.TrimSpace(item.ShortName)
		item.FullName = strings.TrimSpace(item.FullName)
		if err := item.Validate(); err != nil {
			return BatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cleaned = append(cleaned, item)
	}

	if err := s.teamRepo.UpsertMany(ctx, cleaned); err != nil {
		return BatchResult{}, fmt.Errorf("upsert teams: %w", err)
	}

	if s.cacheStore != nil {
		s.cacheStore.Delete(ctx, teamsCacheKey)
	}
	s.logger.InfoContext(ctx, "teams upload ingested", "rows", len(cleaned))

	return BatchResult{Success: true, RowsProcessed: len(cleaned)}, nil
}

func (s *UploadService) invalidateSeason(ctx context.Context, season string) {
	if s.cacheStore == nil {
		return
	}
	s.cacheStore.DeletePrefix(ctx, summaryCachePrefix(season))
	s.cacheStore.DeletePrefix(ctx, totalsCachePrefix(season))
}
