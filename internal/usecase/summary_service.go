package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/scoring"
	"github.com/draftghost/statsportal/internal/platform/cache"
)

func summaryCachePrefix(season string) string {
	return "summary:" + season + ":"
}

// DecoratedGameweek is one stored row enriched at read time with the fixture
// resolution and attack points. The stored row never carries opponent data;
// the fixture list stays the single source of truth.
type DecoratedGameweek struct {
	gameweek.PlayerGameweek

	Opponent     string
	OpponentName string
	IsHome       bool
	AttackPts    float64
}

// SeasonTotals folds a player's decorated rows into season aggregates.
type SeasonTotals struct {
	GamesPlayed  int
	GamesStarted int
	Minutes      float64

	Points    float64
	GhostPts  float64
	AttackPts float64

	Goals         float64
	Assists       float64
	CleanSheets   float64
	Saves         float64
	Tackles       float64
	Interceptions float64
	Clearances    float64
	Aerials       float64
	KeyPasses     float64

	PointsPerGame  float64
	PointsPerStart float64
	GhostPerGame   float64
	GhostPerStart  float64

	HomePoints float64
	AwayPoints float64
	HomeAvg    float64
	AwayAvg    float64
	HomePct    float64
	AwayPct    float64
}

type PlayerSeasonSummary struct {
	Player          player.Player
	PositionDisplay string
	Season          string

	Rows         []DecoratedGameweek
	Totals       SeasonTotals
	NextFixtures []fixture.Fixture
}

type SummaryService struct {
	playerRepo   player.Repository
	gameweekRepo gameweek.Repository
	fixtureRepo  fixture.Repository
	teamService  *TeamService
	cacheStore   *cache.Store
}

func NewSummaryService(
	playerRepo player.Repository,
	gameweekRepo gameweek.Repository,
	fixtureRepo fixture.Repository,
	teamService *TeamService,
	cacheStore *cache.Store,
) *SummaryService {
	return &SummaryService{
		playerRepo:   playerRepo,
		gameweekRepo: gameweekRepo,
		fixtureRepo:  fixtureRepo,
		teamService:  teamService,
		cacheStore:   cacheStore,
	}
}

// GetPlayerSeasonSummary builds the full season view for one player. Results
// are cached per (season, player) and invalidated on upload.
func (s *SummaryService) GetPlayerSeasonSummary(ctx context.Context, playerID, season string) (PlayerSeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.GetPlayerSeasonSummary")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	season = strings.TrimSpace(season)
	if playerID == "" {
		return PlayerSeasonSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if season == "" {
		return PlayerSeasonSummary{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if s.cacheStore == nil {
		return s.buildSummary(ctx, playerID, season)
	}

	key := summaryCachePrefix(season) + playerID
	value, err := s.cacheStore.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildSummary(ctx, playerID, season)
	})
	if err != nil {
		return PlayerSeasonSummary{}, err
	}
	summary, ok := value.(PlayerSeasonSummary)
	if !ok {
		return s.buildSummary(ctx, playerID, season)
	}
	return summary, nil
}

func (s *SummaryService) buildSummary(ctx context.Context, playerID, season string) (PlayerSeasonSummary, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerSeasonSummary{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return PlayerSeasonSummary{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	rows, err := s.gameweekRepo.ListBySeasonAndPlayer(ctx, season, playerID)
	if err != nil {
		return PlayerSeasonSummary{}, fmt.Errorf("list player gameweeks: %w", err)
	}

	fixtures, err := s.fixtureRepo.ListBySeason(ctx, season)
	if err != nil {
		return PlayerSeasonSummary{}, fmt.Errorf("list fixtures: %w", err)
	}

	teamNames := map[string]string{}
	if s.teamService != nil {
		if names, nameErr := s.teamService.NameMap(ctx); nameErr == nil {
			teamNames = names
		}
	}

	decorated := DecorateRows(rows, item.Team, fixtures, teamNames)
	totals := FoldSeasonTotals(decorated)

	lastGameweek := 0
	for _, row := range decorated {
		if row.Gameweek > lastGameweek {
			lastGameweek = row.Gameweek
		}
	}

	next := make([]fixture.Fixture, 0, nextFixturesLimit)
	teamCode := strings.ToUpper(item.Team)
	for _, fx := range fixtures {
		if fx.Gameweek <= lastGameweek {
			continue
		}
		if strings.ToUpper(fx.HomeTeam) != teamCode && strings.ToUpper(fx.AwayTeam) != teamCode {
			continue
		}
		next = append(next, fx)
	}
	sort.SliceStable(next, func(i, j int) bool { return next[i].Gameweek < next[j].Gameweek })
	if len(next) > nextFixturesLimit {
		next = next[:nextFixturesLimit]
	}

	return PlayerSeasonSummary{
		Player:          item,
		PositionDisplay: item.Position.DisplayCode(),
		Season:          season,
		Rows:            decorated,
		Totals:          totals,
		NextFixtures:    next,
	}, nil
}

// DecorateRows resolves opponent context for each stored row and computes the
// row's attack points. Rows whose fixture cannot be resolved keep an empty
// opponent rather than failing the read.
func DecorateRows(rows []gameweek.PlayerGameweek, teamCode string, fixtures []fixture.Fixture, teamNames map[string]string) []DecoratedGameweek {
	out := make([]DecoratedGameweek, 0, len(rows))
	for _, row := range rows {
		item := DecoratedGameweek{
			PlayerGameweek: row,
			AttackPts:      scoring.AttackPoints(row.StatLine),
		}
		if res, ok := fixture.Resolve(fixtures, teamCode, row.Gameweek, ""); ok {
			item.Opponent = res.Opponent
			item.IsHome = res.IsHome
			if name, found := teamNames[res.Opponent]; found {
				item.OpponentName = name
			} else {
				item.OpponentName = res.Opponent
			}
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })
	return out
}

// FoldSeasonTotals aggregates decorated rows. Played rows are those with
// games_played set; per-start averages divide the started rows' own sums,
// not the season totals, by the start count.
func FoldSeasonTotals(rows []DecoratedGameweek) SeasonTotals {
	var totals SeasonTotals
	var startedPoints, startedGhost float64
	var homeGames, awayGames int
	for _, row := range rows {
		if row.GamesPlayed < 1 {
			continue
		}
		totals.GamesPlayed++
		if row.GamesStarted >= 1 {
			totals.GamesStarted++
			startedPoints += row.RawFantraxPts
			startedGhost += row.GhostPts
		}
		totals.Minutes += row.MinutesPlayed
		totals.Points += row.RawFantraxPts
		totals.GhostPts += row.GhostPts
		totals.AttackPts += row.AttackPts
		totals.Goals += row.Goals
		totals.Assists += row.Assists
		totals.CleanSheets += row.CleanSheet
		totals.Saves += row.Saves
		totals.Tackles += row.TacklesWon
		totals.Interceptions += row.Interceptions
		totals.Clearances += row.Clearances
		totals.Aerials += row.AerialsWon
		totals.KeyPasses += row.KeyPasses

		if row.Opponent != "" {
			if row.IsHome {
				totals.HomePoints += row.RawFantraxPts
				homeGames++
			} else {
				totals.AwayPoints += row.RawFantraxPts
				awayGames++
			}
		}
	}

	if totals.GamesPlayed > 0 {
		totals.PointsPerGame = scoring.RoundPoints(totals.Points / float64(totals.GamesPlayed))
		totals.GhostPerGame = scoring.RoundPoints(totals.GhostPts / float64(totals.GamesPlayed))
	}
	if totals.GamesStarted > 0 {
		totals.PointsPerStart = scoring.RoundPoints(startedPoints / float64(totals.GamesStarted))
		totals.GhostPerStart = scoring.RoundPoints(startedGhost / float64(totals.GamesStarted))
	}
	if homeGames > 0 {
		totals.HomeAvg = scoring.RoundPoints(totals.HomePoints / float64(homeGames))
	}
	if awayGames > 0 {
		totals.AwayAvg = scoring.RoundPoints(totals.AwayPoints / float64(awayGames))
	}
	if totals.Points != 0 {
		totals.HomePct = scoring.RoundPoints(totals.HomePoints / totals.Points * 100)
		totals.AwayPct = scoring.RoundPoints(totals.AwayPoints / totals.Points * 100)
	}
	totals.Points = scoring.RoundPoints(totals.Points)
	totals.GhostPts = scoring.RoundPoints(totals.GhostPts)
	totals.AttackPts = scoring.RoundPoints(totals.AttackPts)
	totals.HomePoints = scoring.RoundPoints(totals.HomePoints)
	totals.AwayPoints = scoring.RoundPoints(totals.AwayPoints)

	return totals
}
