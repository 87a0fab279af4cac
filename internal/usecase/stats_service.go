package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/platform/cache"
)

const seasonTotalsWorkers = 8

func totalsCachePrefix(season string) string {
	return "totals:" + season + ":"
}

// SeasonTotalsRow is one line of the league-wide season table.
type SeasonTotalsRow struct {
	PlayerID        string
	Name            string
	Team            string
	PositionDisplay string

	Totals SeasonTotals
}

type StatsService struct {
	playerRepo   player.Repository
	gameweekRepo gameweek.Repository
	fixtureRepo  fixture.Repository
	cacheStore   *cache.Store
}

func NewStatsService(
	playerRepo player.Repository,
	gameweekRepo gameweek.Repository,
	fixtureRepo fixture.Repository,
	cacheStore *cache.Store,
) *StatsService {
	return &StatsService{
		playerRepo:   playerRepo,
		gameweekRepo: gameweekRepo,
		fixtureRepo:  fixtureRepo,
		cacheStore:   cacheStore,
	}
}

// SeasonTotals computes the full per-player season table, ordered by points
// descending. Per-player folds run on a shared worker pool.
func (s *StatsService) SeasonTotals(ctx context.Context, season string) ([]SeasonTotalsRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.SeasonTotals")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if s.cacheStore == nil {
		return s.buildSeasonTotals(ctx, season)
	}

	key := totalsCachePrefix(season) + "table"
	value, err := s.cacheStore.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildSeasonTotals(ctx, season)
	})
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]SeasonTotalsRow)
	if !ok {
		return s.buildSeasonTotals(ctx, season)
	}
	return rows, nil
}

func (s *StatsService) buildSeasonTotals(ctx context.Context, season string) ([]SeasonTotalsRow, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return []SeasonTotalsRow{}, nil
	}

	rows, err := s.gameweekRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list season gameweeks: %w", err)
	}

	fixtures, err := s.fixtureRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	byPlayer := make(map[string][]gameweek.PlayerGameweek, len(players))
	for _, row := range rows {
		byPlayer[row.PlayerID] = append(byPlayer[row.PlayerID], row)
	}

	workerCount := seasonTotalsWorkers
	if len(players) < workerCount {
		workerCount = len(players)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]SeasonTotalsRow, 0, len(players))
	var mu sync.Mutex
	var workers sync.WaitGroup

	for _, item := range players {
		item := item
		playerRows, ok := byPlayer[item.ID]
		if !ok {
			continue
		}

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			decorated := DecorateRows(playerRows, item.Team, fixtures, nil)
			totals := FoldSeasonTotals(decorated)

			mu.Lock()
			out = append(out, SeasonTotalsRow{
				PlayerID:        item.ID,
				Name:            item.Name,
				Team:            item.Team,
				PositionDisplay: item.Position.DisplayCode(),
				Totals:          totals,
			})
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Totals.Points != out[j].Totals.Points {
			return out[i].Totals.Points > out[j].Totals.Points
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
