package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/fixture"
)

// nextFixturesLimit caps the upcoming-matches preview on player summaries.
const nextFixturesLimit = 5

type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

// ListFixtures returns the season's fixtures, optionally narrowed to one
// gameweek when gameweek > 0.
func (s *FixtureService) ListFixtures(ctx context.Context, season string, gameweek int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if gameweek > 0 {
		if gameweek < fixture.MinGameweek || gameweek > fixture.MaxGameweek {
			return nil, fmt.Errorf("%w: gameweek must be between %d and %d", ErrInvalidInput, fixture.MinGameweek, fixture.MaxGameweek)
		}
		items, err := s.fixtureRepo.ListBySeasonGameweek(ctx, season, gameweek)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by gameweek: %w", err)
		}
		return items, nil
	}

	items, err := s.fixtureRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	sortFixtures(items)
	return items, nil
}

// NextFixtures returns the team's upcoming matches strictly after the given
// gameweek, capped at nextFixturesLimit.
func (s *FixtureService) NextFixtures(ctx context.Context, season, teamCode string, afterGameweek int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.NextFixtures")
	defer span.End()

	season = strings.TrimSpace(season)
	teamCode = strings.ToUpper(strings.TrimSpace(teamCode))
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if teamCode == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	items, err := s.fixtureRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	upcoming := make([]fixture.Fixture, 0, nextFixturesLimit)
	sortFixtures(items)
	for _, item := range items {
		if item.Gameweek <= afterGameweek {
			continue
		}
		if !strings.EqualFold(item.HomeTeam, teamCode) && !strings.EqualFold(item.AwayTeam, teamCode) {
			continue
		}
		upcoming = append(upcoming, item)
		if len(upcoming) == nextFixturesLimit {
			break
		}
	}
	return upcoming, nil
}

func sortFixtures(items []fixture.Fixture) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Gameweek != items[j].Gameweek {
			return items[i].Gameweek < items[j].Gameweek
		}
		return items[i].HomeTeam < items[j].HomeTeam
	})
}
