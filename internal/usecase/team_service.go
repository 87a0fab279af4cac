package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/draftghost/statsportal/internal/domain/team"
	"github.com/draftghost/statsportal/internal/platform/cache"
)

const teamsCacheKey = "teams:list"

type TeamService struct {
	teamRepo   team.Repository
	cacheStore *cache.Store
}

func NewTeamService(teamRepo team.Repository, cacheStore *cache.Store) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		cacheStore: cacheStore,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	if s.cacheStore == nil {
		return s.loadTeams(ctx)
	}

	value, err := s.cacheStore.GetOrLoad(ctx, teamsCacheKey, func(ctx context.Context) (any, error) {
		return s.loadTeams(ctx)
	})
	if err != nil {
		return nil, err
	}

	teams, ok := value.([]team.Team)
	if !ok {
		return s.loadTeams(ctx)
	}
	return teams, nil
}

// NameMap resolves team abbrevs to display names for decorating summaries.
func (s *TeamService) NameMap(ctx context.Context) (map[string]string, error) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	return team.NameMap(teams), nil
}

func (s *TeamService) loadTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Abbrev < teams[j].Abbrev })
	return teams, nil
}
