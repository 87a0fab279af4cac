package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/draftghost/statsportal/internal/domain/team"
	"github.com/draftghost/statsportal/internal/platform/cache"
)

type countingTeamRepo struct {
	teams []team.Team
	calls atomic.Int32
}

func (r *countingTeamRepo) List(context.Context) ([]team.Team, error) {
	r.calls.Add(1)
	return append([]team.Team(nil), r.teams...), nil
}

func (r *countingTeamRepo) UpsertMany(_ context.Context, teams []team.Team) error {
	r.teams = append(r.teams, teams...)
	return nil
}

func TestTeamService_ListTeams_CachesRepositoryReads(t *testing.T) {
	repo := &countingTeamRepo{teams: []team.Team{
		{Abbrev: "CHE", ShortName: "Chelsea", FullName: "Chelsea FC"},
		{Abbrev: "ARS", ShortName: "Arsenal", FullName: "Arsenal FC"},
	}}

	service := NewTeamService(repo, cache.NewStore(time.Minute))
	ctx := context.Background()

	teams, err := service.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 || teams[0].Abbrev != "ARS" {
		t.Fatalf("expected abbrev-sorted teams, got %+v", teams)
	}

	if _, err := service.ListTeams(ctx); err != nil {
		t.Fatalf("list teams again: %v", err)
	}
	if got := repo.calls.Load(); got != 1 {
		t.Fatalf("expected one repository read, got %d", got)
	}
}

func TestTeamService_NameMap(t *testing.T) {
	repo := &countingTeamRepo{teams: []team.Team{
		{Abbrev: "ARS", ShortName: "Arsenal", FullName: "Arsenal FC"},
	}}

	service := NewTeamService(repo, nil)
	names, err := service.NameMap(context.Background())
	if err != nil {
		t.Fatalf("name map: %v", err)
	}
	if names["ARS"] != "Arsenal FC" {
		t.Fatalf("unexpected name map: %+v", names)
	}
}
