package memory

import (
	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/team"
)

// SeedTeams returns a handful of clubs so database-less dev runs serve
// something before the first teams upload.
func SeedTeams() []team.Team {
	return []team.Team{
		{Abbrev: "ARS", ShortName: "Arsenal", FullName: "Arsenal FC"},
		{Abbrev: "CHE", ShortName: "Chelsea", FullName: "Chelsea FC"},
		{Abbrev: "LIV", ShortName: "Liverpool", FullName: "Liverpool FC"},
		{Abbrev: "MCI", ShortName: "Man City", FullName: "Manchester City FC"},
		{Abbrev: "MUN", ShortName: "Man United", FullName: "Manchester United FC"},
		{Abbrev: "TOT", ShortName: "Spurs", FullName: "Tottenham Hotspur FC"},
	}
}

// SeedFixtures pairs the seeded clubs across the opening rounds.
func SeedFixtures(season string) []fixture.Fixture {
	return []fixture.Fixture{
		{Season: season, Gameweek: 1, HomeTeam: "ARS", AwayTeam: "CHE"},
		{Season: season, Gameweek: 1, HomeTeam: "LIV", AwayTeam: "MCI"},
		{Season: season, Gameweek: 1, HomeTeam: "MUN", AwayTeam: "TOT"},
		{Season: season, Gameweek: 2, HomeTeam: "CHE", AwayTeam: "LIV"},
		{Season: season, Gameweek: 2, HomeTeam: "MCI", AwayTeam: "MUN"},
		{Season: season, Gameweek: 2, HomeTeam: "TOT", AwayTeam: "ARS"},
	}
}
