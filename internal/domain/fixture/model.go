package fixture

import (
	"fmt"
	"strings"
)

const (
	MinGameweek = 1
	MaxGameweek = 38
)

// Fixture is one scheduled match in a season round.
type Fixture struct {
	Season   string
	Gameweek int
	HomeTeam string
	AwayTeam string
}

func (f Fixture) Validate() error {
	if f.Season == "" {
		return fmt.Errorf("fixture season is required")
	}
	if f.Gameweek < MinGameweek || f.Gameweek > MaxGameweek {
		return fmt.Errorf("fixture gameweek must be between %d and %d", MinGameweek, MaxGameweek)
	}
	if f.HomeTeam == "" || f.AwayTeam == "" {
		return fmt.Errorf("fixture home and away teams are required")
	}

	return nil
}

// Resolution is the authoritative opponent context for one player-gameweek.
type Resolution struct {
	Opponent string
	IsHome   bool
}

// Resolve finds the fixture involving team in the given gameweek and derives
// the opponent and home flag from it. The hint narrows the search: "H" only
// matches the team as the home side, "A" only as the away side, anything else
// matches either side. Team codes compare case-insensitively. The opponent
// column of any uploaded file is deliberately not consulted; the fixture list
// is the single source of truth.
func Resolve(fixtures []Fixture, team string, gameweek int, hint string) (Resolution, bool) {
	teamCode := strings.ToUpper(strings.TrimSpace(team))
	side := strings.ToUpper(strings.TrimSpace(hint))

	for _, item := range fixtures {
		if item.Gameweek != gameweek {
			continue
		}

		home := strings.ToUpper(item.HomeTeam)
		away := strings.ToUpper(item.AwayTeam)

		switch side {
		case "H":
			if home == teamCode {
				return Resolution{Opponent: item.AwayTeam, IsHome: true}, true
			}
		case "A":
			if away == teamCode {
				return Resolution{Opponent: item.HomeTeam, IsHome: false}, true
			}
		default:
			if home == teamCode {
				return Resolution{Opponent: item.AwayTeam, IsHome: true}, true
			}
			if away == teamCode {
				return Resolution{Opponent: item.HomeTeam, IsHome: false}, true
			}
		}
	}

	return Resolution{}, false
}
