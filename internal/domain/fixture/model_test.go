package fixture

import "testing"

func TestResolve(t *testing.T) {
	fixtures := []Fixture{
		{Season: "2025-26", Gameweek: 3, HomeTeam: "ARS", AwayTeam: "CHE"},
		{Season: "2025-26", Gameweek: 3, HomeTeam: "LIV", AwayTeam: "MUN"},
		{Season: "2025-26", Gameweek: 4, HomeTeam: "CHE", AwayTeam: "ARS"},
	}

	tests := []struct {
		name         string
		team         string
		gameweek     int
		hint         string
		wantOpponent string
		wantHome     bool
		wantFound    bool
	}{
		{name: "home hint matches home side", team: "ARS", gameweek: 3, hint: "H", wantOpponent: "CHE", wantHome: true, wantFound: true},
		{name: "away hint matches away side", team: "CHE", gameweek: 3, hint: "A", wantOpponent: "ARS", wantHome: false, wantFound: true},
		{name: "no hint matches either side home", team: "ARS", gameweek: 3, hint: "", wantOpponent: "CHE", wantHome: true, wantFound: true},
		{name: "no hint matches either side away", team: "MUN", gameweek: 3, hint: "", wantOpponent: "LIV", wantHome: false, wantFound: true},
		{name: "case insensitive team code", team: "ars", gameweek: 3, hint: "h", wantOpponent: "CHE", wantHome: true, wantFound: true},
		{name: "home hint rejects away side", team: "CHE", gameweek: 3, hint: "H", wantFound: false},
		{name: "wrong gameweek", team: "ARS", gameweek: 5, hint: "", wantFound: false},
		{name: "unknown team", team: "NEW", gameweek: 3, hint: "", wantFound: false},
		{name: "garbage hint falls back to either side", team: "LIV", gameweek: 3, hint: "??", wantOpponent: "MUN", wantHome: true, wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Resolve(fixtures, tt.team, tt.gameweek, tt.hint)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if got.Opponent != tt.wantOpponent {
				t.Fatalf("opponent = %q, want %q", got.Opponent, tt.wantOpponent)
			}
			if got.IsHome != tt.wantHome {
				t.Fatalf("is_home = %v, want %v", got.IsHome, tt.wantHome)
			}
		})
	}
}

func TestResolveSymmetry(t *testing.T) {
	fixtures := []Fixture{{Season: "2025-26", Gameweek: 10, HomeTeam: "EVE", AwayTeam: "BOU"}}

	home, found := Resolve(fixtures, "EVE", 10, "H")
	if !found || home.Opponent != "BOU" || !home.IsHome {
		t.Fatalf("home resolution = %+v found=%v", home, found)
	}

	away, found := Resolve(fixtures, "BOU", 10, "")
	if !found || away.Opponent != "EVE" || away.IsHome {
		t.Fatalf("away resolution = %+v found=%v", away, found)
	}
}
