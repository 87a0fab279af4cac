package upload

import (
	"testing"

	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 0},
		{in: "  ", want: 0},
		{in: "3", want: 3},
		{in: " 2.5 ", want: 2.5},
		{in: "-1.25", want: -1.25},
		{in: "abc", want: 0},
		{in: "12%", want: 0},
		{in: "NaN", want: 0},
		{in: "+Inf", want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceNumber(tt.in), "input=%q", tt.in)
	}
}

func TestMapRowPlayer(t *testing.T) {
	row := RawRow{
		"ID":       " *04k2x* ",
		"Player":   " Gabriel ",
		"Team":     "ARS",
		"Position": "d",
		"Opponent": "@CHE",
		"H/A":      "H",
		"Status":   "OK",
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
		"% Owned":  "87.4%",
		"+/-":      "+1.2",
		"Unknown":  "99",
	}

	got := MapRow(row, TypePlayer, 7)

	assert.Equal(t, "*04k2x*", got.FantraxID)
	assert.Equal(t, "Gabriel", got.Name)
	assert.Equal(t, "ARS", got.Team)
	assert.Equal(t, player.PositionDefender, got.Position)
	assert.Equal(t, 7, got.Gameweek)
	assert.Equal(t, "87.4%", got.OwnershipPct)
	assert.Equal(t, "+1.2", got.OwnershipChange)
	assert.Equal(t, 24.0, got.RawFantraxPts)
	assert.Equal(t, 1.0, got.GamesPlayed)
	assert.Equal(t, 90.0, got.MinutesPlayed)
	assert.Equal(t, 1.0, got.Goals)
	assert.Equal(t, 1.0, got.CleanSheet)
	assert.Equal(t, 3.0, got.KeyPasses)
	assert.Equal(t, 2.0, got.TacklesWon)
	assert.Equal(t, 1.0, got.YellowCards)
	// Ignored and unmapped headers leave no trace.
	assert.Zero(t, got.Saves)
}

func TestMapRowKeeperForcesPosition(t *testing.T) {
	row := RawRow{
		"ID":       "*9ssp1*",
		"Player":   "Raya",
		"Team":     "ARS",
		"Position": "D",
		"CS":       "1",
		"Sv":       "4",
		"GA":       "2",
		"GP":       "1",
	}

	got := MapRow(row, TypeKeeper, 3)

	assert.Equal(t, player.PositionKeeper, got.Position)
	assert.Equal(t, 1.0, got.CleanSheet)
	assert.Equal(t, 4.0, got.Saves)
	assert.Equal(t, 2.0, got.GoalsAgainst)
}

func TestMapRowGameweekFallback(t *testing.T) {
	withOwn := MapRow(RawRow{"GWk": "12"}, TypePlayer, 5)
	assert.Equal(t, 12, withOwn.Gameweek)

	blank := MapRow(RawRow{"GWk": ""}, TypePlayer, 5)
	assert.Equal(t, 5, blank.Gameweek)

	garbage := MapRow(RawRow{"GWk": "n/a"}, TypePlayer, 5)
	assert.Equal(t, 5, garbage.Gameweek)
}

func TestMapRowTotal(t *testing.T) {
	got := MapRow(RawRow{"Something": "x", "Else": "y"}, TypePlayer, 1)

	require.False(t, got.HasIdentity())
	assert.Empty(t, got.FantraxID)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Team)
	assert.Equal(t, 1, got.Gameweek)
	assert.Zero(t, got.RawFantraxPts)
	assert.Zero(t, got.Goals)
	assert.Zero(t, got.GoalsAgainst)
}

func TestHomeAwayHint(t *testing.T) {
	assert.Equal(t, "A", RawRow{"H/A": " A "}.HomeAwayHint())
	assert.Equal(t, "", RawRow{}.HomeAwayHint())
}

func TestParseType(t *testing.T) {
	typ, err := ParseType(" Keeper ")
	require.NoError(t, err)
	assert.Equal(t, TypeKeeper, typ)

	_, err = ParseType("squad")
	assert.Error(t, err)
}

func TestParamsValidate(t *testing.T) {
	valid := Params{Type: TypePlayer, Season: "2025-26", Gameweek: 10}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{name: "bad type", mutate: func(p *Params) { p.Type = "squad" }},
		{name: "missing season", mutate: func(p *Params) { p.Season = " " }},
		{name: "gameweek too low", mutate: func(p *Params) { p.Gameweek = 0 }},
		{name: "gameweek too high", mutate: func(p *Params) { p.Gameweek = 39 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
