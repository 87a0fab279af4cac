package scoring

import (
	"testing"

	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/stretchr/testify/assert"
)

func TestGoalsAgainstPoints(t *testing.T) {
	tests := []struct {
		conceded float64
		want     float64
	}{
		{conceded: 0, want: 0},
		{conceded: 1, want: 0},
		{conceded: 2, want: -2},
		{conceded: 3, want: -4},
		{conceded: 4, want: -6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GoalsAgainstPoints(tt.conceded), "conceded=%v", tt.conceded)
	}
}

func TestOutfielderPointsDefenderScenario(t *testing.T) {
	line := StatLine{
		Position:      player.PositionDefender,
		Goals:         1,
		CleanSheet:    1,
		KeyPasses:     3,
		ShotsOnTarget: 1,
		TacklesWon:    2,
		YellowCards:   1,
	}

	// 10 + 6 + 6 + 2 + 2 - 2
	assert.InDelta(t, 24.00, OutfielderPoints(line), 0.001)
}

func TestOutfielderPointsPositionWeights(t *testing.T) {
	base := StatLine{Goals: 1, Assists: 1, CleanSheet: 1, AerialsWon: 2}

	defender := base
	defender.Position = player.PositionDefender
	assert.InDelta(t, 10+7+6+2.0, OutfielderPoints(defender), 0.001)

	midfielder := base
	midfielder.Position = player.PositionMidfielder
	assert.InDelta(t, 9+6+1+1.0, OutfielderPoints(midfielder), 0.001)

	forward := base
	forward.Position = player.PositionForward
	assert.InDelta(t, 9+6+0+1.0, OutfielderPoints(forward), 0.001)

	// Unknown position codes score like forwards.
	unknown := base
	unknown.Position = player.Position("X")
	assert.InDelta(t, OutfielderPoints(forward), OutfielderPoints(unknown), 0.001)
}

func TestOutfielderGoalsAgainstOnlyForDefenders(t *testing.T) {
	line := StatLine{Position: player.PositionMidfielder, GoalsAgainstOutfield: 3}
	assert.InDelta(t, 0, OutfielderPoints(line), 0.001)

	line.Position = player.PositionDefender
	assert.InDelta(t, -4, OutfielderPoints(line), 0.001)
}

func TestKeeperPointsScenario(t *testing.T) {
	line := StatLine{
		Position:     player.PositionKeeper,
		CleanSheet:   1,
		Saves:        4,
		GoalsAgainst: 2,
	}

	// 6 + 8 - 2
	assert.InDelta(t, 12.00, KeeperPoints(line), 0.001)
}

func TestKeeperPointsFullLine(t *testing.T) {
	line := StatLine{
		Position:     player.PositionKeeper,
		Saves:        5,
		PenaltySaves: 1,
		HighClaims:   2,
		Smothers:     1,
		GoalsAgainst: 3,
		Clearances:   2,
		YellowCards:  1,
	}

	// 10 + 8 + 2 + 1 - 4 + 0.5 - 2
	assert.InDelta(t, 15.50, KeeperPoints(line), 0.001)
}

func TestGhostPointsZeroWhenNotPlayed(t *testing.T) {
	line := StatLine{Position: player.PositionForward, RawFantraxPts: 12, Goals: 1}
	assert.Equal(t, 0.0, GhostPoints(line))
}

func TestGhostPointsResidual(t *testing.T) {
	line := StatLine{
		Position:      player.PositionMidfielder,
		GamesPlayed:   1,
		RawFantraxPts: 18,
		Goals:         1,
		Assists:       1,
		CleanSheet:    1,
	}

	// 18 - (9 + 6 + 1)
	assert.InDelta(t, 2.00, GhostPoints(line), 0.001)
}

func TestGhostPointsKeeperWeighsLikeDefender(t *testing.T) {
	line := StatLine{
		Position:      player.PositionKeeper,
		GamesPlayed:   1,
		RawFantraxPts: 20,
		Goals:         1,
		CleanSheet:    1,
	}

	// Keeper goal counts 10 and clean sheet 6 in the residual, regardless of
	// the keeper formula's own terms.
	assert.InDelta(t, 4.00, GhostPoints(line), 0.001)
}

func TestGhostPointsClampedAtZero(t *testing.T) {
	line := StatLine{
		Position:      player.PositionDefender,
		GamesPlayed:   1,
		RawFantraxPts: 5,
		Goals:         1,
	}
	assert.Equal(t, 0.0, GhostPoints(line))
}

func TestExpectedPointsRoundTrips(t *testing.T) {
	lines := []StatLine{
		{Position: player.PositionDefender, GamesPlayed: 1, Goals: 1, Clearances: 7, AerialsWon: 3, Dispossessed: 1},
		{Position: player.PositionMidfielder, GamesPlayed: 1, Assists: 2, KeyPasses: 4, DribblesSucceeded: 3},
		{Position: player.PositionKeeper, GamesPlayed: 1, Saves: 6, GoalsAgainst: 1, CleanSheet: 0},
		{Position: player.PositionForward, GamesPlayed: 1, Goals: 2, ShotsOnTarget: 5, PenaltiesMissed: 1},
	}

	for _, line := range lines {
		line.RawFantraxPts = ExpectedPoints(line)
		again := ExpectedPoints(line)
		assert.InDelta(t, line.RawFantraxPts, again, 0.01)
	}
}

func TestRoundPoints(t *testing.T) {
	assert.Equal(t, 0.25, RoundPoints(0.25))
	assert.Equal(t, 1.13, RoundPoints(1.125))
	assert.Equal(t, 24.0, RoundPoints(23.999999999997))
}

func TestStatLineZero(t *testing.T) {
	line := StatLine{Position: player.PositionDefender, Goals: 2, RawFantraxPts: 30, Saves: 1}
	line.Zero()

	assert.Equal(t, player.PositionDefender, line.Position)
	assert.Zero(t, line.Goals)
	assert.Zero(t, line.RawFantraxPts)
	assert.Zero(t, line.Saves)
}
