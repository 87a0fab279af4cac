package scoring

import (
	"math"

	"github.com/draftghost/statsportal/internal/domain/player"
)

// outfieldWeights are the position-dependent terms of the outfielder formula.
// Every other term is flat across positions.
type outfieldWeights struct {
	Goal              float64
	Assist            float64
	CleanSheet        float64
	Aerial            float64
	GoalsAgainstCurve bool
}

var outfieldWeightsByPosition = map[player.Position]outfieldWeights{
	player.PositionDefender:   {Goal: 10, Assist: 7, CleanSheet: 6, Aerial: 1, GoalsAgainstCurve: true},
	player.PositionMidfielder: {Goal: 9, Assist: 6, CleanSheet: 1, Aerial: 0.5},
	player.PositionForward:    {Goal: 9, Assist: 6, CleanSheet: 0, Aerial: 0.5},
}

func weightsFor(pos player.Position) outfieldWeights {
	if w, ok := outfieldWeightsByPosition[pos]; ok {
		return w
	}
	// Unknown codes score like forwards: no clean-sheet or goals-against terms.
	return outfieldWeightsByPosition[player.PositionForward]
}

// GoalsAgainstPoints is the shared concession penalty curve: the first goal
// conceded is free, every additional one costs two points.
func GoalsAgainstPoints(goalsAgainst float64) float64 {
	if goalsAgainst <= 1 {
		return 0
	}
	return (goalsAgainst - 1) * -2
}

// OutfielderPoints computes the custom model's points for a non-keeper row.
func OutfielderPoints(line StatLine) float64 {
	w := weightsFor(line.Position)

	gaoPts := 0.0
	if w.GoalsAgainstCurve {
		gaoPts = GoalsAgainstPoints(line.GoalsAgainstOutfield)
	}

	total := line.Goals*w.Goal +
		line.Assists*w.Assist +
		line.CleanSheet*w.CleanSheet +
		line.AerialsWon*w.Aerial +
		line.KeyPasses*2 +
		line.ShotsOnTarget*2 +
		line.TacklesWon +
		line.Interceptions +
		line.Clearances*0.25 +
		line.DribblesSucceeded +
		line.BlockedShots +
		line.AccurateCrosses +
		line.PenaltiesDrawn*2 +
		line.Dispossessed*-0.5 +
		line.YellowCards*-2 +
		line.RedCards*-7 +
		line.PenaltiesMissed*-4 +
		line.OwnGoals*-5 +
		gaoPts

	return RoundPoints(total)
}

// KeeperPoints computes the custom model's points for a keeper row.
func KeeperPoints(line StatLine) float64 {
	total := line.CleanSheet*6 +
		line.Saves*2 +
		line.PenaltySaves*8 +
		line.HighClaims +
		line.Smothers +
		line.Goals*10 +
		line.Assists*7 +
		line.KeyPasses*2 +
		line.ShotsOnTarget*2 +
		line.TacklesWon +
		line.Interceptions +
		line.Clearances*0.25 +
		line.DribblesSucceeded +
		line.AerialsWon +
		line.Dispossessed*-0.5 +
		line.YellowCards*-2 +
		line.RedCards*-7 +
		line.OwnGoals*-5 +
		GoalsAgainstPoints(line.GoalsAgainst)

	return RoundPoints(total)
}

// GhostPoints is the residual of the provider's raw points not attributable
// to goals, assists or clean sheets. Keepers weigh like defenders here (10/7)
// even though the keeper formula above never uses those terms; that asymmetry
// matches the production model and must not be "fixed".
func GhostPoints(line StatLine) float64 {
	if line.GamesPlayed <= 0 {
		return 0
	}

	headline := headlineGoalPoints(line) + headlineAssistPoints(line) + headlineCleanSheetPoints(line)
	result := line.RawFantraxPts - headline
	if result < 0 {
		result = 0
	}
	return RoundPoints(result)
}

func headlineGoalPoints(line StatLine) float64 {
	weight := 9.0
	if line.Position == player.PositionDefender || line.Position == player.PositionKeeper {
		weight = 10
	}
	return line.Goals * weight
}

func headlineAssistPoints(line StatLine) float64 {
	weight := 6.0
	if line.Position == player.PositionDefender || line.Position == player.PositionKeeper {
		weight = 7
	}
	return line.Assists * weight
}

func headlineCleanSheetPoints(line StatLine) float64 {
	switch line.Position {
	case player.PositionDefender, player.PositionKeeper:
		return line.CleanSheet * 6
	case player.PositionMidfielder:
		return line.CleanSheet
	default:
		return 0
	}
}

// ExpectedPoints applies the position-appropriate formula for a row.
func ExpectedPoints(line StatLine) float64 {
	if line.Position == player.PositionKeeper {
		return KeeperPoints(line)
	}
	return OutfielderPoints(line)
}

// AttackPoints is the headline-outcome counter used by dashboards.
func AttackPoints(line StatLine) float64 {
	return line.Goals + line.Assists + line.CleanSheet
}

// RoundPoints rounds half-up on the scaled integer so additive terms in
// quarter-point steps never drift.
func RoundPoints(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
