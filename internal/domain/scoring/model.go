package scoring

import "github.com/draftghost/statsportal/internal/domain/player"

// StatLine is one player-gameweek's normalized stat record, shared by the
// column mapper, the scoring formulas and the ingest pipeline. Counters stay
// float64 because they arrive through tolerant numeric coercion.
type StatLine struct {
	Position player.Position

	GamesPlayed   float64
	GamesStarted  float64
	MinutesPlayed float64

	RawFantraxPts float64

	Goals                float64
	Assists              float64
	KeyPasses            float64
	ShotsOnTarget        float64
	TacklesWon           float64
	Interceptions        float64
	Clearances           float64
	DribblesSucceeded    float64
	BlockedShots         float64
	AccurateCrosses      float64
	AerialsWon           float64
	PenaltiesDrawn       float64
	PenaltiesMissed      float64
	Dispossessed         float64
	YellowCards          float64
	RedCards             float64
	OwnGoals             float64
	CleanSheet           float64
	GoalsAgainst         float64
	GoalsAgainstOutfield float64
	SubbedOn             float64
	SubbedOff            float64

	Saves        float64
	PenaltySaves float64
	HighClaims   float64
	Smothers     float64
}

// Zero clears every stat counter, including the provider points. Used for
// did-not-play rows, which must carry no residual stats.
func (s *StatLine) Zero() {
	pos := s.Position
	*s = StatLine{Position: pos}
}
