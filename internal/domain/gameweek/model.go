package gameweek

import (
	"fmt"

	"github.com/draftghost/statsportal/internal/domain/scoring"
)

// PlayerGameweek is the central fact record: one player's stat line for one
// season round, plus the derived ghost points. Unique per
// (player, season, gameweek).
type PlayerGameweek struct {
	PlayerID string
	Season   string
	Gameweek int

	GhostPts float64

	scoring.StatLine
}

func (r PlayerGameweek) Validate() error {
	if r.PlayerID == "" {
		return fmt.Errorf("player gameweek player id is required")
	}
	if r.Season == "" {
		return fmt.Errorf("player gameweek season is required")
	}
	if r.Gameweek <= 0 {
		return fmt.Errorf("player gameweek gameweek must be greater than zero")
	}

	return nil
}
