package player

import "fmt"

// Position is the provider's single-letter position code.
type Position string

const (
	PositionKeeper     Position = "G"
	PositionDefender   Position = "D"
	PositionMidfielder Position = "M"
	PositionForward    Position = "F"
)

var AllPositions = map[Position]struct{}{
	PositionKeeper:     {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// DisplayCode maps the provider code to the conventional fantasy label.
func (p Position) DisplayCode() string {
	switch p {
	case PositionKeeper:
		return "GK"
	case PositionDefender:
		return "DEF"
	case PositionMidfielder:
		return "MID"
	case PositionForward:
		return "FWD"
	default:
		return "MID"
	}
}

// Player is one provider-tracked athlete, keyed by the provider's stable id.
type Player struct {
	ID              string
	FantraxID       string
	Name            string
	Team            string
	Position        Position
	OwnershipPct    string
	OwnershipChange string
	IsKeeper        bool
}

// IDRef pairs the internal id with the provider id after an upsert.
type IDRef struct {
	ID        string
	FantraxID string
}

func (p Player) Validate() error {
	if p.FantraxID == "" {
		return fmt.Errorf("player fantrax id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("player team is required")
	}

	return nil
}
