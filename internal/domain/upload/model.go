package upload

import (
	"fmt"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/scoring"
)

// Type selects which vendor export format a stats file uses.
type Type string

const (
	TypePlayer Type = "player"
	TypeKeeper Type = "keeper"
)

func ParseType(v string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(v))) {
	case TypePlayer:
		return TypePlayer, nil
	case TypeKeeper:
		return TypeKeeper, nil
	default:
		return "", fmt.Errorf("invalid upload type %q", v)
	}
}

// Params are the required top-level parameters of one stats upload batch.
type Params struct {
	Type     Type
	Season   string
	Gameweek int
}

func (p Params) Validate() error {
	if p.Type != TypePlayer && p.Type != TypeKeeper {
		return fmt.Errorf("upload type must be %q or %q", TypePlayer, TypeKeeper)
	}
	if strings.TrimSpace(p.Season) == "" {
		return fmt.Errorf("season is required")
	}
	if p.Gameweek < fixture.MinGameweek || p.Gameweek > fixture.MaxGameweek {
		return fmt.Errorf("gameweek must be an integer between %d and %d", fixture.MinGameweek, fixture.MaxGameweek)
	}

	return nil
}

// RawRow is one parsed spreadsheet row: header name to cell text, as produced
// by the CSV/XLSX readers. Missing cells are simply absent.
type RawRow map[string]string

// HomeAwayHint returns the source file's H/A annotation for the row. It is
// only ever used to narrow fixture resolution, never trusted for opponents.
func (r RawRow) HomeAwayHint() string {
	return strings.TrimSpace(r[homeAwayColumn])
}

// NormalizedRow is the mapper output: provider identity plus a complete stat
// line with every omitted numeric defaulted to zero.
type NormalizedRow struct {
	FantraxID       string
	Name            string
	Team            string
	Gameweek        int
	OwnershipPct    string
	OwnershipChange string

	scoring.StatLine
}

// HasIdentity reports whether the row names a real player. Rows without
// identity are blank or unrelated lines and are dropped silently.
func (n NormalizedRow) HasIdentity() bool {
	return n.FantraxID != "" && n.Name != "" && n.Team != ""
}

// Player builds the player upsert record for this row.
func (n NormalizedRow) Player(typ Type) player.Player {
	return player.Player{
		FantraxID:       n.FantraxID,
		Name:            n.Name,
		Team:            n.Team,
		Position:        n.Position,
		OwnershipPct:    n.OwnershipPct,
		OwnershipChange: n.OwnershipChange,
		IsKeeper:        typ == TypeKeeper,
	}
}
