package upload

import (
	"math"
	"strconv"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/player"
)

// CoerceNumber turns an arbitrary cell value into a finite float64. Blank,
// non-numeric and non-finite input all coerce to zero; ingestion must never
// abort on a single malformed cell.
func CoerceNumber(value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// MapRow translates one raw spreadsheet row into the normalized shape using
// the active type's header map. Headers on the ignore list, and headers the
// map does not know, are skipped silently; every unmapped numeric stays zero.
// The row's own gameweek wins when present and positive, otherwise the
// caller-supplied target gameweek applies.
func MapRow(row RawRow, typ Type, fallbackGameweek int) NormalizedRow {
	columnMap := columnMapFor(typ)

	out := NormalizedRow{Gameweek: fallbackGameweek}
	if typ == TypeKeeper {
		out.Position = player.PositionKeeper
	}

	for header, value := range row {
		if _, skip := ignoreColumns[header]; skip {
			continue
		}

		field, ok := columnMap[header]
		if !ok {
			continue
		}

		switch field {
		case fieldFantraxID:
			out.FantraxID = strings.TrimSpace(value)
		case fieldName:
			out.Name = strings.TrimSpace(value)
		case fieldTeam:
			out.Team = strings.TrimSpace(value)
		case fieldPosition:
			if typ != TypeKeeper {
				out.Position = player.Position(strings.ToUpper(strings.TrimSpace(value)))
			}
		case fieldOwnershipPct:
			out.OwnershipPct = strings.TrimSpace(value)
		case fieldOwnershipChange:
			out.OwnershipChange = strings.TrimSpace(value)
		case fieldGameweek:
			// A row's own gameweek wins only when the cell truncates to a
			// positive integer; anything else keeps the upload's target
			// gameweek. Stricter than accepting any non-zero numeric, which
			// would let a negative or sub-1 fraction through.
			if gw := int(CoerceNumber(value)); gw > 0 {
				out.Gameweek = gw
			}
		default:
			setStat(&out, field, CoerceNumber(value))
		}
	}

	return out
}

func setStat(row *NormalizedRow, field string, value float64) {
	switch field {
	case fieldRawFantraxPts:
		row.RawFantraxPts = value
	case fieldGamesPlayed:
		row.GamesPlayed = value
	case fieldGamesStarted:
		row.GamesStarted = value
	case fieldMinutesPlayed:
		row.MinutesPlayed = value
	case fieldGoals:
		row.Goals = value
	case fieldAssists:
		row.Assists = value
	case fieldKeyPasses:
		row.KeyPasses = value
	case fieldShotsOnTarget:
		row.ShotsOnTarget = value
	case fieldTacklesWon:
		row.TacklesWon = value
	case fieldInterceptions:
		row.Interceptions = value
	case fieldClearances:
		row.Clearances = value
	case fieldDribblesSucceeded:
		row.DribblesSucceeded = value
	case fieldBlockedShots:
		row.BlockedShots = value
	case fieldAccurateCrosses:
		row.AccurateCrosses = value
	case fieldAerialsWon:
		row.AerialsWon = value
	case fieldPenaltiesDrawn:
		row.PenaltiesDrawn = value
	case fieldPenaltiesMissed:
		row.PenaltiesMissed = value
	case fieldDispossessed:
		row.Dispossessed = value
	case fieldYellowCards:
		row.YellowCards = value
	case fieldRedCards:
		row.RedCards = value
	case fieldOwnGoals:
		row.OwnGoals = value
	case fieldCleanSheet:
		row.CleanSheet = value
	case fieldGoalsAgainst:
		row.GoalsAgainst = value
	case fieldGoalsAgainstOutfield:
		row.GoalsAgainstOutfield = value
	case fieldSubbedOn:
		row.SubbedOn = value
	case fieldSubbedOff:
		row.SubbedOff = value
	case fieldSaves:
		row.Saves = value
	case fieldPenaltySaves:
		row.PenaltySaves = value
	case fieldHighClaims:
		row.HighClaims = value
	case fieldSmothers:
		row.Smothers = value
	}
}
