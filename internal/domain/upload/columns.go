package upload

// Internal field names targeted by the column maps. Identity and ownership
// fields copy through as trimmed text; everything else goes through numeric
// coercion into the stat line.
const (
	fieldFantraxID       = "fantrax_id"
	fieldName            = "name"
	fieldTeam            = "team"
	fieldPosition        = "position"
	fieldGameweek        = "gameweek"
	fieldOwnershipPct    = "ownership_pct"
	fieldOwnershipChange = "ownership_change"

	fieldRawFantraxPts        = "raw_fantrax_pts"
	fieldGamesPlayed          = "games_played"
	fieldGamesStarted         = "games_started"
	fieldMinutesPlayed        = "minutes_played"
	fieldGoals                = "goals"
	fieldAssists              = "assists"
	fieldKeyPasses            = "key_passes"
	fieldShotsOnTarget        = "shots_on_target"
	fieldTacklesWon           = "tackles_won"
	fieldInterceptions        = "interceptions"
	fieldClearances           = "clearances"
	fieldDribblesSucceeded    = "dribbles_succeeded"
	fieldBlockedShots         = "blocked_shots"
	fieldAccurateCrosses      = "accurate_crosses"
	fieldAerialsWon           = "aerials_won"
	fieldPenaltiesDrawn       = "penalties_drawn"
	fieldPenaltiesMissed      = "penalties_missed"
	fieldDispossessed         = "dispossessed"
	fieldYellowCards          = "yellow_cards"
	fieldRedCards             = "red_cards"
	fieldOwnGoals             = "own_goals"
	fieldCleanSheet           = "clean_sheet"
	fieldGoalsAgainst         = "goals_against"
	fieldGoalsAgainstOutfield = "goals_against_outfield"
	fieldSubbedOn             = "subbed_on"
	fieldSubbedOff            = "subbed_off"
	fieldSaves                = "saves"
	fieldPenaltySaves         = "penalty_saves"
	fieldHighClaims           = "high_claims"
	fieldSmothers             = "smothers"
)

// homeAwayColumn is read straight off the raw row as a resolution hint; it is
// intentionally absent from both maps.
const homeAwayColumn = "H/A"

// ignoreColumns are provider-internal columns skipped without a mapping.
// "Opponent" is listed explicitly: the fixture table is authoritative and the
// vendor's own opponent annotation is unreliable.
var ignoreColumns = map[string]struct{}{
	"Rk":       {},
	"RkOv":     {},
	"Status":   {},
	"Opponent": {},
	"Opp":      {},
	"FP/G":     {},
	"S%":       {},
	"Sv%":      {},
	"Score":    {},
}

// playerColumnMap covers the vendor's outfielder weekly export.
var playerColumnMap = map[string]string{
	"ID":       fieldFantraxID,
	"Player":   fieldName,
	"Team":     fieldTeam,
	"Position": fieldPosition,
	"GWk":      fieldGameweek,
	"% Owned":  fieldOwnershipPct,
	"+/-":      fieldOwnershipChange,
	"FPts":     fieldRawFantraxPts,
	"GP":       fieldGamesPlayed,
	"GS":       fieldGamesStarted,
	"Min":      fieldMinutesPlayed,
	"G":        fieldGoals,
	"A":        fieldAssists,
	"KP":       fieldKeyPasses,
	"SOT":      fieldShotsOnTarget,
	"TkW":      fieldTacklesWon,
	"Int":      fieldInterceptions,
	"CLR":      fieldClearances,
	"CoS":      fieldDribblesSucceeded,
	"BS":       fieldBlockedShots,
	"ACNC":     fieldAccurateCrosses,
	"AER":      fieldAerialsWon,
	"PKD":      fieldPenaltiesDrawn,
	"PKM":      fieldPenaltiesMissed,
	"DIS":      fieldDispossessed,
	"YC":       fieldYellowCards,
	"RC":       fieldRedCards,
	"OG":       fieldOwnGoals,
	"CS":       fieldCleanSheet,
	"GAO":      fieldGoalsAgainstOutfield,
	"Sub On":   fieldSubbedOn,
	"Sub Off":  fieldSubbedOff,
}

// keeperColumnMap covers the keeper weekly export, which renames several
// semantically equivalent columns and adds keeper-only stats.
var keeperColumnMap = map[string]string{
	"ID":       fieldFantraxID,
	"Player":   fieldName,
	"Team":     fieldTeam,
	"Position": fieldPosition,
	"GWk":      fieldGameweek,
	"% Owned":  fieldOwnershipPct,
	"+/-":      fieldOwnershipChange,
	"FPts":     fieldRawFantraxPts,
	"GP":       fieldGamesPlayed,
	"GS":       fieldGamesStarted,
	"Min":      fieldMinutesPlayed,
	"CS":       fieldCleanSheet,
	"GA":       fieldGoalsAgainst,
	"Sv":       fieldSaves,
	"PKS":      fieldPenaltySaves,
	"HC":       fieldHighClaims,
	"SMT":      fieldSmothers,
	"G":        fieldGoals,
	"A":        fieldAssists,
	"KP":       fieldKeyPasses,
	"SOT":      fieldShotsOnTarget,
	"TkW":      fieldTacklesWon,
	"Int":      fieldInterceptions,
	"CLR":      fieldClearances,
	"CoS":      fieldDribblesSucceeded,
	"AER":      fieldAerialsWon,
	"DIS":      fieldDispossessed,
	"YC":       fieldYellowCards,
	"RC":       fieldRedCards,
	"OG":       fieldOwnGoals,
	"Sub On":   fieldSubbedOn,
	"Sub Off":  fieldSubbedOff,
}

func columnMapFor(typ Type) map[string]string {
	if typ == TypeKeeper {
		return keeperColumnMap
	}
	return playerColumnMap
}
