package postgres

import (
	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/scoring"
)

// playerGameweekTableModel flattens the stat line into one row of the
// player_gameweeks fact table.
type playerGameweekTableModel struct {
	PlayerID string `db:"player_id"`
	Season   string `db:"season"`
	Gameweek int    `db:"gameweek"`

	Position string  `db:"position"`
	GhostPts float64 `db:"ghost_pts"`

	GamesPlayed   float64 `db:"games_played"`
	GamesStarted  float64 `db:"games_started"`
	MinutesPlayed float64 `db:"minutes_played"`

	RawFantraxPts float64 `db:"raw_fantrax_pts"`

	Goals                float64 `db:"goals"`
	Assists              float64 `db:"assists"`
	KeyPasses            float64 `db:"key_passes"`
	ShotsOnTarget        float64 `db:"shots_on_target"`
	TacklesWon           float64 `db:"tackles_won"`
	Interceptions        float64 `db:"interceptions"`
	Clearances           float64 `db:"clearances"`
	DribblesSucceeded    float64 `db:"dribbles_succeeded"`
	BlockedShots         float64 `db:"blocked_shots"`
	AccurateCrosses      float64 `db:"accurate_crosses"`
	AerialsWon           float64 `db:"aerials_won"`
	PenaltiesDrawn       float64 `db:"penalties_drawn"`
	PenaltiesMissed      float64 `db:"penalties_missed"`
	Dispossessed         float64 `db:"dispossessed"`
	YellowCards          float64 `db:"yellow_cards"`
	RedCards             float64 `db:"red_cards"`
	OwnGoals             float64 `db:"own_goals"`
	CleanSheet           float64 `db:"clean_sheet"`
	GoalsAgainst         float64 `db:"goals_against"`
	GoalsAgainstOutfield float64 `db:"goals_against_outfield"`
	SubbedOn             float64 `db:"subbed_on"`
	SubbedOff            float64 `db:"subbed_off"`

	Saves        float64 `db:"saves"`
	PenaltySaves float64 `db:"penalty_saves"`
	HighClaims   float64 `db:"high_claims"`
	Smothers     float64 `db:"smothers"`
}

func (m playerGameweekTableModel) toDomain() gameweek.PlayerGameweek {
	return gameweek.PlayerGameweek{
		PlayerID: m.PlayerID,
		Season:   m.Season,
		Gameweek: m.Gameweek,
		GhostPts: m.GhostPts,
		StatLine: scoring.StatLine{
			Position:             player.Position(m.Position),
			GamesPlayed:          m.GamesPlayed,
			GamesStarted:         m.GamesStarted,
			MinutesPlayed:        m.MinutesPlayed,
			RawFantraxPts:        m.RawFantraxPts,
			Goals:                m.Goals,
			Assists:              m.Assists,
			KeyPasses:            m.KeyPasses,
			ShotsOnTarget:        m.ShotsOnTarget,
			TacklesWon:           m.TacklesWon,
			Interceptions:        m.Interceptions,
			Clearances:           m.Clearances,
			DribblesSucceeded:    m.DribblesSucceeded,
			BlockedShots:         m.BlockedShots,
			AccurateCrosses:      m.AccurateCrosses,
			AerialsWon:           m.AerialsWon,
			PenaltiesDrawn:       m.PenaltiesDrawn,
			PenaltiesMissed:      m.PenaltiesMissed,
			Dispossessed:         m.Dispossessed,
			YellowCards:          m.YellowCards,
			RedCards:             m.RedCards,
			OwnGoals:             m.OwnGoals,
			CleanSheet:           m.CleanSheet,
			GoalsAgainst:         m.GoalsAgainst,
			GoalsAgainstOutfield: m.GoalsAgainstOutfield,
			SubbedOn:             m.SubbedOn,
			SubbedOff:            m.SubbedOff,
			Saves:                m.Saves,
			PenaltySaves:         m.PenaltySaves,
			HighClaims:           m.HighClaims,
			Smothers:             m.Smothers,
		},
	}
}

func playerGameweekToModel(row gameweek.PlayerGameweek) playerGameweekTableModel {
	return playerGameweekTableModel{
		PlayerID:             row.PlayerID,
		Season:               row.Season,
		Gameweek:             row.Gameweek,
		Position:             string(row.Position),
		GhostPts:             row.GhostPts,
		GamesPlayed:          row.GamesPlayed,
		GamesStarted:         row.GamesStarted,
		MinutesPlayed:        row.MinutesPlayed,
		RawFantraxPts:        row.RawFantraxPts,
		Goals:                row.Goals,
		Assists:              row.Assists,
		KeyPasses:            row.KeyPasses,
		ShotsOnTarget:        row.ShotsOnTarget,
		TacklesWon:           row.TacklesWon,
		Interceptions:        row.Interceptions,
		Clearances:           row.Clearances,
		DribblesSucceeded:    row.DribblesSucceeded,
		BlockedShots:         row.BlockedShots,
		AccurateCrosses:      row.AccurateCrosses,
		AerialsWon:           row.AerialsWon,
		PenaltiesDrawn:       row.PenaltiesDrawn,
		PenaltiesMissed:      row.PenaltiesMissed,
		Dispossessed:         row.Dispossessed,
		YellowCards:          row.YellowCards,
		RedCards:             row.RedCards,
		OwnGoals:             row.OwnGoals,
		CleanSheet:           row.CleanSheet,
		GoalsAgainst:         row.GoalsAgainst,
		GoalsAgainstOutfield: row.GoalsAgainstOutfield,
		SubbedOn:             row.SubbedOn,
		SubbedOff:            row.SubbedOff,
		Saves:                row.Saves,
		PenaltySaves:         row.PenaltySaves,
		HighClaims:           row.HighClaims,
		Smothers:             row.Smothers,
	}
}
