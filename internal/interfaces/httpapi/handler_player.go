package httpapi

import (
	"net/http"

	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/usecase"
)

type playerDTO struct {
	ID              string `json:"id"`
	FantraxID       string `json:"fantraxId"`
	Name            string `json:"name"`
	Team            string `json:"team"`
	Position        string `json:"position"`
	PositionDisplay string `json:"positionDisplay"`
	OwnershipPct    string `json:"ownershipPct"`
	OwnershipChange string `json:"ownershipChange"`
	IsKeeper        bool   `json:"isKeeper"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:              v.ID,
		FantraxID:       v.FantraxID,
		Name:            v.Name,
		Team:            v.Team,
		Position:        string(v.Position),
		PositionDisplay: v.Position.DisplayCode(),
		OwnershipPct:    v.OwnershipPct,
		OwnershipChange: v.OwnershipChange,
		IsKeeper:        v.IsKeeper,
	}
}

type gameweekRowDTO struct {
	Gameweek     int     `json:"gameweek"`
	Opponent     string  `json:"opponent"`
	OpponentName string  `json:"opponentName"`
	IsHome       bool    `json:"isHome"`
	Points       float64 `json:"points"`
	GhostPts     float64 `json:"ghostPts"`
	AttackPts    float64 `json:"attackPts"`

	GamesPlayed   float64 `json:"gamesPlayed"`
	GamesStarted  float64 `json:"gamesStarted"`
	MinutesPlayed float64 `json:"minutesPlayed"`
	Goals         float64 `json:"goals"`
	Assists       float64 `json:"assists"`
	CleanSheet    float64 `json:"cleanSheet"`
	Saves         float64 `json:"saves"`
	GoalsAgainst  float64 `json:"goalsAgainst"`
	YellowCards   float64 `json:"yellowCards"`
	RedCards      float64 `json:"redCards"`
}

func gameweekRowToDTO(v usecase.DecoratedGameweek) gameweekRowDTO {
	return gameweekRowDTO{
		Gameweek:      v.Gameweek,
		Opponent:      v.Opponent,
		OpponentName:  v.OpponentName,
		IsHome:        v.IsHome,
		Points:        v.RawFantraxPts,
		GhostPts:      v.GhostPts,
		AttackPts:     v.AttackPts,
		GamesPlayed:   v.GamesPlayed,
		GamesStarted:  v.GamesStarted,
		MinutesPlayed: v.MinutesPlayed,
		Goals:         v.Goals,
		Assists:       v.Assists,
		CleanSheet:    v.CleanSheet,
		Saves:         v.Saves,
		GoalsAgainst:  v.GoalsAgainst,
		YellowCards:   v.YellowCards,
		RedCards:      v.RedCards,
	}
}

type seasonTotalsDTO struct {
	GamesPlayed  int     `json:"gamesPlayed"`
	GamesStarted int     `json:"gamesStarted"`
	Minutes      float64 `json:"minutes"`

	Points    float64 `json:"points"`
	GhostPts  float64 `json:"ghostPts"`
	AttackPts float64 `json:"attackPts"`

	Goals         float64 `json:"goals"`
	Assists       float64 `json:"assists"`
	CleanSheets   float64 `json:"cleanSheets"`
	Saves         float64 `json:"saves"`
	Tackles       float64 `json:"tackles"`
	Interceptions float64 `json:"interceptions"`
	Clearances    float64 `json:"clearances"`
	Aerials       float64 `json:"aerials"`
	KeyPasses     float64 `json:"keyPasses"`

	PointsPerGame  float64 `json:"pointsPerGame"`
	PointsPerStart float64 `json:"pointsPerStart"`
	GhostPerGame   float64 `json:"ghostPerGame"`
	GhostPerStart  float64 `json:"ghostPerStart"`

	HomePoints float64 `json:"homePoints"`
	AwayPoints float64 `json:"awayPoints"`
	HomeAvg    float64 `json:"homeAvg"`
	AwayAvg    float64 `json:"awayAvg"`
	HomePct    float64 `json:"homePct"`
	AwayPct    float64 `json:"awayPct"`
}

func seasonTotalsToDTO(v usecase.SeasonTotals) seasonTotalsDTO {
	return seasonTotalsDTO{
		GamesPlayed:    v.GamesPlayed,
		GamesStarted:   v.GamesStarted,
		Minutes:        v.Minutes,
		Points:         v.Points,
		GhostPts:       v.GhostPts,
		AttackPts:      v.AttackPts,
		Goals:          v.Goals,
		Assists:        v.Assists,
		CleanSheets:    v.CleanSheets,
		Saves:          v.Saves,
		Tackles:        v.Tackles,
		Interceptions:  v.Interceptions,
		Clearances:     v.Clearances,
		Aerials:        v.Aerials,
		KeyPasses:      v.KeyPasses,
		PointsPerGame:  v.PointsPerGame,
		PointsPerStart: v.PointsPerStart,
		GhostPerGame:   v.GhostPerGame,
		GhostPerStart:  v.GhostPerStart,
		HomePoints:     v.HomePoints,
		AwayPoints:     v.AwayPoints,
		HomeAvg:        v.HomeAvg,
		AwayAvg:        v.AwayAvg,
		HomePct:        v.HomePct,
		AwayPct:        v.AwayPct,
	}
}

type playerSummaryDTO struct {
	Player       playerDTO        `json:"player"`
	Season       string           `json:"season"`
	Rows         []gameweekRowDTO `json:"rows"`
	Totals       seasonTotalsDTO  `json:"totals"`
	NextFixtures []fixtureDTO     `json:"nextFixtures"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSummary")
	defer span.End()

	playerID := r.PathValue("playerID")
	season := h.seasonOrDefault(r.URL.Query().Get("season"))

	summary, err := h.summaryService.GetPlayerSeasonSummary(ctx, playerID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get player summary failed", "player_id", playerID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]gameweekRowDTO, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, gameweekRowToDTO(row))
	}

	nextFixtures := make([]fixtureDTO, 0, len(summary.NextFixtures))
	for _, f := range summary.NextFixtures {
		nextFixtures = append(nextFixtures, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, playerSummaryDTO{
		Player:       playerToDTO(summary.Player),
		Season:       summary.Season,
		Rows:         rows,
		Totals:       seasonTotalsToDTO(summary.Totals),
		NextFixtures: nextFixtures,
	})
}
