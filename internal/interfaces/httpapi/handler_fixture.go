package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/usecase"
)

type fixtureDTO struct {
	Season   string `json:"season"`
	Gameweek int    `json:"gameweek"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		Season:   v.Season,
		Gameweek: v.Gameweek,
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
	}
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	season := h.seasonOrDefault(r.URL.Query().Get("season"))

	gameweek := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("gameweek")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: gameweek must be an integer", usecase.ErrInvalidInput))
			return
		}
		gameweek = parsed
	}

	fixtures, err := h.fixtureService.ListFixtures(ctx, season, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
