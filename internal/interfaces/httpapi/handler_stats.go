package httpapi

import (
	"fmt"
	"net/http"

	"github.com/draftghost/statsportal/internal/usecase"
)

type seasonTotalsRowDTO struct {
	PlayerID        string          `json:"playerId"`
	Name            string          `json:"name"`
	Team            string          `json:"team"`
	PositionDisplay string          `json:"positionDisplay"`
	Totals          seasonTotalsDTO `json:"totals"`
}

type seasonTotalsTableDTO struct {
	Season    string               `json:"season"`
	Rows      []seasonTotalsRowDTO `json:"rows"`
	RowCount  int                  `json:"rowCount"`
	IsPreview bool                 `json:"isPreview"`
}

// SeasonTotals serves the full table to premium callers. Everyone else gets
// the top of the table as a preview; the cut happens here so the ranking work
// below stays identical for both tiers.
func (h *Handler) SeasonTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeasonTotals")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	season := h.seasonOrDefault(r.URL.Query().Get("season"))

	rows, err := h.statsService.SeasonTotals(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "season totals failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	totalRows := len(rows)
	preview := false
	if !h.access.IsPremium(principal.Email) && h.previewRows > 0 && totalRows > h.previewRows {
		rows = rows[:h.previewRows]
		preview = true
	}

	items := make([]seasonTotalsRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, seasonTotalsRowDTO{
			PlayerID:        row.PlayerID,
			Name:            row.Name,
			Team:            row.Team,
			PositionDisplay: row.PositionDisplay,
			Totals:          seasonTotalsToDTO(row.Totals),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTotalsTableDTO{
		Season:    season,
		Rows:      items,
		RowCount:  totalRows,
		IsPreview: preview,
	})
}
