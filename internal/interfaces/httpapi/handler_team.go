package httpapi

import (
	"net/http"

	"github.com/draftghost/statsportal/internal/domain/team"
)

type teamDTO struct {
	Abbrev    string `json:"abbrev"`
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		Abbrev:    v.Abbrev,
		ShortName: v.ShortName,
		FullName:  v.FullName,
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
