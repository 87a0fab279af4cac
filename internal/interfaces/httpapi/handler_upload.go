package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/draftghost/statsportal/internal/domain/upload"
	"github.com/draftghost/statsportal/internal/infrastructure/spreadsheet"
	"github.com/draftghost/statsportal/internal/usecase"
)

// maxUploadBytes bounds one upload request body. Weekly exports are well
// under a megabyte; anything near this limit is the wrong file.
const maxUploadBytes = 32 << 20

type statsUploadRequest struct {
	Type     string `validate:"required,oneof=player keeper"`
	Season   string `validate:"required"`
	Gameweek int    `validate:"required,min=1,max=38"`
}

func (h *Handler) UploadStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadStats")
	defer span.End()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	gameweek, err := strconv.Atoi(strings.TrimSpace(r.FormValue("gameweek")))
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Gameweek must be an integer between 1 and 38")
		return
	}

	req := statsUploadRequest{
		Type:     strings.TrimSpace(strings.ToLower(r.FormValue("type"))),
		Season:   strings.TrimSpace(r.FormValue("season")),
		Gameweek: gameweek,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	typ, err := upload.ParseType(req.Type)
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "No stats file supplied")
		return
	}
	defer file.Close()

	rows, err := spreadsheet.ParseStatsCSV(file)
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Could not parse CSV: "+err.Error())
		return
	}

	result, err := h.uploadService.IngestStats(ctx, upload.Params{
		Type:     typ,
		Season:   req.Season,
		Gameweek: req.Gameweek,
	}, rows)
	if err != nil {
		h.writeIngestError(ctx, w, r, err)
		return
	}

	writeUploadResult(ctx, w, http.StatusOK, uploadResponse{
		Success:       result.Success,
		RowsProcessed: result.RowsProcessed,
		Errors:        result.Errors,
	})
}

func (h *Handler) UploadFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadFixtures")
	defer span.End()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	season := strings.TrimSpace(r.FormValue("season"))
	if season == "" {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Season is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "No fixture file supplied")
		return
	}
	defer file.Close()

	fixtures, err := spreadsheet.ParseFixtureWorkbook(file, season)
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.uploadService.IngestFixtures(ctx, season, fixtures)
	if err != nil {
		h.writeIngestError(ctx, w, r, err)
		return
	}

	writeUploadResult(ctx, w, http.StatusOK, uploadResponse{
		Success:       result.Success,
		RowsProcessed: result.RowsProcessed,
		Errors:        result.Errors,
	})
}

func (h *Handler) UploadTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadTeams")
	defer span.End()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, "No team file supplied")
		return
	}
	defer file.Close()

	teams, err := spreadsheet.ParseTeamWorkbook(file)
	if err != nil {
		writeUploadFailure(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.uploadService.IngestTeams(ctx, teams)
	if err != nil {
		h.writeIngestError(ctx, w, r, err)
		return
	}

	writeUploadResult(ctx, w, http.StatusOK, uploadResponse{
		Success:       result.Success,
		RowsProcessed: result.RowsProcessed,
		Errors:        result.Errors,
	})
}

func (h *Handler) writeIngestError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrInvalidInput) {
		writeUploadFailure(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.ErrorContext(ctx, "ingest failed", "path", r.URL.Path, "error", err)
	writeUploadFailure(ctx, w, http.StatusInternalServerError, err.Error())
}
