package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/draftghost/statsportal/internal/domain/user"
	"github.com/draftghost/statsportal/internal/platform/logging"
	"github.com/draftghost/statsportal/internal/usecase"
)

type Handler struct {
	uploadService  *usecase.UploadService
	teamService    *usecase.TeamService
	fixtureService *usecase.FixtureService
	playerService  *usecase.PlayerService
	summaryService *usecase.SummaryService
	statsService   *usecase.StatsService

	access        user.AccessList
	defaultSeason string
	previewRows   int

	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	uploadService *usecase.UploadService,
	teamService *usecase.TeamService,
	fixtureService *usecase.FixtureService,
	playerService *usecase.PlayerService,
	summaryService *usecase.SummaryService,
	statsService *usecase.StatsService,
	access user.AccessList,
	defaultSeason string,
	previewRows int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		uploadService:  uploadService,
		teamService:    teamService,
		fixtureService: fixtureService,
		playerService:  playerService,
		summaryService: summaryService,
		statsService:   statsService,
		access:         access,
		defaultSeason:  defaultSeason,
		previewRows:    previewRows,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// seasonOrDefault normalizes the season query parameter, falling back to the
// configured current season when the caller omits it.
func (h *Handler) seasonOrDefault(raw string) string {
	season := strings.TrimSpace(raw)
	if season == "" {
		return h.defaultSeason
	}
	return season
}
