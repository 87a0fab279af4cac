package httpapi

import (
	"net/http"

	"github.com/draftghost/statsportal/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/summary", handler.GetPlayerSummary)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/stats/season-totals", RequireAuth(verifier, http.HandlerFunc(handler.SeasonTotals)))
}

func registerAdminUploadRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, access user.AccessList) {
	mux.Handle("POST /v1/admin/uploads/stats", RequireUploadAdmin(verifier, access, http.HandlerFunc(handler.UploadStats)))
	mux.Handle("POST /v1/admin/uploads/fixtures", RequireUploadAdmin(verifier, access, http.HandlerFunc(handler.UploadFixtures)))
	mux.Handle("POST /v1/admin/uploads/teams", RequireUploadAdmin(verifier, access, http.HandlerFunc(handler.UploadTeams)))
}
