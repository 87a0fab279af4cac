// Package app wires configuration, repositories, services and the HTTP
// surface into a runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/draftghost/statsportal/internal/config"
	"github.com/draftghost/statsportal/internal/domain/fixture"
	"github.com/draftghost/statsportal/internal/domain/gameweek"
	"github.com/draftghost/statsportal/internal/domain/player"
	"github.com/draftghost/statsportal/internal/domain/team"
	"github.com/draftghost/statsportal/internal/domain/user"
	"github.com/draftghost/statsportal/internal/infrastructure/account"
	"github.com/draftghost/statsportal/internal/infrastructure/repository/memory"
	"github.com/draftghost/statsportal/internal/infrastructure/repository/postgres"
	"github.com/draftghost/statsportal/internal/interfaces/httpapi"
	"github.com/draftghost/statsportal/internal/platform/cache"
	"github.com/draftghost/statsportal/internal/platform/logging"
	"github.com/draftghost/statsportal/internal/platform/resilience"
	"github.com/draftghost/statsportal/internal/usecase"
)

type repositories struct {
	players   player.Repository
	teams     team.Repository
	fixtures  fixture.Repository
	gameweeks gameweek.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	teamSvc := usecase.NewTeamService(repos.teams, store)
	uploadSvc := usecase.NewUploadService(repos.players, repos.teams, repos.fixtures, repos.gameweeks, store, logger)
	fixtureSvc := usecase.NewFixtureService(repos.fixtures)
	playerSvc := usecase.NewPlayerService(repos.players)
	summarySvc := usecase.NewSummaryService(repos.players, repos.gameweeks, repos.fixtures, teamSvc, store)
	statsSvc := usecase.NewStatsService(repos.players, repos.gameweeks, repos.fixtures, store)

	access := user.NewAccessList(cfg.AdminEmails, cfg.PremiumEmails)
	verifier := account.NewClient(account.Config{
		IntrospectURL: cfg.AuthIntrospectURL,
		Timeout:       cfg.AuthTimeout,
		Circuit: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(
		uploadSvc,
		teamSvc,
		fixtureSvc,
		playerSvc,
		summarySvc,
		statsSvc,
		access,
		cfg.DefaultSeason,
		cfg.SeasonTotalsPreviewRows,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, access, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories connects to Postgres when DB_URL is set; otherwise it
// falls back to seeded in-memory repositories, which is enough for local
// development against the read endpoints.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")

		teamRepo := memory.NewTeamRepository()
		fixtureRepo := memory.NewFixtureRepository()
		ctx := context.Background()
		if err := teamRepo.UpsertMany(ctx, memory.SeedTeams()); err != nil {
			return repositories{}, fmt.Errorf("seed teams: %w", err)
		}
		if err := fixtureRepo.UpsertMany(ctx, memory.SeedFixtures(cfg.DefaultSeason)); err != nil {
			return repositories{}, fmt.Errorf("seed fixtures: %w", err)
		}

		return repositories{
			players:   memory.NewPlayerRepository(nil),
			teams:     teamRepo,
			fixtures:  fixtureRepo,
			gameweeks: memory.NewGameweekRepository(),
		}, nil
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(dbURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName("statsportal"))
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("using postgres repositories")

	return repositories{
		players:   postgres.NewPlayerRepository(db, nil),
		teams:     postgres.NewTeamRepository(db),
		fixtures:  postgres.NewFixtureRepository(db),
		gameweeks: postgres.NewGameweekRepository(db),
	}, nil
}
