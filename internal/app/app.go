package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fishing-league/internal/config"
	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
	"github.com/riskibarqy/fishing-league/internal/domain/weighing"
	"github.com/riskibarqy/fishing-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fishing-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fishing-league/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/fishing-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/fishing-league/internal/platform/id"
	"github.com/riskibarqy/fishing-league/internal/platform/logging"
	"github.com/riskibarqy/fishing-league/internal/usecase"
	"github.com/riskibarqy/fishing-league/migrations"
)

type repositories struct {
	events  competition.Repository
	folders criterium.Repository
	links   weighing.Repository
}

// NewHTTPServer wires storage, services and routes. The returned cleanup
// closes the database when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	idGen := idgen.NewUUIDGenerator()
	eventSvc := usecase.NewEventService(repos.events, repos.folders, repos.links, idGen, logger)
	folderSvc := usecase.NewFolderService(repos.folders, repos.events, idGen, logger)
	standingsSvc := usecase.NewStandingsService(repos.folders, repos.events, usecase.StandingsConfig{
		Workers: cfg.StandingsWorkers,
		Defaults: criterium.Params{
			PenaltyPoints: cfg.StandingsPenaltyPoints,
			ExcludeCount:  cfg.StandingsExcludeCount,
		},
	}, logger)
	weighingSvc := usecase.NewWeighingAccessService(repos.links, repos.events, idGen, cfg.WeighingLinkDefaultTTL, logger)

	handler := httpapi.NewHandler(eventSvc, folderSvc, standingsSvc, weighingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		cleanup = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = repositories{
			events:  memory.NewEventRepository(),
			folders: memory.NewFolderRepository(),
			links:   memory.NewAccessLinkRepository(),
		}
	case config.StoragePostgres, config.StorageSQLite:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.DBAutoMigrate {
			if err := migrations.Up(db.DB, cfg.StorageDriver); err != nil {
				_ = db.Close()
				return repositories{}, nil, fmt.Errorf("auto migrate: %w", err)
			}
			logger.Info("database migrated", "driver", cfg.StorageDriver)
		}
		repos = sqlRepositories(db)
		cleanup = db.Close
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		repos.events = cache.NewEventRepository(repos.events, cfg.CacheTTL)
		repos.folders = cache.NewFolderRepository(repos.folders, cfg.CacheTTL)
	}

	logger.Info("storage ready",
		"driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
	)
	return repos, cleanup, nil
}

func sqlRepositories(db *sqlx.DB) repositories {
	return repositories{
		events:  sqlstore.NewEventRepository(db),
		folders: sqlstore.NewFolderRepository(db),
		links:   sqlstore.NewAccessLinkRepository(db),
	}
}
