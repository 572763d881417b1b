package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fishing-league/internal/config"
)

const dbPingTimeout = 5 * time.Second

// openDB opens a traced sqlx handle for the postgres or sqlite3 driver.
func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.StorageDriver, cfg.DBURL, cfg.ServiceName)

	db, err := otelsqlx.Open(cfg.StorageDriver, dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithDBSystem(dbSystem(cfg.StorageDriver)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
		otelsql.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.StorageDriver, err)
	}

	maxOpen := cfg.DBMaxOpenConns
	if cfg.StorageDriver == config.StorageSQLite {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY.
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := pingDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func pingDB(db *sqlx.DB) error {
	deadline := time.Now().Add(dbPingTimeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = db.Ping(); lastErr == nil {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return fmt.Errorf("ping database: %w", lastErr)
}

func dbSystem(driver string) string {
	if driver == config.StorageSQLite {
		return "sqlite"
	}
	return "postgresql"
}
