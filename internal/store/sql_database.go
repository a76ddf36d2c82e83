package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/migrations"
)

// Driver names as registered with database/sql. They double as goose
// dialect names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection pool for cfg.DSN, choosing the driver from
// the DSN scheme:
//   - postgres://, postgresql:// → pgx
//   - sqlite://path, file:path, *.db, *.sqlite, :memory: → sqlite3
//
// An unreachable database is not an error here: the pool is returned and
// the health probe reports the dependency as disconnected until it answers.
// When cfg.AutoMigrate is set and the database is reachable, the embedded
// migrations are applied.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch driver {
	case DriverPostgres:
		db, err = newConnectPostgres(dsn, log)
	default:
		db, err = newConnectSQLite(dsn, log)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Str("driver", driver).Msg("database is unreachable at startup")
		return db, nil
	}
	log.Info().Str("driver", driver).Msg("connected to database successfully")

	if cfg.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("driver", driver).Msg("error applying migrations")
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		log.Info().Str("driver", driver).Msg("migrations applied")
	}

	return db, nil
}

// ParseDSN resolves the database/sql driver name and the driver-specific
// connection string for dsn.
func ParseDSN(dsn string) (driver string, conn string, err error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := dsn[len("sqlite://"):]
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:",
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// redactDSN keeps only the scheme of dsn so credentials never reach the logs.
func redactDSN(dsn string) string {
	if scheme, _, found := strings.Cut(dsn, "://"); found {
		return scheme + "://***"
	}
	return "***"
}

// Driver reports the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func configurePool(conn *sql.DB) {
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)
}
