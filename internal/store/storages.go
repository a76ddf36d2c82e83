package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/api-gateway/internal/adapter"
	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
)

// Backend names reported in startup logs.
const (
	BackendSQL          = "sql"
	BackendSupabase     = "supabase"
	BackendUnconfigured = "unconfigured"
)

type Storages struct {
	Prober  DependencyProber
	Backend string

	db *DB
}

// NewStorages picks the probe backend from configuration. A DSN takes
// precedence over a Supabase URL; with neither the gateway still starts and
// reports the dependency as disconnected.
func NewStorages(ctx context.Context, storageCfg config.Storage, healthCfg config.Health, log *logger.Logger) (*Storages, error) {
	switch {
	case storageCfg.DB.DSN != "":
		db, err := NewConnect(ctx, storageCfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}

		prober, err := NewSQLProber(db, healthCfg.Table, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create sql prober: %w", err)
		}

		return &Storages{Prober: prober, Backend: BackendSQL, db: db}, nil

	case storageCfg.Supabase.URL != "":
		prober, err := adapter.NewSupabaseProber(storageCfg.Supabase, healthCfg, log)
		if err != nil {
			return nil, fmt.Errorf("create supabase prober: %w", err)
		}

		return &Storages{Prober: prober, Backend: BackendSupabase}, nil

	default:
		log.Warn().Msg("no data dependency configured, health will report degraded")
		return &Storages{Prober: NewUnconfiguredProber(), Backend: BackendUnconfigured}, nil
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
