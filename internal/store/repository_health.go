package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
)

// sqlProber is the database/sql implementation of [DependencyProber]. It
// reads at most one row from the health table; an empty table still counts
// as a successful probe.
type sqlProber struct {
	db     *DB
	query  string
	args   []any
	logger *logger.Logger
}

// NewSQLProber constructs a [DependencyProber] that queries table through db.
// The query is built once, with the placeholder format of db's driver.
func NewSQLProber(db *DB, table string, logger *logger.Logger) (DependencyProber, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}

	if table == "" {
		table = config.DefaultHealthTable
	}

	query, args, err := buildProbeQuery(table, db.placeholder)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("driver", db.driver).Str("query", query).Msg("creating sql prober")

	return &sqlProber{
		db:     db,
		query:  query,
		args:   args,
		logger: logger,
	}, nil
}

// Probe implements [DependencyProber].
//
// Error handling:
//   - query failure → [ErrExecutingQuery] wrapping the driver error;
//   - row iteration failure → [ErrScanningRows] wrapping the driver error.
//
// Both are logged with the driver's retry classification.
func (p *sqlProber) Probe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	rows, err := p.db.QueryContext(ctx, p.query, p.args...)
	if err != nil {
		p.logFailure(log, err, "error executing probe query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var status sql.NullString
		if err = rows.Scan(&status); err != nil {
			p.logFailure(log, err, "error scanning probe row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}

	if err = rows.Err(); err != nil {
		p.logFailure(log, err, "error iterating probe rows")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func (p *sqlProber) logFailure(log *logger.Logger, err error, msg string) {
	event := log.Debug().Err(err).Str("func", "*sqlProber.Probe").Str("driver", p.db.driver)

	if p.db.errorClassificator != nil {
		event = event.Stringer("classification", p.db.errorClassificator.Classify(err))
	}
	if code := postgresError(err); code != "" {
		event = event.Str("sqlstate", code)
	}

	event.Msg(msg)
}
