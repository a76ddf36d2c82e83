package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// probeColumn is the single column read by the health probe.
const probeColumn = "status"

// buildProbeQuery renders
//
//	SELECT status FROM <table> LIMIT 1
//
// The table name is taken from validated configuration and is never user
// input.
func buildProbeQuery(table string, placeholder sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.
		Select(probeColumn).
		From(table).
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
