package store

import "errors"

// Sentinel errors returned by the probers. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrDependencyNotConfigured is returned by the unconfigured prober on
	// every call: neither a DSN nor a Supabase URL was provided.
	ErrDependencyNotConfigured = errors.New("no data dependency is configured")

	// ErrUnsupportedDSN is returned when the DSN scheme matches none of the
	// supported drivers.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNilDB is returned when a prober is built without a connection.
	ErrNilDB = errors.New("database connection is nil")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so both can be matched.
var (
	// ErrBuildingSQLQuery is returned when constructing the probe query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing the probe query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when reading the probe result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan probe rows")
)
