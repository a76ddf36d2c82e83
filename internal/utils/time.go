// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// JSON response writing, HTTP client initialization, trace identifiers
// and timestamp formatting.
package utils

import "time"

// TimestampLayout is the ISO-8601 layout with millisecond precision used in
// every response body, e.g. "2025-01-01T00:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in UTC using [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
