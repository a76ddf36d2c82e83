package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	baku := time.FixedZone("AZT", 4*60*60)
	ts := time.Date(2025, 1, 1, 4, 0, 0, 123456789, baku)

	assert.Equal(t, "2025-01-01T00:00:00.123Z", FormatTimestamp(ts))
}

func TestFormatTimestamp_ZeroMillis(t *testing.T) {
	ts := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2025-06-30T23:59:59.000Z", FormatTimestamp(ts))
}
