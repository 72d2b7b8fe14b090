package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2025-05-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("05/01/2025")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-05-01", formatDate(time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)))
}

func TestFormatTimePtr(t *testing.T) {
	assert.Nil(t, formatTimePtr(nil))

	ts := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-01T12:00:00Z", formatTimePtr(&ts))
}
