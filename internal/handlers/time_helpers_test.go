package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("02/03/2026", time.UTC)
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 2, 15, 42, 10, 0, time.UTC)

	start, end := dayBounds(at)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), end)
}

func TestValidHM(t *testing.T) {
	assert.True(t, validHM("09:00", "18:00"))
	assert.True(t, validHM("00:00", "23:59"))

	assert.False(t, validHM("9:00"))
	assert.False(t, validHM("09:60"))
	assert.False(t, validHM("24:00"))
	assert.False(t, validHM("0900"))
	assert.False(t, validHM(""))
}
