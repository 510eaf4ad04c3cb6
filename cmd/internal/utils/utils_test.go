package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 1, 0, 0, time.UTC)

	// Time of day never affects the calendar-day difference.
	assert.Equal(t, 30, DaysBetween(from, to))
	assert.Equal(t, -30, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

func TestTruncate(t *testing.T) {
	truncated := Truncate(time.Date(2025, time.June, 15, 18, 45, 12, 999, time.Local))
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), truncated)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", FormatDate(parsed))

	_, err = ParseDate("31/12/2025")
	assert.Error(t, err)
}

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", FormatEpoch(0))
	assert.Equal(t, "2025-01-01T00:00:00Z", FormatEpoch(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()))
}

func TestSanitize(t *testing.T) {
	type payload struct {
		Name  string
		Tags  []string
		Count int
	}

	p := &payload{Name: "  John  ", Tags: []string{" a ", "b"}, Count: 3}
	Sanitize(p)

	assert.Equal(t, "John", p.Name)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, 3, p.Count)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() {
		Sanitize(struct{ Name string }{})
	})
}
