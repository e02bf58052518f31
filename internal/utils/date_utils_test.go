package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-08-21")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-21", parsed.Format(DateLayout))
	assert.Equal(t, IST, parsed.Location())

	for _, bad := range []string{"", "21-08-2025", "2025/08/21", "2025-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDayBoundsIST(t *testing.T) {
	start, end, err := DayBoundsIST("2025-08-21")
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, end.Sub(start))
	// Midnight IST is 18:30 UTC of the previous day.
	assert.Equal(t, time.Date(2025, 8, 20, 18, 30, 0, 0, time.UTC).Unix(), start.Unix())

	_, _, err = DayBoundsIST("nope")
	assert.Error(t, err)
}

func TestYesterdayISTAroundMidnight(t *testing.T) {
	// 19:00 UTC Aug 21 is already 00:30 IST Aug 22.
	now := time.Date(2025, 8, 21, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-08-21", YesterdayIST(now))

	// 18:00 UTC Aug 21 is still 23:30 IST Aug 21.
	now = time.Date(2025, 8, 21, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-08-20", YesterdayIST(now))
}

func TestDaysBetweenInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysBetween("2025-08-21", "2025-08-21"))
	assert.Equal(t, 3, DaysBetween("2025-08-19", "2025-08-21"))
	assert.Equal(t, 0, DaysBetween("bad", "2025-08-21"))
}
