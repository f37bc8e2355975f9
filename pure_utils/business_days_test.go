package pure_utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddBusinessDays(t *testing.T) {
	t.Run("ten business days span two weekends", func(t *testing.T) {
		// Monday June 2nd 2025 + 10 business days = Monday June 16th
		got, err := AddBusinessDays(date(2025, time.June, 2), 10)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 16), got)
	})

	t.Run("zero days returns start unchanged", func(t *testing.T) {
		start := date(2025, time.June, 7) // a Saturday
		got, err := AddBusinessDays(start, 0)
		require.NoError(t, err)
		assert.Equal(t, start, got)
	})

	t.Run("friday plus one lands on monday", func(t *testing.T) {
		got, err := AddBusinessDays(date(2025, time.June, 6), 1)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 9), got)
	})

	t.Run("weekend start counts from the following week", func(t *testing.T) {
		got, err := AddBusinessDays(date(2025, time.June, 7), 1)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.June, 9), got)
	})

	t.Run("result never lands on a weekend", func(t *testing.T) {
		start := date(2025, time.January, 1)
		for n := 1; n <= 30; n++ {
			got, err := AddBusinessDays(start, n)
			require.NoError(t, err)
			assert.False(t, IsWeekend(got), "n=%d landed on %s", n, got.Weekday())
		}
	})

	t.Run("monotonic in n", func(t *testing.T) {
		start := date(2025, time.March, 3)
		prev, err := AddBusinessDays(start, 0)
		require.NoError(t, err)
		for n := 1; n <= 15; n++ {
			got, err := AddBusinessDays(start, n)
			require.NoError(t, err)
			assert.True(t, got.After(prev))
			prev = got
		}
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		_, err := AddBusinessDays(date(2025, time.June, 2), -1)
		assert.ErrorIs(t, err, ErrNegativeDayCount)
	})
}

func TestAddCalendarDays(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 11), AddCalendarDays(date(2025, time.January, 1), 10))
	assert.Equal(t, date(2025, time.January, 31), AddCalendarDays(date(2025, time.January, 1), 30))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2025, time.June, 7)))
	assert.True(t, IsWeekend(date(2025, time.June, 8)))
	assert.False(t, IsWeekend(date(2025, time.June, 9)))
}
