package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementDailyActivity(t *testing.T) {
	m, _ := newTestManager(t)

	day, err := m.IncrementDailyActivity(CounterMessages)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", day.Date)
	assert.Equal(t, 1, day.MessagesSent)
	assert.Equal(t, 0, day.ConnectionsSent)

	day, err = m.IncrementDailyActivity(CounterConnections)
	require.NoError(t, err)
	assert.Equal(t, 1, day.MessagesSent)
	assert.Equal(t, 1, day.ConnectionsSent)

	day, err = m.IncrementDailyActivity(CounterProfileView)
	require.NoError(t, err)
	assert.Equal(t, 1, day.ProfileViews)

	_, err = m.IncrementDailyActivity(Counter("bogus"))
	assert.Error(t, err)
}

func TestActivityCrossesMidnight(t *testing.T) {
	m, clock := newTestManager(t)

	_, err := m.IncrementDailyActivity(CounterMessages)
	require.NoError(t, err)

	*clock = clock.AddDate(0, 0, 1)
	day, err := m.IncrementDailyActivity(CounterMessages)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", day.Date)
	assert.Equal(t, 1, day.MessagesSent, "a new day starts from zero")

	previous, err := m.DailyActivity("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 1, previous.MessagesSent)
}

func TestActivityRetention(t *testing.T) {
	m, clock := newTestManager(t)

	// Seed one record per day for 91 consecutive days ending today.
	activity := make(map[string]DayActivity)
	for i := 0; i < 91; i++ {
		date := clock.AddDate(0, 0, -i).Format(dateLayout)
		activity[date] = DayActivity{Date: date, MessagesSent: 1}
	}
	require.NoError(t, setValue(m.kv, keyDailyActivity, activity))

	_, err := m.IncrementDailyActivity(CounterMessages)
	require.NoError(t, err)

	stored, err := m.ActivityMap()
	require.NoError(t, err)
	assert.Len(t, stored, 90, "only the trailing 90 days survive")

	oldest := clock.AddDate(0, 0, -90).Format(dateLayout)
	_, ok := stored[oldest]
	assert.False(t, ok, "the 91st day back is pruned")

	edge := clock.AddDate(0, 0, -89).Format(dateLayout)
	_, ok = stored[edge]
	assert.True(t, ok, "the 90th day back is kept")
}

func TestActivityWindow(t *testing.T) {
	m, clock := newTestManager(t)

	_, err := m.IncrementDailyActivity(CounterConnections)
	require.NoError(t, err)

	*clock = clock.AddDate(0, 0, 2)
	window, err := m.ActivityWindow(7)
	require.NoError(t, err)
	require.Len(t, window, 7)

	assert.Equal(t, "2026-09-02", window[0].Date, "today comes first")
	assert.Equal(t, 0, window[0].ConnectionsSent)
	assert.Equal(t, "2026-08-31", window[2].Date)
	assert.Equal(t, 1, window[2].ConnectionsSent)
	for _, day := range window[3:] {
		assert.Zero(t, day.MessagesSent)
		assert.Zero(t, day.ConnectionsSent)
	}
}

func TestAIUsage(t *testing.T) {
	m, clock := newTestManager(t)

	require.NoError(t, m.IncrementAIUsage("generations"))
	require.NoError(t, m.IncrementAIUsage("generations"))
	require.NoError(t, m.IncrementAIUsage("rewrites"))

	usage, err := m.AIUsageFor("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 2, usage.Generations)
	assert.Equal(t, 1, usage.Rewrites)

	*clock = clock.Add(24 * time.Hour)
	usage, err = m.AIUsageFor("2026-09-01")
	require.NoError(t, err)
	assert.Zero(t, usage.Generations)
}
