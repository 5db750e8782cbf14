package store

import "fmt"

// retentionDays is the trailing window of daily activity kept in the
// store. Older day-records are pruned lazily on every increment.
const retentionDays = 90

// ActivityMap returns the full stored day-record map keyed by ISO
// date.
func (m *Manager) ActivityMap() (map[string]DayActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activityLocked()
}

func (m *Manager) activityLocked() (map[string]DayActivity, error) {
	activity := make(map[string]DayActivity)
	if _, err := getValue(m.kv, keyDailyActivity, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// DailyActivity returns the record for a date, zero-valued when the
// day has seen no tracked action.
func (m *Manager) DailyActivity(date string) (DayActivity, error) {
	activity, err := m.ActivityMap()
	if err != nil {
		return DayActivity{}, err
	}

	if day, ok := activity[date]; ok {
		return day, nil
	}
	return DayActivity{Date: date}, nil
}

// TodayActivity returns the record for the current local calendar day.
func (m *Manager) TodayActivity() (DayActivity, error) {
	return m.DailyActivity(m.now().Format(dateLayout))
}

// IncrementDailyActivity bumps one counter on today's record, creating
// the record lazily, prunes day-records outside the retention window
// and persists the whole map. Returns the updated record for today.
func (m *Manager) IncrementDailyActivity(counter Counter) (DayActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity, err := m.activityLocked()
	if err != nil {
		return DayActivity{}, err
	}

	today := m.today()
	day, ok := activity[today]
	if !ok {
		day = DayActivity{Date: today}
	}

	switch counter {
	case CounterMessages:
		day.MessagesSent++
	case CounterConnections:
		day.ConnectionsSent++
	case CounterProfileView:
		day.ProfileViews++
	default:
		return DayActivity{}, fmt.Errorf("unknown activity counter %q", counter)
	}

	activity[today] = day

	// ISO dates sort lexicographically, so a string compare prunes
	// correctly. The window keeps today plus the 89 preceding days.
	cutoff := m.now().AddDate(0, 0, -(retentionDays - 1)).Format(dateLayout)
	for date := range activity {
		if date < cutoff {
			delete(activity, date)
		}
	}

	if err := setValue(m.kv, keyDailyActivity, activity); err != nil {
		return DayActivity{}, err
	}
	return day, nil
}

// ActivityWindow returns day-records for the last n days, today first,
// synthesizing zero-valued records for days with no stored entry.
func (m *Manager) ActivityWindow(n int) ([]DayActivity, error) {
	activity, err := m.ActivityMap()
	if err != nil {
		return nil, err
	}

	now := m.now()
	window := make([]DayActivity, 0, n)
	for i := 0; i < n; i++ {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		if day, ok := activity[date]; ok {
			window = append(window, day)
		} else {
			window = append(window, DayActivity{Date: date})
		}
	}
	return window, nil
}

// IncrementAIUsage bumps today's AI usage counter for a kind
// ("generations" or "rewrites").
func (m *Manager) IncrementAIUsage(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	usage := make(map[string]AIUsage)
	if _, err := getValue(m.kv, keyAIUsage, &usage); err != nil {
		return err
	}

	today := m.today()
	day := usage[today]

	switch kind {
	case "rewrites":
		day.Rewrites++
	default:
		day.Generations++
	}

	usage[today] = day
	return setValue(m.kv, keyAIUsage, usage)
}

// AIUsageFor returns the AI usage counters for a date.
func (m *Manager) AIUsageFor(date string) (AIUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	usage := make(map[string]AIUsage)
	if _, err := getValue(m.kv, keyAIUsage, &usage); err != nil {
		return AIUsage{}, err
	}
	return usage[date], nil
}
