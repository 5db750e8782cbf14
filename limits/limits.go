// Package limits classifies tracked activity against LinkedIn's soft
// usage limits. Nothing here blocks an action; the statuses exist to
// warn the user before the platform does.
package limits

import (
	"fmt"
	"math"
	"time"

	"github.com/Nehilsa2/linnectflow/store"
)

// Status bands a counter against its limit.
type Status string

const (
	StatusSafe     Status = "safe"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Warning thresholds as fractions of the limit.
const (
	warningThreshold  = 0.8
	criticalThreshold = 0.95
)

// weekDays is the inclusive window for weekly checks: today plus the
// preceding six days.
const weekDays = 7

// Table holds the limit set applied to an account.
type Table struct {
	MessagesPerDay     int `json:"messages_per_day"`
	ConnectionsPerDay  int `json:"connection_requests_per_day"`
	ConnectionsPerWeek int `json:"connection_requests_per_week"`
}

// SafeTable returns the conservative limits recommended for every
// account.
func SafeTable() Table {
	return Table{
		MessagesPerDay:     40,
		ConnectionsPerDay:  15,
		ConnectionsPerWeek: 80,
	}
}

// TableForAccount returns the limit table for a LinkedIn account type.
// Unknown types fall back to the free-account table.
func TableForAccount(accountType string) Table {
	switch accountType {
	case "premium_account":
		return Table{MessagesPerDay: 120, ConnectionsPerDay: 25, ConnectionsPerWeek: 120}
	case "sales_navigator":
		return Table{MessagesPerDay: 200, ConnectionsPerDay: 35, ConnectionsPerWeek: 160}
	case "free_account":
		return SafeTable()
	}
	return SafeTable()
}

// LimitStatus is the derived classification of one counter. It is
// recomputed on every query and never stored.
type LimitStatus struct {
	Type       string `json:"type"`
	Current    int    `json:"current"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	Percentage int    `json:"percentage"`
	Status     Status `json:"status"`
	CanProceed bool   `json:"canProceed"`
	Message    string `json:"message"`
}

// CreateLimitStatus projects a counter onto its limit. CanProceed is
// strictly current < limit, independent of the warning banding.
func CreateLimitStatus(limitType string, current, limit int) LimitStatus {
	percentage := float64(current) / float64(limit) * 100
	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}

	status := StatusSafe
	if percentage >= criticalThreshold*100 {
		status = StatusCritical
	} else if percentage >= warningThreshold*100 {
		status = StatusWarning
	}

	return LimitStatus{
		Type:       limitType,
		Current:    current,
		Limit:      limit,
		Remaining:  remaining,
		Percentage: int(math.Round(percentage)),
		Status:     status,
		CanProceed: current < limit,
		Message:    statusMessage(limitType, status, current, limit, remaining),
	}
}

func statusMessage(limitType string, status Status, current, limit, remaining int) string {
	switch status {
	case StatusCritical:
		return fmt.Sprintf("⛔ %d/%d %s sent. You're at your limit!", current, limit, limitType)
	case StatusWarning:
		return fmt.Sprintf("⚠️ %d/%d %s sent. Slow down to avoid restrictions.", current, limit, limitType)
	default:
		return fmt.Sprintf("✅ %d/%d %s sent today. %d remaining.", current, limit, limitType, remaining)
	}
}

// Manager answers limit queries against the activity store.
type Manager struct {
	limits Table
	store  *store.Manager
	now    func() time.Time
}

// NewManager creates a limits manager with the safe table.
func NewManager(st *store.Manager) *Manager {
	return NewManagerWithTable(st, SafeTable())
}

// NewManagerWithTable creates a limits manager over a specific table.
func NewManagerWithTable(st *store.Manager, table Table) *Manager {
	return &Manager{limits: table, store: st, now: time.Now}
}

// Limits returns the active limit table.
func (m *Manager) Limits() Table {
	return m.limits
}

// CheckDailyMessageLimit classifies today's sent-message count.
func (m *Manager) CheckDailyMessageLimit() (LimitStatus, error) {
	today, err := m.todayActivity()
	if err != nil {
		return LimitStatus{}, err
	}
	return CreateLimitStatus("messages", today.MessagesSent, m.limits.MessagesPerDay), nil
}

// CheckDailyConnectionLimit classifies today's connection-request
// count.
func (m *Manager) CheckDailyConnectionLimit() (LimitStatus, error) {
	today, err := m.todayActivity()
	if err != nil {
		return LimitStatus{}, err
	}
	return CreateLimitStatus("daily_connections", today.ConnectionsSent, m.limits.ConnectionsPerDay), nil
}

// CheckWeeklyConnectionLimit sums connection requests over the
// trailing 7-day window (missing days count as zero) and classifies
// the total against the weekly limit.
func (m *Manager) CheckWeeklyConnectionLimit() (LimitStatus, error) {
	week, err := m.WeekActivity()
	if err != nil {
		return LimitStatus{}, err
	}

	total := 0
	for _, day := range week {
		total += day.ConnectionsSent
	}
	return CreateLimitStatus("connections", total, m.limits.ConnectionsPerWeek), nil
}

// WeekActivity returns the last seven day-records, today first.
func (m *Manager) WeekActivity() ([]store.DayActivity, error) {
	return m.store.ActivityWindow(weekDays)
}

// DashboardData aggregates every limit view for the UI.
type DashboardData struct {
	Limits                Table               `json:"limits"`
	MessageLimit          LimitStatus         `json:"messageLimit"`
	ConnectionLimitDaily  LimitStatus         `json:"connectionLimitDaily"`
	ConnectionLimitWeekly LimitStatus         `json:"connectionLimitWeekly"`
	WeekActivity          []store.DayActivity `json:"weekActivity"`
	SafeModeRecommended   bool                `json:"safeModeRecommended"`
}

// Dashboard runs all three checks plus the week sequence.
// SafeModeRecommended is set when the daily-message or the
// weekly-connection status leaves the safe band.
func (m *Manager) Dashboard() (DashboardData, error) {
	messageLimit, err := m.CheckDailyMessageLimit()
	if err != nil {
		return DashboardData{}, err
	}
	daily, err := m.CheckDailyConnectionLimit()
	if err != nil {
		return DashboardData{}, err
	}
	weekly, err := m.CheckWeeklyConnectionLimit()
	if err != nil {
		return DashboardData{}, err
	}
	week, err := m.WeekActivity()
	if err != nil {
		return DashboardData{}, err
	}

	return DashboardData{
		Limits:                m.limits,
		MessageLimit:          messageLimit,
		ConnectionLimitDaily:  daily,
		ConnectionLimitWeekly: weekly,
		WeekActivity:          week,
		SafeModeRecommended:   messageLimit.Status != StatusSafe || weekly.Status != StatusSafe,
	}, nil
}

func (m *Manager) todayActivity() (store.DayActivity, error) {
	return m.store.DailyActivity(m.now().Format("2006-01-02"))
}
