package store

import "time"

// Template is a reusable message template with {{variable}}
// placeholders. Identity is the opaque ID; usage and reply counters
// feed the analytics views.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Description string     `json:"description,omitempty"`
	UsageCount  int        `json:"usageCount"`
	ReplyCount  int        `json:"replyCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastUsed    *time.Time `json:"lastUsed,omitempty"`
}

// Message is one entry in the sent-message history.
type Message struct {
	ID                  string     `json:"id"`
	RecipientName       string     `json:"recipientName,omitempty"`
	RecipientProfileURL string     `json:"recipientProfileUrl,omitempty"`
	MessageContent      string     `json:"messageContent"`
	TemplateID          string     `json:"templateId,omitempty"`
	TemplateName        string     `json:"templateName,omitempty"`
	SentVia             string     `json:"sentVia,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	SentAt              time.Time  `json:"sentAt"`
	Replied             bool       `json:"replied"`
	RepliedAt           *time.Time `json:"repliedAt,omitempty"`
}

// Reminder schedules a follow-up with a connection.
type Reminder struct {
	ID                  string     `json:"id"`
	RecipientName       string     `json:"recipientName"`
	RecipientProfileURL string     `json:"recipientProfileUrl,omitempty"`
	Note                string     `json:"note,omitempty"`
	ScheduledDate       string     `json:"scheduledDate"` // YYYY-MM-DD
	Completed           bool       `json:"completed"`
	CreatedAt           time.Time  `json:"createdAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
}

// DayActivity holds the per-calendar-day counters used for soft
// rate-limit accounting. A record exists only for days that saw at
// least one tracked action.
type DayActivity struct {
	Date            string `json:"date"`
	MessagesSent    int    `json:"messagesSent"`
	ConnectionsSent int    `json:"connectionsSent"`
	ProfileViews    int    `json:"profileViews"`
}

// Counter names a DayActivity field for incrementing.
type Counter string

const (
	CounterMessages    Counter = "messagesSent"
	CounterConnections Counter = "connectionsSent"
	CounterProfileView Counter = "profileViews"
)

// AIUsage tracks per-day AI calls, split by kind.
type AIUsage struct {
	Generations int `json:"generations"`
	Rewrites    int `json:"rewrites"`
}

// ExportBundle is the portable snapshot produced by Export.
type ExportBundle struct {
	Templates  []Template `json:"templates"`
	Messages   []Message  `json:"messages"`
	Reminders  []Reminder `json:"reminders"`
	ExportedAt time.Time  `json:"exportedAt"`
}
