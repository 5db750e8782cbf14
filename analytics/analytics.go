// Package analytics aggregates reply-rate statistics over the message
// history.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Nehilsa2/linnectflow/store"
)

// TemplateStats is the performance of one template within a date
// range.
type TemplateStats struct {
	TemplateID string `json:"templateId"`
	Name       string `json:"name"`
	Sent       int    `json:"sent"`
	Replied    int    `json:"replied"`
	ReplyRate  int    `json:"replyRate"` // rounded percent
}

// Report is the aggregate view over a trailing date range.
type Report struct {
	RangeDays    int             `json:"rangeDays"`
	TotalSent    int             `json:"totalSent"`
	TotalReplied int             `json:"totalReplied"`
	ReplyRate    int             `json:"replyRate"` // rounded percent
	Templates    []TemplateStats `json:"templateStats"`
}

// Analyze computes reply rates over messages sent within the trailing
// rangeDays, with per-template breakdowns sorted by reply rate
// descending.
func Analyze(messages []store.Message, templates []store.Template, rangeDays int, now time.Time) Report {
	if rangeDays <= 0 {
		rangeDays = 30
	}
	cutoff := now.AddDate(0, 0, -rangeDays)

	var recent []store.Message
	for _, msg := range messages {
		if !msg.SentAt.Before(cutoff) {
			recent = append(recent, msg)
		}
	}

	totalReplied := 0
	for _, msg := range recent {
		if msg.Replied {
			totalReplied++
		}
	}

	stats := make([]TemplateStats, 0, len(templates))
	for _, t := range templates {
		sent, replied := 0, 0
		for _, msg := range recent {
			if msg.TemplateID != t.ID {
				continue
			}
			sent++
			if msg.Replied {
				replied++
			}
		}
		stats = append(stats, TemplateStats{
			TemplateID: t.ID,
			Name:       t.Name,
			Sent:       sent,
			Replied:    replied,
			ReplyRate:  percent(replied, sent),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ReplyRate > stats[j].ReplyRate
	})

	return Report{
		RangeDays:    rangeDays,
		TotalSent:    len(recent),
		TotalReplied: totalReplied,
		ReplyRate:    percent(totalReplied, len(recent)),
		Templates:    stats,
	}
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
