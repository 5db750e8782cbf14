package limits

import (
	"time"

	"github.com/Nehilsa2/linnectflow/store"
)

// TierPolicy is the feature-gating policy for an installation. The
// default build is unlimited; metered exists for deployments that cap
// AI usage and template count.
type TierPolicy string

const (
	TierUnlimited TierPolicy = "unlimited"
	TierMetered   TierPolicy = "metered"
)

// Tier applies a policy to feature usage. Counters are kept in the
// store even under the unlimited policy so usage stays visible.
type Tier struct {
	Policy           TierPolicy
	MaxTemplates     int
	DailyGenerations int
	DailyRewrites    int

	store *store.Manager
	now   func() time.Time
}

// NewTier creates the default unlimited tier.
func NewTier(st *store.Manager) *Tier {
	return &Tier{Policy: TierUnlimited, store: st, now: time.Now}
}

// NewMeteredTier creates a metered tier with explicit caps.
func NewMeteredTier(st *store.Manager, maxTemplates, dailyGenerations, dailyRewrites int) *Tier {
	return &Tier{
		Policy:           TierMetered,
		MaxTemplates:     maxTemplates,
		DailyGenerations: dailyGenerations,
		DailyRewrites:    dailyRewrites,
		store:            st,
		now:              time.Now,
	}
}

// UsageCheck reports whether a gated feature may be used.
type UsageCheck struct {
	Allowed   bool `json:"allowed"`
	Unlimited bool `json:"unlimited"`
	Current   int  `json:"current"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
}

func unlimitedCheck(current int) UsageCheck {
	return UsageCheck{Allowed: true, Unlimited: true, Current: current}
}

func meteredCheck(current, limit int) UsageCheck {
	remaining := limit - current
	if remaining < 0 {
		remaining = 0
	}
	return UsageCheck{
		Allowed:   current < limit,
		Current:   current,
		Limit:     limit,
		Remaining: remaining,
	}
}

// CheckTemplateLimit gates template creation on the current count.
func (t *Tier) CheckTemplateLimit(current int) UsageCheck {
	if t.Policy == TierUnlimited {
		return unlimitedCheck(current)
	}
	return meteredCheck(current, t.MaxTemplates)
}

// CheckGenerationLimit gates AI message generation on today's usage.
func (t *Tier) CheckGenerationLimit() (UsageCheck, error) {
	usage, err := t.todayUsage()
	if err != nil {
		return UsageCheck{}, err
	}
	if t.Policy == TierUnlimited {
		return unlimitedCheck(usage.Generations), nil
	}
	return meteredCheck(usage.Generations, t.DailyGenerations), nil
}

// CheckRewriteLimit gates AI message rewriting on today's usage.
func (t *Tier) CheckRewriteLimit() (UsageCheck, error) {
	usage, err := t.todayUsage()
	if err != nil {
		return UsageCheck{}, err
	}
	if t.Policy == TierUnlimited {
		return unlimitedCheck(usage.Rewrites), nil
	}
	return meteredCheck(usage.Rewrites, t.DailyRewrites), nil
}

// RecordAIUsage bumps today's counter for an AI call kind
// ("generations" or "rewrites").
func (t *Tier) RecordAIUsage(kind string) error {
	return t.store.IncrementAIUsage(kind)
}

func (t *Tier) todayUsage() (store.AIUsage, error) {
	return t.store.AIUsageFor(t.now().Format("2006-01-02"))
}
