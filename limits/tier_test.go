package limits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimitedTier(t *testing.T) {
	st := newTestStore(t)
	tier := NewTier(st)

	check := tier.CheckTemplateLimit(500)
	assert.True(t, check.Allowed)
	assert.True(t, check.Unlimited)
	assert.Equal(t, 500, check.Current)

	gen, err := tier.CheckGenerationLimit()
	require.NoError(t, err)
	assert.True(t, gen.Allowed)
	assert.True(t, gen.Unlimited)
}

func TestMeteredTier(t *testing.T) {
	st := newTestStore(t)
	tier := NewMeteredTier(st, 5, 10, 5)

	t.Run("template cap", func(t *testing.T) {
		assert.True(t, tier.CheckTemplateLimit(4).Allowed)

		check := tier.CheckTemplateLimit(5)
		assert.False(t, check.Allowed)
		assert.Equal(t, 0, check.Remaining)
	})

	t.Run("generation cap counts recorded usage", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			require.NoError(t, tier.RecordAIUsage("generations"))
		}

		check, err := tier.CheckGenerationLimit()
		require.NoError(t, err)
		assert.False(t, check.Allowed)
		assert.Equal(t, 10, check.Current)

		rewrites, err := tier.CheckRewriteLimit()
		require.NoError(t, err)
		assert.True(t, rewrites.Allowed, "rewrites are tracked separately")
		assert.Equal(t, 0, rewrites.Current)
	})
}

func TestTierUsesLocalDate(t *testing.T) {
	st := newTestStore(t)
	tier := NewMeteredTier(st, 5, 1, 1)
	require.NoError(t, tier.RecordAIUsage("generations"))

	// Usage recorded today should not count against a later date.
	tier.now = func() time.Time { return time.Now().AddDate(0, 0, 1) }

	check, err := tier.CheckGenerationLimit()
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 0, check.Current)
}
