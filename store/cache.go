package store

import (
	"time"

	"github.com/Nehilsa2/linnectflow/profile"
)

// profileCacheTTL is how long a scraped profile stays usable without a
// fresh extraction.
const profileCacheTTL = 5 * time.Minute

// CacheProfile stores the most recently scraped profile.
func (m *Manager) CacheProfile(p profile.ProfileData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.kv.Set(map[string]any{
		keyCachedProfile: p,
		keyCachedTime:    m.now().UnixMilli(),
	})
}

// CachedProfile returns the cached profile, or nil when none is stored
// or the cache has expired.
func (m *Manager) CachedProfile() (*profile.ProfileData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cachedAt int64
	ok, err := getValue(m.kv, keyCachedTime, &cachedAt)
	if err != nil || !ok {
		return nil, err
	}

	if m.now().UnixMilli()-cachedAt > profileCacheTTL.Milliseconds() {
		return nil, nil
	}

	var p profile.ProfileData
	ok, err = getValue(m.kv, keyCachedProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}
