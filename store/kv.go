// Package store persists templates, message history, reminders and
// activity counters through a small key-value contract with
// interchangeable JSON-file and SQLite backends.
package store

import "encoding/json"

// Storage keys. Each key owns one whole JSON document; the store has
// no partial-update primitive, so every write rewrites the full value.
const (
	keyTemplates     = "templates"
	keyMessages      = "messages"
	keyReminders     = "reminders"
	keyDailyActivity = "dailyActivity"
	keyAIUsage       = "aiUsage"
	keyCachedProfile = "cachedProfile"
	keyCachedTime    = "cachedProfileTime"
)

// KV is the minimal key-value contract the store builds on. Values are
// arbitrary JSON-serializable records; missing keys are simply absent
// from Get results. There are no transactions and no writes smaller
// than a full Set of a key.
type KV interface {
	Get(keys ...string) (map[string]json.RawMessage, error)
	Set(items map[string]any) error
	Remove(keys ...string) error
	Clear() error
	Close() error
}

// getValue reads one key from a KV and decodes it into out. A missing
// key leaves out untouched and returns false.
func getValue(kv KV, key string, out any) (bool, error) {
	values, err := kv.Get(key)
	if err != nil {
		return false, err
	}

	raw, ok := values[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// setValue writes one key.
func setValue(kv KV, key string, value any) error {
	return kv.Set(map[string]any{key: value})
}
