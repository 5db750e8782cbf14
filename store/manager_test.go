package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestManager returns a manager over a JSON file in a temp dir with
// a frozen clock the test can advance.
func newTestManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()

	kv, err := OpenJSON(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	m := NewManager(kv)
	t.Cleanup(func() { m.Close() })

	clock := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	return m, &clock
}
