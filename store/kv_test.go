package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends under test share the KV contract, so one suite drives both.
func TestKVBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) KV{
		"json": func(t *testing.T) KV {
			kv, err := OpenJSON(filepath.Join(t.TempDir(), "store.json"))
			require.NoError(t, err)
			return kv
		},
		"sqlite": func(t *testing.T) KV {
			kv, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
			require.NoError(t, err)
			return kv
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			kv := open(t)
			t.Cleanup(func() { kv.Close() })

			require.NoError(t, kv.Set(map[string]any{
				"greeting": "hello",
				"count":    3,
			}))

			got, err := kv.Get("greeting", "count", "missing")
			require.NoError(t, err)
			assert.JSONEq(t, `"hello"`, string(got["greeting"]))
			assert.JSONEq(t, `3`, string(got["count"]))
			_, ok := got["missing"]
			assert.False(t, ok, "missing keys are absent, not empty")

			require.NoError(t, kv.Set(map[string]any{"greeting": "hi"}))
			got, err = kv.Get("greeting")
			require.NoError(t, err)
			assert.JSONEq(t, `"hi"`, string(got["greeting"]))

			require.NoError(t, kv.Remove("greeting"))
			got, err = kv.Get("greeting")
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, kv.Clear())
			got, err = kv.Get("count")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	kv, err := OpenJSON(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(map[string]any{"key": "value"}))
	require.NoError(t, kv.Close())

	reopened, err := OpenJSON(path)
	require.NoError(t, err)
	got, err := reopened.Get("key")
	require.NoError(t, err)
	assert.JSONEq(t, `"value"`, string(got["key"]))
}

func TestOpenJSONRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := OpenJSON(path)
	assert.Error(t, err)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(map[string]any{"key": "value"}))
	require.NoError(t, kv.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("key")
	require.NoError(t, err)
	assert.JSONEq(t, `"value"`, string(got["key"]))
}
