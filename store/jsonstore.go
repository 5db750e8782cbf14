package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore is a file-backed KV: the whole keyspace lives in one JSON
// document rewritten on every mutation.
type JSONStore struct {
	path string
	data map[string]json.RawMessage
}

// OpenJSON loads a JSON store from path, starting empty if the file
// does not exist yet.
func OpenJSON(path string) (*JSONStore, error) {
	s := &JSONStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}

	return s, nil
}

// Get returns the stored values for the requested keys; missing keys
// are absent from the result.
func (s *JSONStore) Get(keys ...string) (map[string]json.RawMessage, error) {
	result := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if value, ok := s.data[key]; ok {
			result[key] = value
		}
	}
	return result, nil
}

// Set marshals and stores each item, then rewrites the backing file.
func (s *JSONStore) Set(items map[string]any) error {
	for key, value := range items {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", key, err)
		}
		s.data[key] = raw
	}
	return s.save()
}

// Remove deletes keys and rewrites the backing file.
func (s *JSONStore) Remove(keys ...string) error {
	for _, key := range keys {
		delete(s.data, key)
	}
	return s.save()
}

// Clear drops the entire keyspace.
func (s *JSONStore) Clear() error {
	s.data = make(map[string]json.RawMessage)
	return s.save()
}

// Close is a no-op; every mutation already persisted.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}
