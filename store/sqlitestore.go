package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultDBPath is where the SQLite backend lives when no path is
// configured.
const DefaultDBPath = "linnectflow.db"

// SQLiteStore is a KV backed by a single key/value table. It keeps the
// same whole-value write semantics as the JSON backend.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens (or creates) the SQLite-backed store.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}

	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize table: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Get returns the stored values for the requested keys.
func (s *SQLiteStore) Get(keys ...string) (map[string]json.RawMessage, error) {
	result := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	rows, err := s.db.Query(
		fmt.Sprintf("SELECT key, value FROM kv WHERE key IN (%s)", placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = json.RawMessage(value)
	}

	return result, rows.Err()
}

// Set upserts each item inside one transaction.
func (s *SQLiteStore) Set(items map[string]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for key, value := range items {
		raw, err := json.Marshal(value)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode %q: %w", key, err)
		}

		if _, err := tx.Exec(`
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, string(raw)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save %q: %w", key, err)
		}
	}

	return tx.Commit()
}

// Remove deletes keys.
func (s *SQLiteStore) Remove(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	_, err := s.db.Exec(
		fmt.Sprintf("DELETE FROM kv WHERE key IN (%s)", placeholders), args...)
	return err
}

// Clear drops every key.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM kv")
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
