// Package state persists named client-state blobs (auth-storage,
// cart-storage, order-storage) across restarts, the way a browser keeps
// them in localStorage. One sqlite table, JSON values.
package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	AuthKey  = "auth-storage"
	CartKey  = "cart-storage"
	OrderKey = "order-storage"
)

type Store struct {
	db *sqlx.DB
}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS client_state(
  name TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// Put stores v under name, replacing any prior value.
func (s *Store) Put(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state put %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO client_state(name, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, name, string(b))
	return err
}

// Get loads the value stored under name into v. Returns false when nothing
// is stored, so callers can fall back to zero state without error handling.
func (s *Store) Get(name string, v any) (bool, error) {
	var raw string
	err := s.db.Get(&raw, `SELECT value FROM client_state WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("state get %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM client_state WHERE name = ?`, name)
	return err
}

func (s *Store) Close() error { return s.db.Close() }
