// Package store persists the client's credential material in a local sqlite
// database. It is the durability backend behind the session manager, which
// is the sole owner of the access-token and user-email keys; workflow
// scratch keys like the remembered reset email are written by their own
// flows.
//
// The table is a plain key/value map. Values are stored in clear text, the
// same trust model the hosted front end uses for browser storage: anything
// running as this OS user can read them.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/luga-ai/luga-cli/internal/store/migrations"

	_ "modernc.org/sqlite"
)

// Well-known credential keys.
const (
	KeyAccessToken = "access_token"
	KeyUserEmail   = "user_email"

	// KeyResetEmail holds the email entered on the forgot-password step so
	// the reset step can submit it; cleared once the reset completes.
	KeyResetEmail = "reset_email"
)

// Store is a sqlite-backed key/value credential store. Single-key reads and
// writes are atomic; there are no multi-key transactions because no caller
// performs a read-modify-write cycle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the credential database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// New wraps an already-open database. Used by tests and by callers that
// manage the connection themselves.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or "" when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential[%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", key, err)
	}
	return nil
}

// Clear wipes every stored key.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
