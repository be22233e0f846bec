// Package sqlite keeps the owner's data on the device, in a single key/value table
// whose values are JSON documents: the item list, the card list and the balance.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/SscSPs/fintrack/internal/apperrors"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
)

// Document keys.
const (
	keyItems   = "itens"
	keyCards   = "cartoes"
	keyBalance = "saldo"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	owner      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (owner, key)
);`

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store is the key/value document store.
type Store struct {
	db *sql.DB
	// mu serializes read-modify-write cycles so concurrent writers do not lose updates.
	mu sync.Mutex
}

// New opens (creating if needed) the database at dbPath and ensures the schema.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// get decodes the document under key into dst. found is false when the key is absent,
// in which case dst is left untouched.
func get(ctx context.Context, q querier, owner, key string, dst any) (bool, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE owner = ? AND key = ?`, owner, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func put(ctx context.Context, q querier, owner, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO kv (owner, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		owner, key, string(raw), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// read loads a document outside of any write cycle.
func (s *Store) read(ctx context.Context, owner, key string, dst any) (bool, error) {
	return get(ctx, s.db, owner, key, dst)
}

// mutate loads the document under key into dst, lets fn change it and writes it back,
// all in one transaction. Nothing is written when fn fails.
func (s *Store) mutate(ctx context.Context, owner, key string, dst any, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := get(ctx, tx, owner, key, dst); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	if err := put(ctx, tx, owner, key, dst); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ItemRepo:    &ItemRepository{store: store},
		CardRepo:    &CardRepository{store: store},
		BalanceRepo: &BalanceRepository{store: store},
	}
}
