// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	revision atomic.Uint64
}

// Option configures a new SQLiteStore.
type Option func(*options)

type options struct {
	defaultCurrency string
}

// WithDefaultCurrency sets the currency written to settings when the database
// is created. It has no effect on an existing database.
func WithDefaultCurrency(code string) Option {
	return func(o *options) {
		o.defaultCurrency = code
	}
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories, runs migrations and seeds first-run
// data automatically.
func New(dbPath string, opts ...Option) (*SQLiteStore, error) {
	o := options{defaultCurrency: models.DefaultCurrency}
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := models.LookupCurrency(o.defaultCurrency); !ok {
		return nil, fmt.Errorf("unknown default currency: %q", o.defaultCurrency)
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seed(context.Background(), db, o.defaultCurrency); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// seed writes default settings and the "self" family member the first time
// the database is opened. A present settings row means it already ran.
func seed(ctx context.Context, db *sql.DB, currency string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM settings WHERE id = 1").Scan(&exists)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check settings: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO settings (id, currency) VALUES (1, ?)", currency); err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO family_members (id, name, created_at) VALUES (?, ?, ?)",
		models.SelfMemberID, "Self", time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("failed to insert self member: %w", err)
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Revision returns the document collection revision.
func (s *SQLiteStore) Revision() uint64 {
	return s.revision.Load()
}

func (s *SQLiteStore) bump() {
	s.revision.Add(1)
}

// nullString stores empty strings as NULL so absent metadata stays absent.
func nullString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
