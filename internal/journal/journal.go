// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal records dispatched operations in a local SQLite database
// and reads them back for --history. It stores what aurman did, not which
// packages are installed.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/aurman/pkg/types"
)

const defaultHistoryLimit = 20

// Store manages the journal database.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens or creates the journal database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.JournalConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("journal path is not configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	s := &Store{db: db, limit: limit}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS operations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			time TEXT NOT NULL,
			operation TEXT NOT NULL,
			packages TEXT NOT NULL,
			outcome TEXT NOT NULL,
			detail TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_operations_time ON operations(time)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. A missing ID or time is filled in.
func (s *Store) Record(ctx context.Context, e types.JournalEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	if e.Packages == nil {
		e.Packages = []string{}
	}
	packages, err := json.Marshal(e.Packages)
	if err != nil {
		return fmt.Errorf("encoding packages: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO operations (id, time, operation, packages, outcome, detail) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Time.UTC().Format(time.RFC3339Nano), e.Operation, string(packages), string(e.Outcome), e.Detail,
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", e.Operation, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of zero or
// less uses the configured history limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	if limit <= 0 {
		limit = s.limit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, time, operation, packages, outcome, detail FROM operations ORDER BY rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []types.JournalEntry
	for rows.Next() {
		var (
			e                 types.JournalEntry
			ts, packages, out string
			detail            sql.NullString
		)
		if err := rows.Scan(&e.ID, &ts, &e.Operation, &packages, &out, &detail); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Time, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing time of %s: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(packages), &e.Packages); err != nil {
			return nil, fmt.Errorf("decoding packages of %s: %w", e.ID, err)
		}
		e.Outcome = types.Outcome(out)
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
