// Package history keeps an audit of finished deck runs in a local SQLite
// database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Outcome is how a run ended.
type Outcome string

const (
	// OutcomeCompleted means the flow was dismissed from its last page.
	OutcomeCompleted Outcome = "completed"
	// OutcomeDismissed means the flow was left before its last page.
	OutcomeDismissed Outcome = "dismissed"
)

// ErrNoDeckName is returned by Record when the run has no deck name.
var ErrNoDeckName = errors.New("run has no deck name")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    deck        TEXT NOT NULL,
    session     TEXT NOT NULL DEFAULT '',
    outcome     TEXT NOT NULL,
    last_page   TEXT NOT NULL DEFAULT '',
    pages_seen  INTEGER NOT NULL DEFAULT 0,
    started_at  TEXT NOT NULL,
    ended_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS runs_deck ON runs (deck, outcome);
`

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one finished pass through a deck.
type Run struct {
	ID        int64
	Deck      string
	Session   string
	Outcome   Outcome
	LastPage  string
	PagesSeen int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the run lasted.
func (r Run) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Store is a run history backed by SQLite in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path, creating its parent
// directory when needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// SQLite has a single writer; one pooled connection keeps the PRAGMAs
	// below in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a finished run and returns its row id.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	if r.Deck == "" {
		return 0, ErrNoDeckName
	}
	const q = `
		INSERT INTO runs (deck, session, outcome, last_page, pages_seen, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		r.Deck, r.Session, string(r.Outcome), r.LastPage, r.PagesSeen,
		r.StartedAt.UTC().Format(timeLayout), r.EndedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("history: record run of %q: %w", r.Deck, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history: record run of %q: %w", r.Deck, err)
	}
	return id, nil
}

// Completed reports whether any run of deck finished on its last page.
func (s *Store) Completed(ctx context.Context, deck string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM runs WHERE deck = ? AND outcome = ?",
		deck, string(OutcomeCompleted)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("history: completed %q: %w", deck, err)
	}
	return n > 0, nil
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := `SELECT id, deck, session, outcome, last_page, pages_seen, started_at, ended_at
		FROM runs ORDER BY ended_at DESC, id DESC`
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome, started, ended string
		if err := rows.Scan(&r.ID, &r.Deck, &r.Session, &outcome, &r.LastPage,
			&r.PagesSeen, &started, &ended); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.Outcome = Outcome(outcome)
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("history: parse started_at: %w", err)
		}
		if r.EndedAt, err = time.Parse(timeLayout, ended); err != nil {
			return nil, fmt.Errorf("history: parse ended_at: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	return runs, nil
}
