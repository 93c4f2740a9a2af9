package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// testStore creates a temporary history store and registers cleanup.
func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func run(deck string, outcome Outcome, ended time.Time) Run {
	return Run{
		Deck:      deck,
		Session:   "s-" + deck,
		Outcome:   outcome,
		LastPage:  "done",
		PagesSeen: 3,
		StartedAt: ended.Add(-time.Minute),
		EndedAt:   ended,
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("enables WAL mode", func(t *testing.T) {
		t.Parallel()
		s := testStore(t)
		var mode string
		if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
			t.Fatalf("query journal_mode: %v", err)
		}
		if mode != "wal" {
			t.Errorf("journal_mode = %q, want %q", mode, "wal")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a", "b", "history.db")
		s, err := Open(context.Background(), path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		s.Close()
	})

	t.Run("reopening keeps existing runs", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "history.db")

		s1, err := Open(ctx, path)
		if err != nil {
			t.Fatalf("first open: %v", err)
		}
		if _, err := s1.Record(ctx, run("tour", OutcomeCompleted, time.Now())); err != nil {
			t.Fatalf("Record: %v", err)
		}
		s1.Close()

		s2, err := Open(ctx, path)
		if err != nil {
			t.Fatalf("second open: %v", err)
		}
		defer s2.Close()
		runs, err := s2.List(ctx, 0)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(runs) != 1 {
			t.Errorf("len(runs) = %d, want 1", len(runs))
		}
	})
}

func TestRecordAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, deck := range []string{"a", "b", "c"} {
		if _, err := s.Record(ctx, run(deck, OutcomeDismissed, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Record(%s): %v", deck, err)
		}
	}

	runs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Deck != "c" || runs[1].Deck != "b" {
		t.Errorf("order = %s, %s; want c, b", runs[0].Deck, runs[1].Deck)
	}
	got := runs[0]
	if got.Outcome != OutcomeDismissed || got.PagesSeen != 3 || got.LastPage != "done" {
		t.Errorf("run = %+v, fields not round-tripped", got)
	}
	if got.Duration() != time.Minute {
		t.Errorf("Duration() = %v, want 1m", got.Duration())
	}
}

func TestRecordRequiresDeck(t *testing.T) {
	t.Parallel()
	s := testStore(t)
	if _, err := s.Record(context.Background(), Run{Outcome: OutcomeCompleted}); !errors.Is(err, ErrNoDeckName) {
		t.Errorf("Record error = %v, want ErrNoDeckName", err)
	}
}

func TestCompleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)
	now := time.Now()

	if _, err := s.Record(ctx, run("tour", OutcomeDismissed, now)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	done, err := s.Completed(ctx, "tour")
	if err != nil {
		t.Fatalf("Completed: %v", err)
	}
	if done {
		t.Error("a dismissed run should not count as completed")
	}

	if _, err := s.Record(ctx, run("tour", OutcomeCompleted, now)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	done, err = s.Completed(ctx, "tour")
	if err != nil {
		t.Fatalf("Completed: %v", err)
	}
	if !done {
		t.Error("tour should be completed")
	}

	other, err := s.Completed(ctx, "other")
	if err != nil || other {
		t.Errorf("Completed(other) = %v, %v; want false, nil", other, err)
	}
}
