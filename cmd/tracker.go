package cmd

import (
	"time"

	"github.com/papapumpkin/bulletin/internal/cards"
	"github.com/papapumpkin/bulletin/internal/history"
)

// runTracker watches manager events on their way to telemetry and keeps
// what the run history needs. A present starts a new run, so a hot reload
// restarts the count. It is only touched from the program goroutine.
type runTracker struct {
	next cards.Recorder
	now  func() time.Time

	deck    string
	session string
	started time.Time
	seen    map[string]bool
	last    string
	ended   bool
	atEnd   bool
	endedAt time.Time
}

func newRunTracker(deck, session string, next cards.Recorder) *runTracker {
	return &runTracker{
		next:    next,
		now:     time.Now,
		deck:    deck,
		session: session,
		seen:    make(map[string]bool),
	}
}

// Record implements cards.Recorder.
func (t *runTracker) Record(kind, pageID string, data map[string]any) {
	switch kind {
	case cards.EventPresent:
		t.started = t.now()
		clear(t.seen)
		t.ended, t.atEnd = false, false
	case cards.EventDismiss:
		t.ended = true
		t.endedAt = t.now()
		t.atEnd, _ = data["at_end"].(bool)
	}
	if pageID != "" {
		t.seen[pageID] = true
		t.last = pageID
	}
	if t.next != nil {
		t.next.Record(kind, pageID, data)
	}
}

// Run returns the finished run, or false when nothing was presented.
func (t *runTracker) Run() (history.Run, bool) {
	if t.started.IsZero() {
		return history.Run{}, false
	}
	r := history.Run{
		Deck:      t.deck,
		Session:   t.session,
		Outcome:   history.OutcomeDismissed,
		LastPage:  t.last,
		PagesSeen: len(t.seen),
		StartedAt: t.started,
		EndedAt:   t.endedAt,
	}
	if !t.ended {
		r.EndedAt = t.now()
	}
	if t.ended && t.atEnd {
		r.Outcome = history.OutcomeCompleted
	}
	return r, true
}
