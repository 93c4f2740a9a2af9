// Package telemetry provides a JSONL event stream for recording card flow
// navigation. Every presentation, transition, refusal and dismissal is
// recorded as a structured JSON event, making runs auditable and replayable.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event. The navigation kinds
// match the event names the card manager reports.
const (
	KindPresent    = "present"
	KindPush       = "push"
	KindPop        = "pop"
	KindPopToRoot  = "pop_to_root"
	KindDismiss    = "dismiss"
	KindRefused    = "refused"
	KindQueued     = "queued"
	KindDropped    = "dropped"
	KindIndicator  = "indicator"
	KindDeckReload = "deck_reload"
	KindRunDone    = "run_done"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, and optional context identifiers (session, page) along with
// arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Page      string    `json:"page,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Recorder stamps navigation records with a session id and writes them to an
// Emitter. It satisfies the card manager's recorder contract. Encoding
// failures are dropped; telemetry never interrupts a flow.
type Recorder struct {
	emitter *Emitter
	session string
	now     func() time.Time
}

// NewRecorder returns a Recorder with a fresh session id. A nil emitter
// yields a recorder that only tracks the session id.
func NewRecorder(e *Emitter) *Recorder {
	return &Recorder{emitter: e, session: uuid.NewString(), now: time.Now}
}

// Session returns the id every event of this recorder carries.
func (r *Recorder) Session() string { return r.session }

// Record emits one event.
func (r *Recorder) Record(kind, pageID string, data map[string]any) {
	evt := Event{
		Timestamp: r.now().UTC(),
		Kind:      kind,
		Session:   r.session,
		Page:      pageID,
	}
	if len(data) > 0 {
		evt.Data = data
	}
	_ = r.emitter.Emit(evt)
}
