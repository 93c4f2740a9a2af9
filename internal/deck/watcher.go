package deck

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a deck file must be quiet before a reload is sent.
const debounce = 150 * time.Millisecond

// Reload is sent after the watched deck file changed. Exactly one of Flow
// and Err is set: Err holds the load, parse or validation failure.
type Reload struct {
	Flow *Flow
	Deck *Deck
	Err  error
}

// Watcher monitors one deck file for changes using fsnotify. The directory
// is watched rather than the file so editors that replace the file on save
// are handled.
type Watcher struct {
	Path    string
	Changes <-chan Reload // Read-only external channel

	changes chan Reload // Internal write channel
	quit    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the deck file at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Reload, 4)
	return &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	close(w.quit)
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.Path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) emit() {
	select {
	case w.changes <- w.reload():
	case <-w.quit:
	}
}

func (w *Watcher) reload() Reload {
	d, err := Load(w.Path)
	if err != nil {
		return Reload{Err: err}
	}
	flow, err := Build(d)
	if err != nil {
		return Reload{Deck: d, Err: err}
	}
	return Reload{Flow: flow, Deck: d}
}
