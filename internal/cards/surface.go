package cards

import "time"

// Surface is the modal container that shows the current page's views. It
// reports user-initiated dismissal back through Manager.NotifyUserRequestedDismiss.
type Surface interface {
	// Present replaces the displayed card with views.
	Present(views []View, animated bool)
	// Dismiss hides the modal container.
	Dismiss(animated bool)
	// SetCloseButtonVisible toggles the close affordance for the current activation.
	SetCloseButtonVisible(visible bool)
	// SetOutsideDismissEnabled toggles dismissal by outside interaction (esc).
	SetOutsideDismissEnabled(enabled bool)
	// ShowIndicator displays the activity indicator.
	ShowIndicator()
	// HideIndicator removes the activity indicator.
	HideIndicator()
}

// Scheduler runs fn after d on the same goroutine that drives the Manager.
type Scheduler interface {
	// After schedules fn to run once after d elapses.
	After(d time.Duration, fn func())
}

// Recorder receives one record per navigation event. Implementations must not
// call back into the Manager.
type Recorder interface {
	// Record stores an event of the given kind for the page with pageID.
	Record(kind, pageID string, data map[string]any)
}

// Event kinds passed to Recorder.Record.
const (
	EventPresent   = "present"
	EventPush      = "push"
	EventPop       = "pop"
	EventPopToRoot = "pop_to_root"
	EventDismiss   = "dismiss"
	EventRefused   = "refused"
	EventQueued    = "queued"
	EventDropped   = "dropped"
	EventIndicator = "indicator"
)
