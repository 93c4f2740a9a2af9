package cards

// State is the Manager's presentation state.
type State int

const (
	// StateIdle means nothing is on screen.
	StateIdle State = iota
	// StatePresenting is held while the root page is being activated.
	StatePresenting
	// StatePresented means the current page is on screen and settled.
	StatePresented
	// StateTransitioning is held while one page replaces another.
	StateTransitioning
	// StateDismissing is held while the flow is being torn down.
	StateDismissing
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StatePresented:
		return "presented"
	case StateTransitioning:
		return "transitioning"
	case StateDismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// busy reports whether a transition is in flight.
func (s State) busy() bool {
	return s == StatePresenting || s == StateTransitioning || s == StateDismissing
}

// hasPage reports whether indicator and chrome calls are valid in s. The
// root's display hooks run under StatePresenting, so it counts.
func (s State) hasPage() bool {
	return s == StatePresenting || s == StatePresented || s == StateTransitioning
}
