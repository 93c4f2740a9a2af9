package cards

import "errors"

// Policy refusals. Operations returning one of these leave the Manager state
// unchanged.
var (
	// ErrNotDismissable indicates the current page does not allow dismissal.
	ErrNotDismissable = errors.New("current page is not dismissable")
	// ErrNoNextPage indicates DisplayNext was called on a page without a next link.
	ErrNoNextPage = errors.New("current page has no next page")
	// ErrEmptyBackStack indicates Pop was called while the root page is current.
	ErrEmptyBackStack = errors.New("back-stack is empty")
	// ErrNotPresented indicates an operation that needs a presented page ran while idle.
	ErrNotPresented = errors.New("no page is presented")
	// ErrAlreadyPresented indicates Present was called while a flow is already on screen.
	ErrAlreadyPresented = errors.New("a page is already presented")
	// ErrQueued indicates the request arrived during a transition and was deferred
	// until the transition completes.
	ErrQueued = errors.New("transition in flight; request queued")
)

// Contract violations. These are panic payloads (wrapped with page context)
// except ErrCycle, which Chain and Link return.
var (
	// ErrNoContent indicates a page was activated without a ContentBuilder.
	ErrNoContent = errors.New("page has no content builder")
	// ErrNilPage indicates a nil page was handed to the Manager.
	ErrNilPage = errors.New("nil page")
	// ErrCycle indicates a forward link would make the page chain cyclic.
	ErrCycle = errors.New("page chain contains a cycle")
)
