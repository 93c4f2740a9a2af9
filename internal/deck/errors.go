package deck

import "errors"

// Sentinel errors for deck loading and validation.
var (
	// ErrNoDeck indicates the deck file does not exist.
	ErrNoDeck = errors.New("deck file not found")
	// ErrParse indicates the deck is not valid TOML or has unknown keys.
	ErrParse = errors.New("deck parse error")
	// ErrNoPages indicates a deck without any [[page]] tables.
	ErrNoPages = errors.New("deck has no pages")
	// ErrMissingField indicates a required field (e.g. id, title) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateID indicates two or more pages share the same ID.
	ErrDuplicateID = errors.New("duplicate page ID")
	// ErrUnknownPage indicates a reference to a page ID that does not exist.
	ErrUnknownPage = errors.New("unknown page ID")
	// ErrNextCycle indicates the next links form a loop.
	ErrNextCycle = errors.New("next links form a cycle")
	// ErrUnknownVerb indicates an on_action or on_alternative value that is not a verb.
	ErrUnknownVerb = errors.New("unknown action verb")
	// ErrIndicatorWithoutStart indicates indicator_seconds on a page that does not start with the indicator.
	ErrIndicatorWithoutStart = errors.New("indicator_seconds requires starts_with_indicator")
	// ErrInvalid indicates Build was given a deck that fails validation.
	ErrInvalid = errors.New("deck is invalid")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is empty.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatDuplicateID indicates two or more pages share the same ID.
	ValCatDuplicateID ValidationCategory = "duplicate_id"
	// ValCatUnknownTarget indicates next, root or push:<id> names a non-existent page.
	ValCatUnknownTarget ValidationCategory = "unknown_target"
	// ValCatCycle indicates the next links loop back on themselves.
	ValCatCycle ValidationCategory = "cycle"
	// ValCatUnknownVerb indicates an unrecognized action verb.
	ValCatUnknownVerb ValidationCategory = "unknown_verb"
	// ValCatBoundsViolation indicates a numeric field is out of valid range or unusable.
	ValCatBoundsViolation ValidationCategory = "bounds_violation"
	// ValCatAppearance indicates an invalid [appearance] table.
	ValCatAppearance ValidationCategory = "appearance"
)

// ValidationError records a validation problem with source context.
type ValidationError struct {
	Category   ValidationCategory // Machine-readable category for programmatic handling
	PageID     string
	SourceFile string
	Field      string
	Err        error
	// Suggestion is the closest existing page ID for an unknown reference.
	Suggestion string
}

// Error returns a human-readable string including source file and page context.
func (e *ValidationError) Error() string {
	msg := e.SourceFile + ": "
	if e.PageID != "" {
		msg += "page " + e.PageID + ": "
	}
	msg += e.Err.Error()
	if e.Suggestion != "" {
		msg += ` (did you mean "` + e.Suggestion + `"?)`
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
