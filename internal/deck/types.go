// Package deck loads card flows from TOML files, validates them and builds
// linked cards.Page values whose buttons drive the navigation manager.
package deck

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/bulletin/internal/appearance"
)

// Deck is a parsed deck file.
type Deck struct {
	Meta       Meta              `toml:"deck"`
	Appearance appearance.Config `toml:"appearance"`
	Pages      []PageSpec        `toml:"page"`

	// SourceFile is the base name of the file the deck was read from.
	SourceFile string `toml:"-"`
}

// Meta is the [deck] table.
type Meta struct {
	Name string `toml:"name"`
	// Root is the id of the first page; empty means the first [[page]].
	Root string `toml:"root"`
}

// PageSpec is one [[page]] table.
type PageSpec struct {
	ID               string `toml:"id"`
	Title            string `toml:"title"`
	Description      string `toml:"description"`
	Action           string `toml:"action"`
	Alternative      string `toml:"alternative"`
	Next             string `toml:"next"`
	OnAction         string `toml:"on_action"`
	OnAlternative    string `toml:"on_alternative"`
	Dismissable      *bool  `toml:"dismissable"`
	CloseButton      *bool  `toml:"close_button"`
	StartsIndicator  bool   `toml:"starts_with_indicator"`
	IndicatorSeconds int    `toml:"indicator_seconds"`
}

// RootID returns the id of the page the flow starts on.
func (d *Deck) RootID() string {
	if d.Meta.Root != "" {
		return d.Meta.Root
	}
	if len(d.Pages) > 0 {
		return d.Pages[0].ID
	}
	return ""
}

// Name returns the deck name, falling back to the source file.
func (d *Deck) Name() string {
	if d.Meta.Name != "" {
		return d.Meta.Name
	}
	return strings.TrimSuffix(d.SourceFile, ".toml")
}

// VerbKind is what a button does when pressed.
type VerbKind string

// Verbs accepted in on_action and on_alternative.
const (
	VerbNext    VerbKind = "next"
	VerbPush    VerbKind = "push"
	VerbPop     VerbKind = "pop"
	VerbRoot    VerbKind = "root"
	VerbDismiss VerbKind = "dismiss"
	VerbNone    VerbKind = "none"
)

// Verb is a parsed button action. Target is set for VerbPush only.
type Verb struct {
	Kind   VerbKind
	Target string
}

// ParseVerb parses "next", "push:<id>", "pop", "root", "dismiss" or "none".
func ParseVerb(s string) (Verb, error) {
	if target, ok := strings.CutPrefix(s, "push:"); ok {
		if target == "" {
			return Verb{}, fmt.Errorf("%w: %q has no target", ErrUnknownVerb, s)
		}
		return Verb{Kind: VerbPush, Target: target}, nil
	}
	switch k := VerbKind(s); k {
	case VerbNext, VerbPop, VerbRoot, VerbDismiss, VerbNone:
		return Verb{Kind: k}, nil
	}
	return Verb{}, fmt.Errorf("%w: %q", ErrUnknownVerb, s)
}

// actionVerb returns the verb string for the action button, applying the
// default: next when the page has a next link, dismiss otherwise.
func (p PageSpec) actionVerb() string {
	if p.OnAction != "" {
		return p.OnAction
	}
	if p.Next != "" {
		return string(VerbNext)
	}
	return string(VerbDismiss)
}

// alternativeVerb returns the verb string for the alternative button,
// defaulting to dismiss.
func (p PageSpec) alternativeVerb() string {
	if p.OnAlternative != "" {
		return p.OnAlternative
	}
	return string(VerbDismiss)
}
