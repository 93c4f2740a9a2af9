package tui

import (
	"github.com/papapumpkin/bulletin/internal/appearance"
	"github.com/papapumpkin/bulletin/internal/cards"
)

// MsgTimer fires a continuation scheduled through Surface.After.
type MsgTimer struct {
	ID uint64
}

// MsgReveal advances the present animation by one frame.
type MsgReveal struct {
	// Present is the presentation generation the frame belongs to. Frames of
	// an earlier presentation are ignored.
	Present int
}

// MsgReplace swaps the running flow for a new one. The current flow is
// force-dismissed and Root is presented. It is sent by the deck watcher on a
// valid reload.
type MsgReplace struct {
	Root       *cards.Page
	Appearance *appearance.Config
}

// MsgStatus shows a transient line in the footer, such as a reload error.
type MsgStatus struct {
	Text  string
	Error bool
}
