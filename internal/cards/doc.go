// Package cards implements the presentation state machine behind modal card
// flows. A Manager owns the current Page and a back-stack of previously
// active pages, drives each page through its lifecycle hooks in a fixed order,
// and decides whether the modal surface may be dismissed.
//
// Rendering is delegated: pages build their content through a ViewFactory and
// the Manager hands the resulting views to a Surface. Both are consumed here
// as interfaces and implemented by the termview and tui packages.
//
// All Manager operations are synchronous and expected to run on a single
// goroutine (the Bubble Tea update loop). Deferred work scheduled with
// Page.Schedule is tied to the activation that scheduled it and becomes a no-op
// once the page is deactivated.
package cards
