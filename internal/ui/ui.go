// Package ui prints operator-facing lines (banners, deck summaries,
// validation reports and run history) to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/papapumpkin/bulletin/internal/ansi"
	"github.com/papapumpkin/bulletin/internal/deck"
	"github.com/papapumpkin/bulletin/internal/history"
)

// Printer writes colored status lines. The zero value is not usable; build
// one with New or NewWriter.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing colored output to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr, color: true}
}

// NewWriter returns a Printer writing to w, with or without color codes.
func NewWriter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// paint wraps s in codes unless color is off.
func (p *Printer) paint(s string, codes ...string) string {
	if !p.color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansi.Reset
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Banner prints the program header.
func (p *Printer) Banner() {
	p.printf("%s\n", p.paint("  ╭───────────────────────────────╮", ansi.Bold, ansi.Cyan))
	p.printf("%s%s%s\n",
		p.paint("  │", ansi.Bold, ansi.Cyan),
		p.paint("   BULLETIN  ", ansi.Bold)+p.paint("modal card decks  ", ansi.Dim),
		p.paint("│", ansi.Bold, ansi.Cyan))
	p.printf("%s\n\n", p.paint("  ╰───────────────────────────────╯", ansi.Bold, ansi.Cyan))
}

// DeckLoaded reports a deck that is about to run.
func (p *Printer) DeckLoaded(name string, pages int, root string) {
	p.printf("%s %s %s\n",
		p.paint("◆ deck", ansi.Cyan),
		name,
		p.paint(fmt.Sprintf("(%d page(s), starts at %s)", pages, root), ansi.Dim))
}

// ValidationErrors prints the result of validating one deck file.
func (p *Printer) ValidationErrors(source string, pages int, errs []deck.ValidationError) {
	if len(errs) == 0 {
		p.printf("%s %s\n", p.paint(fmt.Sprintf("✓ %s", source), ansi.Green, ansi.Bold),
			fmt.Sprintf("%d page(s), no errors", pages))
		return
	}
	p.printf("%s %d error(s):\n", p.paint(fmt.Sprintf("✗ %s", source), ansi.Red, ansi.Bold), len(errs))
	for _, e := range errs {
		p.printf("  %s%s %s\n", p.paint("•", ansi.Red), p.paint(" ["+string(e.Category)+"]", ansi.Dim), e.Error())
	}
}

// Reloaded reports a hot reload of the running deck.
func (p *Printer) Reloaded(name string) {
	p.printf("%s %s\n", p.paint("↻ reloaded", ansi.Yellow, ansi.Bold), name)
}

// RunSummary prints how a run ended.
func (p *Printer) RunSummary(r history.Run) {
	label := p.paint("✓ completed", ansi.Green, ansi.Bold)
	if r.Outcome != history.OutcomeCompleted {
		label = p.paint("◌ dismissed", ansi.Yellow, ansi.Bold)
	}
	p.printf("%s %s %s\n", label, r.Deck,
		p.paint(fmt.Sprintf("(%d page(s) seen, last %s, %s)", r.PagesSeen, r.LastPage, formatDuration(r.Duration())), ansi.Dim))
}

// History prints recorded runs, newest first.
func (p *Printer) History(runs []history.Run) {
	if len(runs) == 0 {
		p.Info("no runs recorded")
		return
	}
	p.printf("%s\n", p.paint("recent runs:", ansi.Bold))
	for _, r := range runs {
		color := ansi.Green
		if r.Outcome != history.OutcomeCompleted {
			color = ansi.Yellow
		}
		p.printf("  %s  %-20s %s %s\n",
			p.paint(r.EndedAt.Local().Format(time.DateTime), ansi.Dim),
			r.Deck,
			p.paint(fmt.Sprintf("%-9s", r.Outcome), color),
			p.paint(fmt.Sprintf("%d page(s), last %s", r.PagesSeen, r.LastPage), ansi.Dim))
	}
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	p.printf("%s\n", p.paint(msg, ansi.Dim))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	p.printf("%s%s\n", p.paint("error: ", ansi.Red, ansi.Bold), msg)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}
