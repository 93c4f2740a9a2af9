package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for host on the alternate screen.
func NewProgram(host *Host, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(host, allOpts...)
}

// Run runs host until the flow ends or the user quits.
func Run(host *Host, opts ...tea.ProgramOption) error {
	if _, err := NewProgram(host, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
