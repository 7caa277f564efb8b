// Package tui provides the interactive front end for subnet-ctl.
//
// This package uses the Bubble Tea framework to collect the same
// inputs as the plan command through form fields and to render the
// resulting plan in a table widget.
//
// # Form
//
// The form has three steps: the parent network, the space-separated
// host counts, and the results table. Validation and allocation
// failures appear inline under the form instead of exiting.
//
//	err := tui.Run(defaults)
//
// Keys: Enter advances, Esc steps back (and quits from the first
// step), n starts a new calculation, b toggles binary address
// rendering, q quits.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
