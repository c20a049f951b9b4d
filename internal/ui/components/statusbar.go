// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the slackline TUI.
package components

import (
	"github.com/jeranaias/slackline-tui/internal/ui/styles"
	"github.com/jeranaias/slackline-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - bottom connection / activity line
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusConnecting Status = iota
	StatusReady
	StatusJoining
	StatusLoading
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "Connecting to Slack..."
	case StatusReady:
		return "Ready"
	case StatusJoining:
		return "Joining channel..."
	case StatusLoading:
		return "Getting messages..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the one-line bar at the bottom of the screen.
type StatusBar struct {
	Status  Status
	Detail  string // extra text, e.g. an error reason or key hints
	Width   int
	Spinner string // current spinner frame while connecting/loading
	theme   *styles.Theme
}

// NewStatusBar creates a StatusBar in the connecting state.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Status: StatusConnecting, Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// Set updates the status and detail text in one call.
func (b *StatusBar) Set(status Status, detail string) {
	b.Status = status
	b.Detail = detail
}

// View renders the status bar.
func (b *StatusBar) View() string {
	// Truncate the plain detail before styling; cutting a styled string
	// would split escape sequences.
	detail := b.Detail
	if budget := b.Width - 20; budget > 0 {
		detail = util.TruncateWidth(detail, budget)
	}

	var left string
	switch b.Status {
	case StatusError:
		left = b.theme.StatusError.Render("Error")
		if detail != "" {
			left += " " + detail
		}
	case StatusReady:
		left = b.theme.StatusOK.Render(b.Status.String())
		if detail != "" {
			left += "  " + detail
		}
	default:
		left = b.Status.String()
		if b.Spinner != "" {
			left = b.Spinner + " " + left
		}
	}
	return b.theme.StatusBar.Width(b.Width).Render(left)
}
