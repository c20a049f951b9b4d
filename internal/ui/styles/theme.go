// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the slackline TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// CHANNEL LIST STYLES
	// ==========================================================================

	ChannelPane         lipgloss.Style
	ChannelPaneFocused  lipgloss.Style
	ChannelItem         lipgloss.Style
	ChannelItemSelected lipgloss.Style

	// ==========================================================================
	// CHAT WINDOW STYLES
	// ==========================================================================

	ChatPane        lipgloss.Style
	ChatPaneFocused lipgloss.Style
	LineConfirmed   lipgloss.Style
	LinePending     lipgloss.Style
	LineFailed      lipgloss.Style
	LineAuthor      lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	StatusBar      lipgloss.Style
	StatusError    lipgloss.Style
	StatusOK       lipgloss.Style
}

// NewTheme creates the application theme.
func NewTheme() *Theme {
	paneBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TextMuted)

	return &Theme{
		ColorProfile: termenv.ColorProfile(),

		Header: lipgloss.NewStyle().
			Background(SurfaceDim).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan),

		ChannelPane: paneBorder,
		ChannelPaneFocused: paneBorder.
			BorderForeground(Cyan),
		ChannelItem: lipgloss.NewStyle().
			Foreground(TextPrimary).
			PaddingLeft(1),
		ChannelItemSelected: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		ChatPane: paneBorder,
		ChatPaneFocused: paneBorder.
			BorderForeground(Cyan),
		LineConfirmed: lipgloss.NewStyle().
			Foreground(TextPrimary),
		LinePending: lipgloss.NewStyle().
			Foreground(Amber),
		LineFailed: lipgloss.NewStyle().
			Foreground(Rose),
		LineAuthor: lipgloss.NewStyle().
			Bold(true),

		InputContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(SurfaceDim).
			Foreground(TextMuted).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true),
		StatusOK: lipgloss.NewStyle().
			Foreground(Emerald),
	}
}
