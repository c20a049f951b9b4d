// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the slackline TUI.
package components

import (
	"github.com/jeranaias/slackline-tui/internal/ui/styles"
	"github.com/jeranaias/slackline-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - title bar showing the active channel
// =============================================================================

// Header is the one-line title bar. It shows the application name and,
// once a channel has been selected, that channel's name.
type Header struct {
	Channel string // selected channel name, empty before the first switch
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a Header with no channel selected.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetChannel updates the displayed channel name. Called on step one of a
// channel switch, before the join round-trips.
func (h *Header) SetChannel(name string) {
	h.Channel = name
}

// View renders the header.
func (h *Header) View() string {
	title := "slackline"
	if h.Channel != "" {
		title = "slackline - #" + h.Channel
	}
	title = util.TruncateWidth(title, h.Width-2)
	return h.theme.Header.Width(h.Width).Render(h.theme.HeaderTitle.Render(title))
}
