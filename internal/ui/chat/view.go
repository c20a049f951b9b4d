// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/slackline-tui/internal/model"
)

// windowLine builds the plain window line for a message. Styling is
// applied at render time only; the window itself stores plain text so
// ack matching and tests see stable strings.
func windowLine(author, text string) model.Line {
	return model.Line{Text: author + ": " + text}
}

// resize distributes the terminal size across the panes. Heights:
// header 1, input 3 (bordered), status 1; the rest is the middle row.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)

	middle := height - 5
	if middle < 3 {
		middle = 3
	}

	listWidth := m.cfg.UI.ChannelListWidth
	m.channelList.SetSize(listWidth, middle-2)

	chatWidth := width - listWidth - 6
	if chatWidth < 20 {
		chatWidth = 20
	}
	m.viewport.Width = chatWidth
	m.viewport.Height = middle - 2
	m.input.Width = width - 6
}

// refreshViewport re-renders the window into the chat viewport. Newest
// lines live at the top of the window, so no scroll chasing is needed.
func (m *Model) refreshViewport() {
	lines := make([]string, 0, m.window.Len())
	for i := 0; i < m.window.Len(); i++ {
		lines = append(lines, m.styleLine(m.window.At(i)))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoTop()
}

// styleLine picks the style for one rendered line: pending lines are
// dimmed amber, failed ones rose, confirmed ones the normal text color.
// The author prefix is bolded on confirmed lines.
func (m *Model) styleLine(l model.Line) string {
	display := l.Display()
	switch {
	case l.Failed:
		return m.theme.LineFailed.Render(display)
	case l.PendingID != 0:
		return m.theme.LinePending.Render(display)
	}
	if idx := strings.Index(display, ": "); idx > 0 {
		return m.theme.LineAuthor.Render(display[:idx]) +
			m.theme.LineConfirmed.Render(display[idx:])
	}
	return m.theme.LineConfirmed.Render(display)
}

// View assembles the full screen: header, channel pane beside the chat
// viewport, the input line, and the status bar.
func (m Model) View() string {
	if m.width == 0 {
		return "Connecting to Slack..."
	}

	channelPane := m.theme.ChannelPane
	chatPane := m.theme.ChatPane
	if m.focus == FocusChannels {
		channelPane = m.theme.ChannelPaneFocused
	} else {
		chatPane = m.theme.ChatPaneFocused
	}

	middle := lipgloss.JoinHorizontal(
		lipgloss.Top,
		channelPane.Render(m.channelList.View()),
		chatPane.Render(m.viewport.View()),
	)

	input := m.theme.InputContainer.Width(m.width - 4).Render(m.input.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		middle,
		input,
		m.statusBar.View(),
	)
}
