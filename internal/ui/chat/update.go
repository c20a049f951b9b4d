// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/slackline-tui/internal/ui/components"
)

// Update is the single mutation point for the whole client. Every write
// to the window and the session happens here, on the program's update
// goroutine; commands only perform I/O and report back as messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.statusBar.Spinner = m.spinner.View()
		return m, cmd

	// -- startup --------------------------------------------------------

	case ChannelsLoadedMsg:
		if msg.Err != nil {
			return m, fatalCmd(fmt.Errorf("listing channels: %w", msg.Err))
		}
		items := make([]list.Item, len(msg.Channels))
		for i, ch := range msg.Channels {
			items[i] = channelItem{ch: ch}
		}
		return m, m.channelList.SetItems(items)

	case UsersLoadedMsg:
		if msg.Err != nil {
			return m, fatalCmd(fmt.Errorf("listing users: %w", msg.Err))
		}
		m.sess.SetUsers(msg.Users)
		return m, nil

	case SessionStartedMsg:
		if msg.Err != nil {
			return m, fatalCmd(fmt.Errorf("starting session: %w", msg.Err))
		}
		m.sess.SetSelf(msg.Self)
		return m, m.dialCmd(msg.StreamURL)

	case StreamConnectedMsg:
		if msg.Err != nil {
			return m, fatalCmd(fmt.Errorf("connecting stream: %w", msg.Err))
		}
		m.stream = msg.Stream
		m.reconciler.SetSender(msg.Stream)
		m.connected = true
		m.statusBar.Set(components.StatusReady, "Enter: open channel  Tab: compose  C-c: quit")
		return m, waitEventCmd(m.stream)

	// -- stream ---------------------------------------------------------

	case StreamEventMsg:
		if msg.Closed {
			return m, fatalCmd(fmt.Errorf("stream disconnected"))
		}
		ev := msg.Event
		switch {
		case ev.IsAck():
			if m.reconciler.HandleAck(ev) {
				m.refreshViewport()
			}
		case ev.Type == "message" && ev.Channel == m.sess.CurrentChannelID():
			name, _ := m.sess.ResolveUserName(ev.User)
			m.window.Unshift(windowLine(name, ev.Text))
			m.refreshViewport()
		}
		return m, waitEventCmd(m.stream)

	// -- channel switch -------------------------------------------------

	case ChannelJoinedMsg:
		if m.sequencer.Joined(msg.Gen, msg.Channel, msg.Err) {
			m.statusBar.Set(components.StatusLoading, "")
			return m, m.historyCmd(msg.Gen, msg.Channel.ID)
		}
		if msg.Err != nil && m.sequencer.State() == SwitchFailed {
			m.statusBar.Set(components.StatusError, "joining #"+m.sequencer.Target()+": "+msg.Err.Error())
			m.refreshViewport()
		}
		return m, nil

	case HistoryLoadedMsg:
		latest, ok := m.sequencer.RenderHistory(msg.Gen, msg.Messages, msg.Latest, msg.Err)
		if !ok {
			if msg.Err != nil && m.sequencer.State() == SwitchFailed {
				m.statusBar.Set(components.StatusError, "loading #"+m.sequencer.Target()+": "+msg.Err.Error())
			}
			m.refreshViewport()
			return m, nil
		}
		m.refreshViewport()
		m.focus = FocusInput
		m.input.Reset()
		m.input.Focus()
		m.statusBar.Set(components.StatusReady, "Esc: channels  Enter: send")
		return m, m.markReadCmd(m.sess.CurrentChannelID(), latest)

	case MarkedReadMsg:
		// Fire-and-forget; a failure changes nothing visible.
		return m, nil

	// -- fatal ----------------------------------------------------------

	case FatalErrorMsg:
		m.fatalErr = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func fatalCmd(err error) tea.Cmd {
	return func() tea.Msg { return FatalErrorMsg{Err: err} }
}

// handleKey routes keystrokes by focus. Quit works everywhere.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.focus {
	case FocusChannels:
		switch {
		case key.Matches(msg, m.keys.Select):
			return m.beginSwitch()
		case key.Matches(msg, m.keys.FocusInput):
			if m.connected && m.sess.CurrentChannelID() != "" {
				m.focus = FocusInput
				m.input.Focus()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.channelList, cmd = m.channelList.Update(msg)
		return m, cmd

	case FocusInput:
		switch {
		case key.Matches(msg, m.keys.CancelInput):
			m.focus = FocusChannels
			m.input.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// beginSwitch starts a channel switch for the highlighted list entry.
// The header updates immediately, before the join round-trips.
func (m Model) beginSwitch() (tea.Model, tea.Cmd) {
	item, ok := m.channelList.SelectedItem().(channelItem)
	if !ok {
		return m, nil
	}
	m.header.SetChannel(item.ch.Name)
	m.statusBar.Set(components.StatusJoining, "")
	gen := m.sequencer.Begin(item.ch.Name)
	m.refreshViewport()
	return m, m.joinCmd(gen, item.ch.Name)
}

// submit sends the composed message optimistically. The pending line is
// visible before the send request even hits the wire.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if _, err := m.reconciler.Submit(m.sess.Self().Name, text); err != nil {
		m.statusBar.Set(components.StatusError, "sending: "+err.Error())
		m.refreshViewport()
		return m, nil
	}
	m.input.Reset()
	m.refreshViewport()
	return m, nil
}
