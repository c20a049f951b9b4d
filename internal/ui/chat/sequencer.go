// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
package chat

import (
	"github.com/jeranaias/slackline-tui/internal/model"
	"github.com/jeranaias/slackline-tui/internal/session"
	"github.com/jeranaias/slackline-tui/internal/slack"
)

// LoadingPlaceholder is the transient window content shown while a
// channel switch is fetching history.
const LoadingPlaceholder = "Getting messages..."

// =============================================================================
// CHANNEL-SWITCH STATE MACHINE
// =============================================================================

// SwitchState names where a channel switch currently is. The sequence is
// strict: each state is entered only from its predecessor, and a failure
// at any step parks the machine in SwitchFailed with the session and the
// placeholder untouched.
type SwitchState int

const (
	SwitchIdle SwitchState = iota
	SwitchJoining
	SwitchFetchingHistory
	SwitchRendering
	SwitchDone
	SwitchFailed
)

// String returns the display name of the state.
func (s SwitchState) String() string {
	switch s {
	case SwitchIdle:
		return "idle"
	case SwitchJoining:
		return "joining"
	case SwitchFetchingHistory:
		return "fetching-history"
	case SwitchRendering:
		return "rendering"
	case SwitchDone:
		return "done"
	case SwitchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sequencer drives the join -> history -> render -> mark-read sequence
// for channel switches.
//
// Every Begin bumps a generation counter, and every async completion
// carries the generation it belongs to. A completion for a superseded
// generation is dropped on the floor: when the user switches away while
// a history fetch is still in flight, the stale result must not render
// into the new channel's window.
type Sequencer struct {
	state   SwitchState
	gen     int
	target  string
	session *session.Session
	window  *model.Window
}

// NewSequencer creates an idle sequencer over the given session and window.
func NewSequencer(sess *session.Session, window *model.Window) *Sequencer {
	return &Sequencer{session: sess, window: window}
}

// State returns the current switch state.
func (s *Sequencer) State() SwitchState {
	return s.state
}

// Target returns the channel name of the current (or last) switch.
func (s *Sequencer) Target() string {
	return s.target
}

// Begin starts a switch to the named channel: the window becomes the
// loading placeholder and the machine enters Joining. Returns the
// generation token that all completions of this switch must carry.
func (s *Sequencer) Begin(channelName string) int {
	s.gen++
	s.state = SwitchJoining
	s.target = channelName
	s.window.SetContent(LoadingPlaceholder)
	return s.gen
}

// Joined consumes the join result. On success the session's current
// channel id is set - this is the only write point for that field, and
// it happens strictly after the join returned success. On failure the
// machine parks in Failed, the session keeps its previous channel id,
// and the placeholder stays visible.
//
// Returns true when the sequence should proceed to the history fetch.
func (s *Sequencer) Joined(gen int, ch model.Channel, err error) bool {
	if gen != s.gen || s.state != SwitchJoining {
		return false
	}
	if err != nil {
		s.state = SwitchFailed
		return false
	}
	s.session.SetCurrentChannelID(ch.ID)
	s.state = SwitchFetchingHistory
	return true
}

// RenderHistory consumes the history result and renders it. The service
// returns entries newest-first; rendering walks them oldest-first and
// inserts each where the placeholder sat, so the finished history block
// reads newest at the top while anything sent or received mid-switch
// stays above it. Entries other than plain messages (joins, leaves) are
// dropped, and authors missing from the directory render with an empty
// name.
//
// Returns the latest-read timestamp for the mark-read call and whether
// the sequence completed.
func (s *Sequencer) RenderHistory(gen int, msgs []slack.HistoryMessage, latest string, err error) (string, bool) {
	if gen != s.gen || s.state != SwitchFetchingHistory {
		return "", false
	}
	if err != nil {
		s.state = SwitchFailed
		return "", false
	}

	s.state = SwitchRendering

	// Sends and live messages that landed while the switch was in flight
	// sit above the placeholder. The history block replaces the
	// placeholder at its own position, so those newer lines stay on top
	// and a pending line keeps waiting for its ack.
	at := s.window.FindPlaceholder()
	if at >= 0 {
		s.window.DeleteAt(at)
	} else {
		at = s.window.Len()
	}

	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m.Type != "message" {
			continue
		}
		name, _ := s.session.ResolveUserName(m.User)
		s.window.InsertAt(at, model.Line{Text: name + ": " + m.Text})
	}

	s.state = SwitchDone
	return latest, true
}
