// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
//
// This file defines all Bubble Tea message types used by the chat
// interface. Messages are organized into the following categories:
//   - Startup: directory fetches and stream connection
//   - Stream: inbound events and disconnects
//   - Channel switch: join, history, and mark-read completions
//   - Fatal: unrecoverable errors carried up to main
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/jeranaias/slackline-tui/internal/model"
	"github.com/jeranaias/slackline-tui/internal/slack"
)

// =============================================================================
// STARTUP MESSAGES
// =============================================================================

// ChannelsLoadedMsg delivers the channel directory snapshot.
type ChannelsLoadedMsg struct {
	Channels []model.Channel
	Err      error
}

// UsersLoadedMsg delivers the user directory snapshot.
type UsersLoadedMsg struct {
	Users []model.User
	Err   error
}

// SessionStartedMsg delivers the stream URL and our own identity from
// the session-start endpoint.
type SessionStartedMsg struct {
	StreamURL string
	Self      model.User
	Err       error
}

// StreamConnectedMsg signals that the websocket is up. From this point
// the input widget is usable and acks are expected.
type StreamConnectedMsg struct {
	Stream *slack.Stream
	Err    error
}

// =============================================================================
// STREAM MESSAGES
// =============================================================================

// StreamEventMsg delivers one inbound stream event, in arrival order.
// Closed is set instead of Event when the connection dropped.
type StreamEventMsg struct {
	Event  slack.Event
	Closed bool
}

// =============================================================================
// CHANNEL SWITCH MESSAGES
// =============================================================================

// ChannelJoinedMsg delivers the join result for switch generation Gen.
type ChannelJoinedMsg struct {
	Gen     int
	Channel model.Channel
	Err     error
}

// HistoryLoadedMsg delivers the history result for switch generation Gen.
type HistoryLoadedMsg struct {
	Gen      int
	Messages []slack.HistoryMessage
	Latest   string
	Err      error
}

// MarkedReadMsg reports the fire-and-forget mark-read result. Nothing
// downstream waits on it; a failure changes nothing visible.
type MarkedReadMsg struct {
	Err error
}

// =============================================================================
// FATAL MESSAGES
// =============================================================================

// FatalErrorMsg aborts the UI. main writes the error to the diagnostic
// log and exits non-zero.
type FatalErrorMsg struct {
	Err error
}
