// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slack

import "encoding/json"

// =============================================================================
// API WIRE TYPES
// =============================================================================

// responseHeader is Slack's common response envelope. Every API response
// carries ok, and an error reason when ok is false.
type responseHeader struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (h responseHeader) success() (bool, string) {
	return h.OK, h.Error
}

// envelope is implemented by all API response types via responseHeader.
type envelope interface {
	success() (ok bool, reason string)
}

type wireChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sessionStartResponse struct {
	responseHeader
	URL  string   `json:"url"`
	Self wireUser `json:"self"`
}

type channelListResponse struct {
	responseHeader
	Channels []wireChannel `json:"channels"`
}

type joinChannelResponse struct {
	responseHeader
	Channel wireChannel `json:"channel"`
}

type userListResponse struct {
	responseHeader
	Members []wireUser `json:"members"`
}

type markResponse struct {
	responseHeader
}

type openIMResponse struct {
	responseHeader
	Channel wireChannel `json:"channel"`
}

// HistoryMessage is one entry from a history fetch. Entries arrive
// newest-first. Only Type "message" entries are rendered; joins, leaves
// and other subtypes are dropped by the caller.
type HistoryMessage struct {
	Type string `json:"type"`
	User string `json:"user"`
	Text string `json:"text"`
	TS   string `json:"ts"`
}

type historyResponse struct {
	responseHeader
	Messages []HistoryMessage `json:"messages"`
	Latest   string           `json:"latest"`
}

// =============================================================================
// STREAM WIRE TYPES
// =============================================================================

// Event is one inbound message from the streaming connection.
//
// The shape the core cares about is the send acknowledgment: {ok,
// reply_to}. Everything else (presence, typing, live messages) still
// parses into an Event so the handler can inspect and ignore it without
// crashing.
type Event struct {
	Type    string `json:"type"`
	OK      *bool  `json:"ok,omitempty"`
	ReplyTo int64  `json:"reply_to,omitempty"`
	Channel string `json:"channel,omitempty"`
	User    string `json:"user,omitempty"`
	Text    string `json:"text,omitempty"`

	// Raw is the undecoded payload, kept for the diagnostic log.
	Raw json.RawMessage `json:"-"`
}

// IsAck reports whether the event acknowledges a previously sent message.
// Acks are the only events carrying an ok field.
func (e Event) IsAck() bool {
	return e.OK != nil
}

// OutgoingMessage is the one message shape the client writes to the
// stream. ID is the local id the server echoes back as reply_to.
type OutgoingMessage struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}
