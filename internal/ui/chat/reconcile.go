// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
package chat

import (
	"errors"

	"github.com/jeranaias/slackline-tui/internal/model"
	"github.com/jeranaias/slackline-tui/internal/session"
	"github.com/jeranaias/slackline-tui/internal/slack"
)

// ErrNotConnected is returned by Submit before the streaming connection
// is up. The input widget is not focusable until then, so hitting this
// means a caller skipped the focus discipline.
var ErrNotConnected = errors.New("streaming connection not established")

// Sender is the outbound half of the streaming connection.
type Sender interface {
	Send(msg slack.OutgoingMessage) error
}

// =============================================================================
// RECONCILIATION ENGINE
// =============================================================================

// Reconciler implements optimistic send and ack matching over the
// window. Exactly one pending line exists per issued id (ids are unique
// for the process), and an ack touches at most that one line.
type Reconciler struct {
	ids     *model.MessageIDGenerator
	window  *model.Window
	session *session.Session
	sender  Sender
}

// NewReconciler creates a reconciler over the given window and session.
// The sender is attached later, once the stream is connected.
func NewReconciler(ids *model.MessageIDGenerator, window *model.Window, sess *session.Session) *Reconciler {
	return &Reconciler{ids: ids, window: window, session: sess}
}

// SetSender attaches the outbound stream. Until this is called Submit
// refuses to send.
func (r *Reconciler) SetSender(s Sender) {
	r.sender = s
}

// Submit performs an optimistic send: it assigns a fresh local id,
// renders the message as a pending line at the top of the window, and
// writes the send request to the stream. The send targets whatever
// channel is current right now; an in-flight channel switch does not
// redirect it. Returns the issued id.
func (r *Reconciler) Submit(author, text string) (int64, error) {
	if r.sender == nil {
		return 0, ErrNotConnected
	}

	id := r.ids.Next()
	r.window.Unshift(model.Line{
		Text:      author + ": " + text,
		PendingID: id,
	})

	err := r.sender.Send(slack.OutgoingMessage{
		ID:      id,
		Type:    "message",
		Channel: r.session.CurrentChannelID(),
		Text:    text,
	})
	if err != nil {
		return id, err
	}
	return id, nil
}

// HandleAck resolves one acknowledgment against the window. Scanning
// runs newest-first and stops at the first (only) match. A positive ack
// confirms the line in place; a negative ack marks it failed so a
// rejected send stays visible. An ack with no matching pending line is a
// no-op, not an error: the line may have been replaced by an earlier
// duplicate ack or belong to a previous process.
//
// Returns true when a line was mutated.
func (r *Reconciler) HandleAck(ev slack.Event) bool {
	if !ev.IsAck() {
		return false
	}
	idx := r.window.FindPending(ev.ReplyTo)
	if idx < 0 {
		return false
	}
	if *ev.OK {
		r.window.Confirm(idx)
	} else {
		r.window.Fail(idx)
	}
	return true
}
