// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/slackline-tui/internal/model"
	"github.com/jeranaias/slackline-tui/internal/session"
	"github.com/jeranaias/slackline-tui/internal/slack"
)

// fakeSender records outgoing messages and can be told to fail.
type fakeSender struct {
	sent []slack.OutgoingMessage
	err  error
}

func (f *fakeSender) Send(msg slack.OutgoingMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestReconciler() (*Reconciler, *model.Window, *session.Session, *fakeSender) {
	window := model.NewWindow()
	sess := session.New()
	sender := &fakeSender{}
	r := NewReconciler(&model.MessageIDGenerator{}, window, sess)
	r.SetSender(sender)
	return r, window, sess, sender
}

func ack(id int64, ok bool) slack.Event {
	return slack.Event{OK: &ok, ReplyTo: id}
}

func TestSubmitIssuesIncreasingIDs(t *testing.T) {
	r, _, _, _ := newTestReconciler()

	var prev int64
	for i := 0; i < 10; i++ {
		id, err := r.Submit("alice", "hello")
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestSubmitRendersPendingLine(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	id, err := r.Submit("alice", "hello world")
	require.NoError(t, err)
	require.Equal(t, 1, window.Len())
	assert.Equal(t, "alice: hello world (pending - 1)", window.At(0).Display())
	assert.Equal(t, id, window.At(0).PendingID)
}

func TestSubmitTargetsCurrentChannel(t *testing.T) {
	r, _, sess, sender := newTestReconciler()
	sess.SetCurrentChannelID("C042")

	id, err := r.Submit("alice", "hi")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, slack.OutgoingMessage{
		ID:      id,
		Type:    "message",
		Channel: "C042",
		Text:    "hi",
	}, sender.sent[0])
}

func TestSubmitWithoutSender(t *testing.T) {
	window := model.NewWindow()
	r := NewReconciler(&model.MessageIDGenerator{}, window, session.New())

	_, err := r.Submit("alice", "hi")
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, 0, window.Len(), "no optimistic line without a connection")
}

func TestSubmitSendErrorLeavesLinePending(t *testing.T) {
	r, window, _, sender := newTestReconciler()
	sender.err = errors.New("broken pipe")

	id, err := r.Submit("alice", "hi")
	assert.Error(t, err)
	require.Equal(t, 1, window.Len())
	assert.Equal(t, id, window.At(0).PendingID)
}

// An ack mutates exactly the line whose pending id it names, even with
// several sends outstanding, and leaves every other line untouched.
func TestAckConfirmsExactlyOneLine(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	for _, text := range []string{"one", "two", "three"} {
		_, err := r.Submit("alice", text)
		require.NoError(t, err)
	}
	require.Equal(t, []string{
		"alice: three (pending - 3)",
		"alice: two (pending - 2)",
		"alice: one (pending - 1)",
	}, window.Displays())

	assert.True(t, r.HandleAck(ack(2, true)))

	assert.Equal(t, []string{
		"alice: three (pending - 3)",
		"alice: two",
		"alice: one (pending - 1)",
	}, window.Displays())
}

func TestAckIdempotent(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	id, err := r.Submit("alice", "hi")
	require.NoError(t, err)

	assert.True(t, r.HandleAck(ack(id, true)))
	before := window.Displays()

	assert.False(t, r.HandleAck(ack(id, true)), "duplicate ack must not match")
	assert.Equal(t, before, window.Displays())
}

func TestAckUnmatchedIsNoOp(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	_, err := r.Submit("alice", "hi")
	require.NoError(t, err)
	before := window.Displays()

	assert.False(t, r.HandleAck(ack(99, true)))
	assert.Equal(t, before, window.Displays())
}

func TestNegativeAckMarksFailed(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	id, err := r.Submit("alice", "hi")
	require.NoError(t, err)

	assert.True(t, r.HandleAck(ack(id, false)))
	assert.Equal(t, []string{"alice: hi (failed)"}, window.Displays())

	// A failed line is out of the pending set; nothing matches it anymore.
	assert.False(t, r.HandleAck(ack(id, true)))
	assert.Equal(t, []string{"alice: hi (failed)"}, window.Displays())
}

func TestNonAckEventIgnored(t *testing.T) {
	r, window, _, _ := newTestReconciler()

	_, err := r.Submit("alice", "hi")
	require.NoError(t, err)
	before := window.Displays()

	assert.False(t, r.HandleAck(slack.Event{Type: "message", Text: "hi"}))
	assert.Equal(t, before, window.Displays())
}
