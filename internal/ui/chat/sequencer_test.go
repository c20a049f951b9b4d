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

func newTestSequencer() (*Sequencer, *model.Window, *session.Session) {
	window := model.NewWindow()
	sess := session.New()
	sess.SetUsers([]model.User{
		{ID: "U1", Name: "alice"},
		{ID: "U2", Name: "bob"},
	})
	return NewSequencer(sess, window), window, sess
}

func TestBeginShowsPlaceholder(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	assert.Equal(t, 1, gen)
	assert.Equal(t, SwitchJoining, seq.State())
	assert.Equal(t, []string{"Getting messages..."}, window.Displays())
}

func TestJoinedSetsChannelOnlyAfterSuccess(t *testing.T) {
	seq, _, sess := newTestSequencer()

	gen := seq.Begin("general")
	assert.Empty(t, sess.CurrentChannelID(), "channel id must not change before the join returns")

	require.True(t, seq.Joined(gen, model.Channel{ID: "C1", Name: "general"}, nil))
	assert.Equal(t, "C1", sess.CurrentChannelID())
	assert.Equal(t, SwitchFetchingHistory, seq.State())
}

func TestJoinFailureKeepsPreviousChannel(t *testing.T) {
	seq, window, sess := newTestSequencer()

	gen := seq.Begin("general")
	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))
	_, ok := seq.RenderHistory(gen, nil, "111.0", nil)
	require.True(t, ok)

	gen = seq.Begin("locked")
	assert.False(t, seq.Joined(gen, model.Channel{}, errors.New("is_archived")))
	assert.Equal(t, SwitchFailed, seq.State())
	assert.Equal(t, "C1", sess.CurrentChannelID(), "failed join must not move the session")
	assert.Equal(t, []string{"Getting messages..."}, window.Displays(), "placeholder stays up on failure")
}

// History arrives newest-first; the rendered window must keep that
// order: the most recent message at the top, older ones below it.
func TestRenderHistoryChronological(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))

	msgs := []slack.HistoryMessage{
		{Type: "message", User: "U1", Text: "b", TS: "2.0"},
		{Type: "message", User: "U1", Text: "a", TS: "1.0"},
	}
	latest, ok := seq.RenderHistory(gen, msgs, "2.0", nil)
	require.True(t, ok)
	assert.Equal(t, "2.0", latest)
	assert.Equal(t, SwitchDone, seq.State())
	assert.Equal(t, []string{"alice: b", "alice: a"}, window.Displays())
}

func TestRenderHistoryFiltersNonMessages(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))

	msgs := []slack.HistoryMessage{
		{Type: "message", User: "U2", Text: "hi", TS: "3.0"},
		{Type: "channel_join", User: "U2", TS: "2.0"},
		{Type: "message", User: "U1", Text: "welcome", TS: "1.0"},
	}
	_, ok := seq.RenderHistory(gen, msgs, "3.0", nil)
	require.True(t, ok)
	assert.Equal(t, []string{"bob: hi", "alice: welcome"}, window.Displays())
}

func TestRenderHistoryUnknownAuthor(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))

	msgs := []slack.HistoryMessage{
		{Type: "message", User: "U9", Text: "hi", TS: "1.0"},
	}
	_, ok := seq.RenderHistory(gen, msgs, "1.0", nil)
	require.True(t, ok)
	assert.Equal(t, []string{": hi"}, window.Displays())
}

func TestHistoryFailureKeepsPlaceholder(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))

	_, ok := seq.RenderHistory(gen, nil, "", errors.New("rate_limited"))
	assert.False(t, ok)
	assert.Equal(t, SwitchFailed, seq.State())
	assert.Equal(t, []string{"Getting messages..."}, window.Displays())
}

// A completion from a superseded switch is dropped: switching away while
// a fetch is in flight must not render stale history into the new channel.
func TestStaleGenerationDropped(t *testing.T) {
	seq, window, sess := newTestSequencer()

	gen1 := seq.Begin("general")
	require.True(t, seq.Joined(gen1, model.Channel{ID: "C1"}, nil))

	gen2 := seq.Begin("random")
	require.NotEqual(t, gen1, gen2)

	stale := []slack.HistoryMessage{
		{Type: "message", User: "U1", Text: "old stuff", TS: "1.0"},
	}
	_, ok := seq.RenderHistory(gen1, stale, "1.0", nil)
	assert.False(t, ok, "stale history must not render")
	assert.Equal(t, []string{"Getting messages..."}, window.Displays())

	// The live switch proceeds normally.
	require.True(t, seq.Joined(gen2, model.Channel{ID: "C2"}, nil))
	assert.Equal(t, "C2", sess.CurrentChannelID())
	_, ok = seq.RenderHistory(gen2, nil, "5.0", nil)
	assert.True(t, ok)
}

func TestStaleJoinDropped(t *testing.T) {
	seq, _, sess := newTestSequencer()

	gen1 := seq.Begin("general")
	seq.Begin("random")

	assert.False(t, seq.Joined(gen1, model.Channel{ID: "C1"}, nil))
	assert.Empty(t, sess.CurrentChannelID())
}

// Lines sent or received while the switch is still fetching history
// stack above the placeholder. The render must remove the placeholder
// from wherever it sits and leave those newer lines on top, with a
// pending line still matchable by its ack.
func TestSendDuringSwitchSurvivesRender(t *testing.T) {
	seq, window, _ := newTestSequencer()

	gen := seq.Begin("general")
	window.Unshift(model.Line{Text: "alice: quick reply", PendingID: 1})
	window.Unshift(model.Line{Text: "bob: yo"})

	require.True(t, seq.Joined(gen, model.Channel{ID: "C1"}, nil))
	msgs := []slack.HistoryMessage{
		{Type: "message", User: "U2", Text: "newer", TS: "2.0"},
		{Type: "message", User: "U1", Text: "older", TS: "1.0"},
	}
	_, ok := seq.RenderHistory(gen, msgs, "2.0", nil)
	require.True(t, ok)

	assert.Equal(t, []string{
		"bob: yo",
		"alice: quick reply (pending - 1)",
		"bob: newer",
		"alice: older",
	}, window.Displays())
	assert.Equal(t, 1, window.FindPending(1), "pending line must survive the render")
	assert.Equal(t, -1, window.FindPlaceholder(), "placeholder must be gone")
}

func TestRenderHistoryOutOfOrderState(t *testing.T) {
	seq, _, _ := newTestSequencer()

	gen := seq.Begin("general")
	// History lands before the join completed: wrong state, dropped.
	_, ok := seq.RenderHistory(gen, nil, "1.0", nil)
	assert.False(t, ok)
	assert.Equal(t, SwitchJoining, seq.State())
}
