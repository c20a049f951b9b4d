// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// Line is a single visible chat line.
//
// A pending line is an optimistic local render of a message the server has
// not acknowledged yet. The pending id travels on the struct, not inside
// the display text, so reconciliation is a field lookup rather than string
// parsing. Display() is the only place the pending marker is formatted.
type Line struct {
	// Text is the confirmed rendering, e.g. "alice: hello".
	Text string

	// PendingID is the local id of the unacknowledged send that produced
	// this line, or zero for confirmed lines.
	PendingID int64

	// Failed marks a line whose send was rejected by the server.
	Failed bool

	// Placeholder marks the transient loading line shown during a channel
	// switch. Sends and live messages can stack above it, so removal goes
	// through FindPlaceholder rather than assuming it is still on top.
	Placeholder bool
}

// Display returns the text shown for this line, including the pending or
// failed marker when one applies.
func (l Line) Display() string {
	switch {
	case l.Failed:
		return l.Text + " (failed)"
	case l.PendingID != 0:
		return fmt.Sprintf("%s (pending - %d)", l.Text, l.PendingID)
	default:
		return l.Text
	}
}

// Window is the ordered backing store for the visible conversation.
//
// Lines are kept newest-first: index 0 is the top of the chat pane. The
// window is owned by the UI update loop; every mutation happens on that
// single goroutine, which serializes reconciliation against history
// renders without locks.
type Window struct {
	lines []Line
}

// NewWindow returns an empty window.
func NewWindow() *Window {
	return &Window{}
}

// Len returns the number of lines in the window.
func (w *Window) Len() int {
	return len(w.lines)
}

// At returns the line at index i. Index 0 is the newest line.
func (w *Window) At(i int) Line {
	return w.lines[i]
}

// Unshift inserts a line at the top of the window.
func (w *Window) Unshift(l Line) {
	w.lines = append([]Line{l}, w.lines...)
}

// InsertAt inserts a line at index i, shifting older lines down.
// Out-of-range indices clamp to the nearest end.
func (w *Window) InsertAt(i int, l Line) {
	if i < 0 {
		i = 0
	}
	if i > len(w.lines) {
		i = len(w.lines)
	}
	w.lines = append(w.lines, Line{})
	copy(w.lines[i+1:], w.lines[i:])
	w.lines[i] = l
}

// DeleteAt removes the line at index i. Out-of-range indices are ignored.
func (w *Window) DeleteAt(i int) {
	if i < 0 || i >= len(w.lines) {
		return
	}
	w.lines = append(w.lines[:i], w.lines[i+1:]...)
}

// DeleteTop removes the top line, if any.
func (w *Window) DeleteTop() {
	w.DeleteAt(0)
}

// SetContent replaces the whole window with a single placeholder line.
// Used for transient placeholders like "Getting messages...".
func (w *Window) SetContent(text string) {
	w.lines = []Line{{Text: text, Placeholder: true}}
}

// FindPlaceholder returns the index of the placeholder line, or -1 when
// none is present.
func (w *Window) FindPlaceholder() int {
	for i, l := range w.lines {
		if l.Placeholder {
			return i
		}
	}
	return -1
}

// FindPending returns the index of the first line, scanning from the top
// (newest) down, whose pending id equals id. Returns -1 when no line
// matches. Pending ids are unique for the process lifetime, so at most one
// line can match regardless of scan order; newest-first is just the likely
// shortest scan.
func (w *Window) FindPending(id int64) int {
	for i, l := range w.lines {
		if l.PendingID == id && !l.Failed {
			return i
		}
	}
	return -1
}

// Confirm replaces the pending line at index i with its confirmed form at
// the same position. The delete+insert pair mirrors an ack touching
// exactly one line.
func (w *Window) Confirm(i int) {
	if i < 0 || i >= len(w.lines) {
		return
	}
	l := w.lines[i]
	l.PendingID = 0
	l.Failed = false
	w.DeleteAt(i)
	w.InsertAt(i, l)
}

// Fail marks the pending line at index i as rejected by the server. The
// line stays visible so a rejected send is never silently dropped.
func (w *Window) Fail(i int) {
	if i < 0 || i >= len(w.lines) {
		return
	}
	w.lines[i].PendingID = 0
	w.lines[i].Failed = true
}

// Displays returns the display strings for all lines, newest first.
func (w *Window) Displays() []string {
	out := make([]string, len(w.lines))
	for i, l := range w.lines {
		out[i] = l.Display()
	}
	return out
}
