// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat window and the
// Slack directory.
//
// This package defines the core domain types used throughout the
// application for representing the visible conversation window, pending
// outgoing messages, and the channel/user directory snapshots.
//
// # Key Types
//
//   - Window: ordered, newest-first store of visible chat lines
//   - Line: one chat line; carries its pending message id out-of-band
//     instead of encoding it inside the display text
//   - MessageIDGenerator: process-scoped counter for outgoing message ids
//   - Channel, User: immutable directory snapshots from the API
//
// # Usage
//
// Render an optimistic send and confirm it later:
//
//	w := model.NewWindow()
//	w.Unshift(model.Line{Text: "alice: hi", PendingID: gen.Next()})
//	// ... ack arrives ...
//	if i := w.FindPending(id); i >= 0 {
//	    w.Confirm(i)
//	}
package model
