// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
//
// The package is built around three collaborators plus the Bubble Tea
// shell that schedules them:
//
//   - Reconciler: the optimistic-send engine. Submitting a message
//     renders it immediately as pending; the matching acknowledgment,
//     arriving later on the stream, confirms (or fails) exactly that
//     line.
//   - Sequencer: the channel-switch engine. Selecting a channel runs the
//     strict join -> history -> render -> mark-read sequence as an
//     explicit state machine, each step gated on the previous one's
//     success.
//   - Model/Update/View: the Bubble Tea shell. Every window mutation
//     happens inside Update, on one goroutine, which is what serializes
//     reconciliation against history renders.
//
// One deliberate race: a message submitted while a channel switch is in
// flight targets the channel current at submit time, not the target of
// the unfinished switch. The reconciler reads the session's channel id
// at Submit, and the sequencer only writes it after a successful join.
package chat
