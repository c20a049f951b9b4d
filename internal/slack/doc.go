// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package slack provides the transport layer for the slackline client.
//
// Two halves make up the transport:
//
//   - Client: the request/response API (session start, channel list,
//     join, history, mark-read, user directory, direct messages). Every
//     call attaches the authentication token and unwraps Slack's
//     {"ok": ...} envelope into Go errors.
//   - Stream: the persistent websocket carrying live events, including
//     the acknowledgments that confirm optimistic sends. The read pump
//     delivers events one at a time, in arrival order, over a channel;
//     malformed or unknown event shapes are logged and skipped, never
//     fatal.
//
// All raw inbound stream traffic is appended to a diagnostic log file
// (TrafficLog). The log is write-only; nothing reads it back.
//
// # Usage
//
//	client := slack.NewClient(cfg.APIBaseURL, cfg.Token)
//	streamURL, self, err := client.StartSession(ctx)
//	stream, err := slack.Dial(ctx, streamURL, slack.DialOptions{Log: log})
//	for ev := range stream.Events() {
//	    if ev.IsAck() { ... }
//	}
package slack
