// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the single mutable session for a running client.
//
// The session is the only owner of "current channel" state and of the
// user directory snapshot used to resolve author display names. There is
// exactly one write point for the current channel id: the channel-switch
// sequencer, after a join call has returned success. Nothing sets the
// channel id speculatively.
//
// # Key Types
//
//   - Session: current channel id, own identity, user directory
//
// # Usage
//
//	s := session.New()
//	s.SetSelf(model.User{ID: "U1", Name: "alice"})
//	s.SetUsers(users)
//	name, ok := s.ResolveUserName("U1")
package session
