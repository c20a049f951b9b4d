// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the single mutable session for a running client.
package session

import (
	"github.com/jeranaias/slackline-tui/internal/model"
)

// Session is the one mutable session instance for the process.
//
// All access happens on the UI update goroutine, so the struct carries no
// lock; what it enforces instead is write discipline. The current channel
// id changes only through SetCurrentChannelID, and the only caller of
// that is the channel-switch sequencer on the success path of a join.
type Session struct {
	currentChannelID string
	self             model.User
	users            map[string]model.User
}

// New returns an empty session with no current channel.
func New() *Session {
	return &Session{users: make(map[string]model.User)}
}

// CurrentChannelID returns the id of the joined channel, or "" when no
// join has succeeded yet.
func (s *Session) CurrentChannelID() string {
	return s.currentChannelID
}

// SetCurrentChannelID records a successful channel join. Called only by
// the channel-switch sequencer once the join response is in hand.
func (s *Session) SetCurrentChannelID(id string) {
	s.currentChannelID = id
}

// Self returns the authenticated user's own identity, as reported by the
// session-start endpoint.
func (s *Session) Self() model.User {
	return s.self
}

// SetSelf records the authenticated user's identity.
func (s *Session) SetSelf(u model.User) {
	s.self = u
}

// SetUsers replaces the user directory snapshot.
func (s *Session) SetUsers(users []model.User) {
	m := make(map[string]model.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	s.users = m
}

// ResolveUserName maps a user id to a display name. Unknown ids return
// ok=false; history rendering shows those authors with an empty name
// rather than failing the render.
func (s *Session) ResolveUserName(id string) (string, bool) {
	u, ok := s.users[id]
	if !ok {
		return "", false
	}
	return u.Name, true
}
