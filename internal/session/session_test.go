// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"

	"github.com/jeranaias/slackline-tui/internal/model"
)

func TestSession_CurrentChannelID(t *testing.T) {
	s := New()
	if got := s.CurrentChannelID(); got != "" {
		t.Errorf("fresh session channel id = %q, want empty", got)
	}

	s.SetCurrentChannelID("C123")
	if got := s.CurrentChannelID(); got != "C123" {
		t.Errorf("channel id = %q, want C123", got)
	}
}

func TestSession_ResolveUserName(t *testing.T) {
	s := New()
	s.SetUsers([]model.User{
		{ID: "U1", Name: "alice"},
		{ID: "U2", Name: "bob"},
	})

	name, ok := s.ResolveUserName("U1")
	if !ok || name != "alice" {
		t.Errorf("ResolveUserName(U1) = %q, %v; want alice, true", name, ok)
	}

	name, ok = s.ResolveUserName("U404")
	if ok || name != "" {
		t.Errorf("ResolveUserName(U404) = %q, %v; want empty, false", name, ok)
	}
}

func TestSession_SetUsersReplacesSnapshot(t *testing.T) {
	s := New()
	s.SetUsers([]model.User{{ID: "U1", Name: "alice"}})
	s.SetUsers([]model.User{{ID: "U2", Name: "bob"}})

	if _, ok := s.ResolveUserName("U1"); ok {
		t.Error("stale directory entry survived SetUsers")
	}
	if name, _ := s.ResolveUserName("U2"); name != "bob" {
		t.Errorf("ResolveUserName(U2) = %q, want bob", name)
	}
}

func TestSession_Self(t *testing.T) {
	s := New()
	s.SetSelf(model.User{ID: "U9", Name: "carol"})
	if got := s.Self(); got.Name != "carol" || got.ID != "U9" {
		t.Errorf("Self() = %+v", got)
	}
}
