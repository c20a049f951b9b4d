// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main view for the slackline TUI.
//
// This file defines keyboard bindings for the chat interface.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the chat interface. Channel
// list navigation (up/down) stays with the list widget's own bindings.
type KeyMap struct {
	Select      key.Binding
	Submit      key.Binding
	CancelInput key.Binding
	FocusInput  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open channel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send message"),
		),
		CancelInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back to channels"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "focus input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}
