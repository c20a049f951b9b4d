// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the slackline
// TUI: the title header and the bottom status bar. The interactive
// widgets (channel list, message viewport, input) come from bubbles and
// live on the chat model directly.
package components
