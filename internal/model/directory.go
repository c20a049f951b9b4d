// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Channel is one joinable conversation stream, as returned by the channel
// list endpoint. Snapshots are immutable; a refetch replaces the slice.
type Channel struct {
	ID   string
	Name string
}

// User is one directory entry, fetched once at startup and used to resolve
// author display names when rendering history.
type User struct {
	ID   string
	Name string
}
