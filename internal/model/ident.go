// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "sync/atomic"

// MessageIDGenerator issues ids for outgoing messages. Ids are unique and
// strictly increasing for the lifetime of the process; the server echoes
// them back as reply_to on acknowledgments, which is what lets an ack find
// its pending line.
type MessageIDGenerator struct {
	last atomic.Int64
}

// Next returns a fresh id, strictly greater than every id issued before.
// The first id is 1.
func (g *MessageIDGenerator) Next() int64 {
	return g.last.Add(1)
}
