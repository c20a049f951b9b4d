// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slack

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TrafficLog is an append-only record of raw stream traffic, kept for
// diagnostics. Nothing in the client reads it back. A nil *TrafficLog is
// valid and drops everything, so logging stays optional.
type TrafficLog struct {
	mu sync.Mutex
	f  *os.File
}

// OpenTrafficLog opens (creating if needed) the traffic log at path and
// writes a session marker so interleaved runs can be told apart.
func OpenTrafficLog(path string) (*TrafficLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open traffic log: %w", err)
	}
	l := &TrafficLog{f: f}
	marker := fmt.Sprintf("\n\n###############\n\nsession %s started %s\n",
		uuid.NewString(), time.Now().Format(time.RFC3339))
	l.append([]byte(marker))
	return l, nil
}

// Append records one raw inbound frame. Write errors are swallowed: a
// full disk must not take down the chat session over a diagnostic file.
func (l *TrafficLog) Append(data []byte) {
	if l == nil {
		return
	}
	l.append(append(data, '\n'))
}

func (l *TrafficLog) append(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return
	}
	_, _ = l.f.Write(data)
}

// Close closes the underlying file. Safe on nil.
func (l *TrafficLog) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
