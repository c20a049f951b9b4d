// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// eventBuffer sizes the inbound event channel. Arrival order is
// preserved either way; the buffer only decouples the read pump from a
// momentarily busy update loop.
const eventBuffer = 32

// DialOptions configures how the streaming connection is established.
type DialOptions struct {
	// ProxyHost, when non-empty, replaces the host of the stream URL and
	// downgrades the scheme to ws://, routing the connection through a
	// plain forward proxy.
	ProxyHost string

	// HTTPProxy is an optional proxy URL for the websocket dialer.
	HTTPProxy string

	// Log receives every raw inbound frame. May be nil.
	Log *TrafficLog
}

// Stream is the persistent streaming connection. Inbound events are
// delivered on Events in arrival order; the channel closes when the
// connection drops.
type Stream struct {
	conn    *websocket.Conn
	events  chan Event
	log     *TrafficLog
	writeMu sync.Mutex
}

// Dial opens the streaming connection to the URL returned by the
// session-start endpoint and starts the read pump.
func Dial(ctx context.Context, rawURL string, opts DialOptions) (*Stream, error) {
	target, err := rewriteStreamURL(rawURL, opts.ProxyHost)
	if err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{}
	if opts.HTTPProxy != "" {
		proxyURL, err := url.Parse(opts.HTTPProxy)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP proxy url: %w", err)
		}
		dialer.Proxy = http.ProxyURL(proxyURL)
	}

	conn, resp, err := dialer.DialContext(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing stream %s: %w", target, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s := &Stream{
		conn:   conn,
		events: make(chan Event, eventBuffer),
		log:    opts.Log,
	}
	go s.readPump()
	return s, nil
}

// rewriteStreamURL applies the forward-proxy host rewrite. With no proxy
// the URL passes through untouched.
func rewriteStreamURL(rawURL, proxyHost string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid stream url: %w", err)
	}
	if proxyHost != "" {
		u.Scheme = "ws"
		u.Host = proxyHost
	}
	return u.String(), nil
}

// Events returns the inbound event channel. Events arrive one at a time,
// in the order the connection received them. The channel closes when the
// stream ends.
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Send writes one outgoing message to the stream. Concurrent senders are
// serialized; gorilla/websocket allows only one writer at a time.
func (s *Stream) Send(msg OutgoingMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("sending message %d: %w", msg.ID, err)
	}
	return nil
}

// Close tears down the connection. The read pump notices and closes the
// event channel.
func (s *Stream) Close() error {
	return s.conn.Close()
}

// readPump reads frames until the connection dies. Each frame is logged
// raw, then decoded; frames that fail to decode are skipped rather than
// crashing the handler, since the stream carries many shapes the client
// does not consume.
func (s *Stream) readPump() {
	defer close(s.events)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		s.log.Append(data)

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}
		ev.Raw = json.RawMessage(data)
		s.events <- ev
	}
}
