// Package session implements the concurrency and ordering discipline that
// drives a device from power-up to operational idle: a reader loop that
// demultiplexes inbound frames into responses and events, a write-locked
// requester with bounded retry, and an event-acknowledgement writer.
package session

import (
	"context"
	"fmt"
)

// Transport is the byte-stream boundary the engine drives: one full
// protocol message per Write/Read call. Implementations are responsible for
// their own per-call deadlines honoring ctx.
type Transport interface {
	WriteMessage(ctx context.Context, data []byte) error
	ReadMessage(ctx context.Context) ([]byte, error)
	Close() error
}

// TransportError wraps an underlying transport I/O failure, identifying
// which operation failed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("jcm: transport %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }
