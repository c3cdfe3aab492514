package transport

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by a Fake transport's Read/Write methods once
// Close has been called.
var ErrClosed = errors.New("jcm: fake transport closed")

// Fake is an in-memory session.Transport backed by two buffered channels,
// for exercising the session engine without real USB hardware.
type Fake struct {
	inbound  chan []byte
	outbound chan []byte

	mu     sync.Mutex
	closed bool
}

// NewFake constructs a Fake transport with the given inbound queue depth.
func NewFake(inboundDepth int) *Fake {
	return &Fake{
		inbound:  make(chan []byte, inboundDepth),
		outbound: make(chan []byte, inboundDepth),
	}
}

// Inject enqueues a frame as if it had arrived from the device.
func (f *Fake) Inject(frame []byte) {
	f.inbound <- frame
}

// Written returns the channel of frames the engine has written, for test
// assertions.
func (f *Fake) Written() <-chan []byte { return f.outbound }

func (f *Fake) WriteMessage(ctx context.Context, data []byte) error {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return ErrClosed
	}
	cp := append([]byte(nil), data...)
	select {
	case f.outbound <- cp:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fake) ReadMessage(ctx context.Context) ([]byte, error) {
	select {
	case data, ok := <-f.inbound:
		if !ok {
			return nil, ErrClosed
		}
		return data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	close(f.inbound)
	return nil
}
