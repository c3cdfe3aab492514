package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jcm-go/jcmdrv/session"
	"github.com/jcm-go/jcmdrv/transport"
)

// openEngine finds the first vendor-specific JCM device on the bus, opens a
// USB transport to it, and runs the engine through its power-up handshake.
// The returned cleanup function stops the engine and closes the transport.
func openEngine(ctx context.Context) (*session.Engine, func(), error) {
	devices, err := transport.FindDevices()
	if err != nil {
		return nil, nil, fmt.Errorf("enumerate USB devices: %w", err)
	}
	if len(devices) == 0 {
		return nil, nil, fmt.Errorf("no JCM device found")
	}

	t, err := transport.Open(devices[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open device: %w", err)
	}

	metrics := session.NewMetrics(nil)
	engine := session.NewEngine(t, session.WithMetrics(metrics))

	handshakeCtx, cancel := context.WithTimeout(ctx, powerUpTimeout())
	defer cancel()
	if err := engine.Start(handshakeCtx); err != nil {
		_ = t.Close()
		return nil, nil, fmt.Errorf("power-up handshake: %w", err)
	}

	cleanup := func() {
		_ = engine.Stop()
	}
	return engine, cleanup, nil
}

// requestTimeout returns the per-request context deadline configured via
// --timeout.
func requestTimeout() time.Duration {
	return time.Duration(flagTimeout) * time.Second
}

// powerUpTimeout gives the handshake a little more room than a single
// request, since it waits out the full power-up window before failing.
func powerUpTimeout() time.Duration {
	return requestTimeout() + 3*time.Second
}
