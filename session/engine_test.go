package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jcm "github.com/jcm-go/jcmdrv"
	"github.com/jcm-go/jcmdrv/session"
	"github.com/jcm-go/jcmdrv/transport"
)

func startEngine(t *testing.T, fake *transport.Fake) *session.Engine {
	t.Helper()
	engine := session.NewEngine(fake, session.WithRetryBudget(1))
	started := make(chan error, 1)
	go func() {
		started <- engine.Start(context.Background())
	}()
	fake.Inject(jcm.Message{Data: jcm.PowerUpEvent{}.ToMessageData(jcm.ConfIdAcceptor, 0, 0)}.Bytes())
	require.NoError(t, <-started)
	t.Cleanup(func() { _ = engine.Stop() })
	return engine
}

func TestEngineHandshakeSucceedsOnPowerUp(t *testing.T) {
	fake := transport.NewFake(4)
	engine := startEngine(t, fake)
	assert.NotZero(t, engine.ID())

	select {
	case ack := <-fake.Written():
		data, err := jcm.MessageFromBytes(ack)
		require.NoError(t, err)
		assert.True(t, data.Data.MessageType.IsEvent())
	case <-time.After(time.Second):
		t.Fatal("expected handshake ack to be written")
	}
}

func TestEngineHandshakeTimesOutWithoutPowerUp(t *testing.T) {
	fake := transport.NewFake(4)
	engine := session.NewEngine(fake, session.WithRetryBudget(0))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := engine.Start(ctx)
	require.Error(t, err)
}

func TestEngineRequestMatchesResponse(t *testing.T) {
	fake := transport.NewFake(4)
	engine := startEngine(t, fake)

	go func() {
		written := <-fake.Written()
		req, err := jcm.MessageFromBytes(written)
		if err != nil {
			return
		}
		resp := jcm.StatusResponse{Code: jcm.ResponseAck}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: resp}.Bytes())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := jcm.StatusRequest{}.ToMessageData(jcm.ConfIdAcceptor, 0)
	respData, err := engine.Request(ctx, req)
	require.NoError(t, err)

	resp, err := jcm.StatusResponseFromMessageData(respData)
	require.NoError(t, err)
	assert.True(t, resp.Code.IsOk())
}

func TestEngineRequestDiscardsMismatchThenMatches(t *testing.T) {
	fake := transport.NewFake(4)
	engine := startEngine(t, fake)

	go func() {
		written := <-fake.Written()
		req, err := jcm.MessageFromBytes(written)
		if err != nil {
			return
		}
		// A response to a different request code is discarded, not
		// mistaken for the answer to this one.
		badResp := jcm.ResetResponse{Code: jcm.ResponseAck}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: badResp}.Bytes())

		goodResp := jcm.StatusResponse{Code: jcm.ResponseAck}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: goodResp}.Bytes())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req := jcm.StatusRequest{}.ToMessageData(jcm.ConfIdAcceptor, 0)
	respData, err := engine.Request(ctx, req)
	require.NoError(t, err)

	resp, err := jcm.StatusResponseFromMessageData(respData)
	require.NoError(t, err)
	assert.True(t, resp.Code.IsOk())
}

func TestEngineAckEventPreservesOrder(t *testing.T) {
	fake := transport.NewFake(4)
	engine := startEngine(t, fake)
	// Drain the power-up acknowledgement the handshake already wrote.
	<-fake.Written()

	e1 := jcm.IdleEvent{}.ToMessageData(jcm.ConfIdAcceptor, 0, 1)
	e2 := jcm.ClearEvent{}.ToMessageData(jcm.ConfIdAcceptor, 0, 2)

	fake.Inject(jcm.Message{Data: e1}.Bytes())
	fake.Inject(jcm.Message{Data: e2}.Bytes())

	var got []jcm.MessageData
	for i := 0; i < 2; i++ {
		select {
		case ev := <-engine.Events():
			got = append(got, ev)
			require.NoError(t, engine.AckEvent(context.Background(), ev))
		case <-time.After(time.Second):
			t.Fatal("expected event")
		}
	}

	for i := 0; i < 2; i++ {
		select {
		case ack := <-fake.Written():
			data, err := jcm.MessageFromBytes(ack)
			require.NoError(t, err)
			assert.Equal(t, got[i].MessageType, data.Data.MessageType)
		case <-time.After(time.Second):
			t.Fatal("expected ack write")
		}
	}
}
