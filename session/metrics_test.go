package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jcm "github.com/jcm-go/jcmdrv"
	"github.com/jcm-go/jcmdrv/session"
	"github.com/jcm-go/jcmdrv/transport"
)

// gaugeValue reads the current value of a registered gauge metric by its
// fully-qualified name, failing the test if it is not found.
func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		require.NotEmpty(t, fam.GetMetric())
		return fam.GetMetric()[0].GetGauge().GetValue()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func startEngineWithMetrics(t *testing.T, fake *transport.Fake, metrics *session.Metrics) *session.Engine {
	t.Helper()
	engine := session.NewEngine(fake, session.WithRetryBudget(1), session.WithMetrics(metrics))
	started := make(chan error, 1)
	go func() {
		started <- engine.Start(context.Background())
	}()
	fake.Inject(jcm.Message{Data: jcm.PowerUpEvent{}.ToMessageData(jcm.ConfIdAcceptor, 0, 0)}.Bytes())
	require.NoError(t, <-started)
	t.Cleanup(func() { _ = engine.Stop() })
	return engine
}

func TestEngineRecordsNearFullMetricOnGet(t *testing.T) {
	fake := transport.NewFake(4)
	reg := prometheus.NewRegistry()
	metrics := session.NewMetrics(reg)
	engine := startEngineWithMetrics(t, fake, metrics)

	go func() {
		written := <-fake.Written()
		req, err := jcm.MessageFromBytes(written)
		if err != nil {
			return
		}
		resp := jcm.NearFullResponse{
			Mode: jcm.RequestModeGet,
			Code: jcm.ResponseAck,
			Data: jcm.NearFullData{Enabled: true, Number: 77},
		}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: resp}.Bytes())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := jcm.NearFullRequest{Mode: jcm.RequestModeGet}.ToMessageData(jcm.ConfIdAcceptor, 0)
	_, err := engine.Request(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, float64(77), gaugeValue(t, reg, "jcmdrv_session_near_full_count"))
}

func TestEngineDoesNotRecordNearFullMetricOnSetAck(t *testing.T) {
	fake := transport.NewFake(4)
	reg := prometheus.NewRegistry()
	metrics := session.NewMetrics(reg)
	metrics.RecordNearFull(77)
	engine := startEngineWithMetrics(t, fake, metrics)

	go func() {
		written := <-fake.Written()
		req, err := jcm.MessageFromBytes(written)
		if err != nil {
			return
		}
		// A Set-mode acknowledgement carries no echoed count; recording it
		// would wrongly overwrite the last-known value with zero.
		resp := jcm.NearFullResponse{Mode: jcm.RequestModeSet, Code: jcm.ResponseAck}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: resp}.Bytes())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := jcm.NearFullRequest{Mode: jcm.RequestModeSet, Data: jcm.NearFullData{Enabled: true, Number: 12}}.ToMessageData(jcm.ConfIdAcceptor, 0)
	_, err := engine.Request(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, float64(77), gaugeValue(t, reg, "jcmdrv_session_near_full_count"))
}

func TestEngineRecordsCashBoxSizeMetric(t *testing.T) {
	fake := transport.NewFake(4)
	reg := prometheus.NewRegistry()
	metrics := session.NewMetrics(reg)
	engine := startEngineWithMetrics(t, fake, metrics)

	go func() {
		written := <-fake.Written()
		req, err := jcm.MessageFromBytes(written)
		if err != nil {
			return
		}
		resp := jcm.CashBoxSizeResponse{
			Code: jcm.ResponseAck,
			Size: jcm.CashBoxSize{Raw: "500", Count: 500},
		}.ToMessageData(req.Data.ConfId, req.Data.Uid)
		fake.Inject(jcm.Message{Data: resp}.Bytes())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	req := jcm.CashBoxSizeRequest{}.ToMessageData(jcm.ConfIdAcceptor, 0)
	_, err := engine.Request(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, float64(500), gaugeValue(t, reg, "jcmdrv_session_cash_box_size"))
}
