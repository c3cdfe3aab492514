package session

import "github.com/prometheus/client_golang/prometheus"

// Metrics records session-engine telemetry: near-full thresholds, cash-box
// size readings, request retries, and event acknowledgements. All methods
// are nil-safe: calls on a nil *Metrics are no-ops.
type Metrics struct {
	nearFullCount      prometheus.Gauge
	cashBoxSize        prometheus.Gauge
	requestRetries     prometheus.Counter
	requestsTotal      *prometheus.CounterVec
	eventsAcked        prometheus.Counter
	powerUpHandshakes  *prometheus.CounterVec
}

// NewMetrics creates and registers session metrics with the given
// Prometheus registerer. If reg is nil, metrics are created but not
// registered, which is useful for tests.
//
// On re-registration, existing collectors from the registry are reused so
// that metrics continue to be exported correctly.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nearFullCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "near_full_count",
			Help:      "Most recently reported near-full note count.",
		}),
		cashBoxSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "cash_box_size",
			Help:      "Most recently reported cash box capacity.",
		}),
		requestRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "request_retries_total",
			Help:      "Total number of request retry attempts consumed.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "requests_total",
			Help:      "Total requests issued, labeled by outcome.",
		}, []string{"outcome"}),
		eventsAcked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "events_acked_total",
			Help:      "Total number of inbound events acknowledged.",
		}),
		powerUpHandshakes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jcmdrv",
			Subsystem: "session",
			Name:      "power_up_handshakes_total",
			Help:      "Total power-up handshakes, labeled by outcome.",
		}, []string{"outcome"}),
	}

	if reg != nil {
		m.nearFullCount = registerOrReuse(reg, m.nearFullCount).(prometheus.Gauge)
		m.cashBoxSize = registerOrReuse(reg, m.cashBoxSize).(prometheus.Gauge)
		m.requestRetries = registerOrReuse(reg, m.requestRetries).(prometheus.Counter)
		m.requestsTotal = registerOrReuse(reg, m.requestsTotal).(*prometheus.CounterVec)
		m.eventsAcked = registerOrReuse(reg, m.eventsAcked).(prometheus.Counter)
		m.powerUpHandshakes = registerOrReuse(reg, m.powerUpHandshakes).(*prometheus.CounterVec)
	}

	return m
}

func (m *Metrics) RecordNearFull(count uint16) {
	if m == nil {
		return
	}
	m.nearFullCount.Set(float64(count))
}

func (m *Metrics) RecordCashBoxSize(count uint64) {
	if m == nil {
		return
	}
	m.cashBoxSize.Set(float64(count))
}

func (m *Metrics) RecordRetry() {
	if m == nil {
		return
	}
	m.requestRetries.Inc()
}

func (m *Metrics) RecordRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordEventAck() {
	if m == nil {
		return
	}
	m.eventsAcked.Inc()
}

func (m *Metrics) RecordHandshake(outcome string) {
	if m == nil {
		return
	}
	m.powerUpHandshakes.WithLabelValues(outcome).Inc()
}

// registerOrReuse registers a collector with the given registerer. If the
// collector is already registered, it returns the existing one from the
// registry so metrics continue to be exported correctly across restarts.
func registerOrReuse(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}
