package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	jcm "github.com/jcm-go/jcmdrv"
)

const (
	defaultWriteTimeout    = 100 * time.Millisecond
	defaultReadTimeout     = 100 * time.Millisecond
	defaultResponseTimeout = 500 * time.Millisecond
	defaultRetryBudget     = 3
	powerUpWindow          = 3 * time.Second
)

// ErrPowerUpTimeout is returned by Start when no power-up event was observed
// within the handshake window.
var ErrPowerUpTimeout = errors.New("jcm: no power-up event observed within handshake window")

// ErrStopped is returned by Request once the engine has been stopped.
var ErrStopped = errors.New("jcm: session engine stopped")

// Engine drives a Transport through the request/response/event exchange
// discipline: one reader goroutine demultiplexing inbound frames, one
// event-ack writer goroutine, and a transport write mutex shared with
// caller-driven requests.
type Engine struct {
	transport Transport
	logger    *log.Logger
	metrics   *Metrics
	id        uuid.UUID

	retryBudget     int
	writeTimeout    time.Duration
	readTimeout     time.Duration
	responseTimeout time.Duration

	writeMu    sync.Mutex
	stopped    atomic.Bool
	statusMu   sync.RWMutex
	lastStatus *jcm.StatusResponse

	responseCh chan jcm.MessageData
	eventCh    chan jcm.MessageData
	ackCh      chan jcm.MessageData

	group  *errgroup.Group
	cancel context.CancelFunc
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger overrides the default logger (log.Default()).
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.logger = l } }

// WithMetrics attaches a Metrics recorder. Pass nil (the default) to disable
// metrics entirely.
func WithMetrics(m *Metrics) Option { return func(e *Engine) { e.metrics = m } }

// WithRetryBudget overrides the default per-request retry budget (3).
func WithRetryBudget(n int) Option { return func(e *Engine) { e.retryBudget = n } }

// NewEngine constructs an Engine over t. Call Start before issuing requests.
func NewEngine(t Transport, opts ...Option) *Engine {
	e := &Engine{
		transport:       t,
		logger:          log.Default(),
		id:              uuid.New(),
		retryBudget:     defaultRetryBudget,
		writeTimeout:    defaultWriteTimeout,
		readTimeout:     defaultReadTimeout,
		responseTimeout: defaultResponseTimeout,
		responseCh:      make(chan jcm.MessageData, 1),
		eventCh:         make(chan jcm.MessageData, 16),
		ackCh:           make(chan jcm.MessageData, 16),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID is the correlation identifier for this engine instance's diagnostic
// logging, generated once at construction.
func (e *Engine) ID() uuid.UUID { return e.id }

// Start launches the reader and event-ack-writer loops, then runs the
// power-up handshake: it consumes events for up to 3 seconds, acknowledging
// each one, and fails iff no power-up event was observed in that window.
// After Start returns successfully, events delivered after the handshake
// window are available from Events().
func (e *Engine) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	group, gctx := errgroup.WithContext(ctx)
	e.group = group

	group.Go(func() error { return e.readLoop(gctx) })
	group.Go(func() error { return e.ackWriteLoop(gctx) })

	return e.powerUpHandshake(gctx)
}

// Stop signals every loop to exit and closes the transport.
func (e *Engine) Stop() error {
	e.stopped.Store(true)
	if e.cancel != nil {
		e.cancel()
	}
	if e.group != nil {
		_ = e.group.Wait()
	}
	return e.transport.Close()
}

// Events returns the channel events are delivered on after the power-up
// handshake window. Callers must call AckEvent for each event received, in
// order, to satisfy the device's rolling-sequence acknowledgement contract.
func (e *Engine) Events() <-chan jcm.MessageData { return e.eventCh }

// AckEvent builds and enqueues an acknowledgement for an inbound event: a
// copy of its MessageData with an Ack ResponseCode byte appended.
func (e *Engine) AckEvent(ctx context.Context, event jcm.MessageData) error {
	ack := jcm.MessageData{
		ConfId:      event.ConfId,
		Uid:         event.Uid,
		MessageType: event.MessageType,
		Code:        event.Code,
		Additional:  append(append([]byte(nil), event.Additional...), uint8(jcm.ResponseAck)),
	}
	select {
	case e.ackCh <- ack:
		e.metrics.RecordEventAck()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readLoop owns the inbound transport endpoint exclusively: it repeatedly
// reads one message, decodes it, and routes it to the response or event
// channel according to message_type. Malformed bytes are logged and
// skipped; the packet cannot be retried by the host.
func (e *Engine) readLoop(ctx context.Context) error {
	for !e.stopped.Load() {
		readCtx, cancel := context.WithTimeout(ctx, e.readTimeout)
		raw, err := e.transport.ReadMessage(readCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			e.logger.Printf("jcm: session %s: read error: %v", e.id, err)
			continue
		}
		msg, err := jcm.MessageFromBytes(raw)
		if err != nil {
			e.logger.Printf("jcm: session %s: decode error: %v", e.id, err)
			continue
		}
		if msg.Data.MessageType.IsEvent() {
			select {
			case e.eventCh <- msg.Data:
			case <-ctx.Done():
				return nil
			}
			continue
		}
		select {
		case e.responseCh <- msg.Data:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// ackWriteLoop writes event acknowledgements in the exact order they were
// enqueued, preserving the device's rolling-sequence contract.
func (e *Engine) ackWriteLoop(ctx context.Context) error {
	for {
		select {
		case ack := <-e.ackCh:
			if err := e.writeLocked(ctx, jcm.Message{Data: ack}.Bytes()); err != nil {
				e.logger.Printf("jcm: session %s: ack write error: %v", e.id, err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// writeLocked serializes all transport writes (requests and event acks)
// behind the single write mutex, guaranteeing at most one outstanding
// host-initiated write at any time.
func (e *Engine) writeLocked(ctx context.Context, data []byte) error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	writeCtx, cancel := context.WithTimeout(ctx, e.writeTimeout)
	defer cancel()
	return e.transport.WriteMessage(writeCtx, data)
}

// powerUpHandshake consumes events directly for up to 3 seconds,
// acknowledging each one, and reports failure iff zero power-up events
// arrived in that window.
func (e *Engine) powerUpHandshake(ctx context.Context) error {
	deadline := time.NewTimer(powerUpWindow)
	defer deadline.Stop()

	seen := 0
	for {
		select {
		case event := <-e.eventCh:
			if isPowerUpEvent(event.Code) {
				seen++
			}
			if err := e.AckEvent(ctx, event); err != nil {
				e.logger.Printf("jcm: session %s: handshake ack error: %v", e.id, err)
			}
		case <-deadline.C:
			if seen == 0 {
				e.metrics.RecordHandshake("timeout")
				return ErrPowerUpTimeout
			}
			e.metrics.RecordHandshake("ok")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func isPowerUpEvent(code jcm.MessageCode) bool {
	if !code.IsEvent() {
		return false
	}
	switch code.Event {
	case jcm.EventPowerUp, jcm.EventPowerUpAcceptor, jcm.EventPowerUpStacker,
		jcm.EventPowerUpAcceptorAccepting, jcm.EventPowerUpStackerAccepting:
		return true
	default:
		return false
	}
}

// Request sends a request's MessageData and waits for the response whose
// request code matches, retrying on timeout, write error, or opcode
// mismatch up to the configured retry budget. A mismatched response is
// logged and discarded; the retry counter advances.
func (e *Engine) Request(ctx context.Context, req jcm.MessageData) (jcm.MessageData, error) {
	if e.stopped.Load() {
		return jcm.MessageData{}, ErrStopped
	}
	data := jcm.Message{Data: req}.Bytes()

	var lastErr error
	for attempt := 0; attempt <= e.retryBudget; attempt++ {
		if attempt > 0 {
			e.metrics.RecordRetry()
		}
		if err := e.writeLocked(ctx, data); err != nil {
			lastErr = &TransportError{Op: "write", Err: err}
			continue
		}
		resp, err := e.awaitResponse(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		e.metrics.RecordRequest("ok")
		e.recordResponseMetrics(resp)
		return resp, nil
	}
	e.metrics.RecordRequest("exhausted")
	return jcm.MessageData{}, lastErr
}

// recordResponseMetrics inspects a matched response, feeding the
// domain-specific gauges (near-full count, cash box size) that a plain
// request/retry/event-ack count can't capture, and stashing the latest
// StatusResponse so BillAcceptorState can derive from it later. Decode
// failures are not request failures — the caller already has the raw
// response — so they are logged and otherwise ignored.
func (e *Engine) recordResponseMetrics(resp jcm.MessageData) {
	if resp.Code.IsEvent() {
		return
	}
	switch resp.Code.Request {
	case jcm.RequestNearFull:
		nearFull, err := jcm.NearFullResponseFromMessageData(resp)
		if err != nil {
			e.logger.Printf("jcm: session %s: decode near-full response for metrics: %v", e.id, err)
			return
		}
		if nearFull.Mode == jcm.RequestModeGet && nearFull.Code.IsOk() {
			e.metrics.RecordNearFull(nearFull.Data.Number)
		}
	case jcm.RequestCashBoxSize:
		cashBox, err := jcm.CashBoxSizeResponseFromMessageData(resp)
		if err != nil {
			e.logger.Printf("jcm: session %s: decode cash-box-size response for metrics: %v", e.id, err)
			return
		}
		e.metrics.RecordCashBoxSize(cashBox.Size.Count)
	case jcm.RequestStatus:
		status, err := jcm.StatusResponseFromMessageData(resp)
		if err != nil {
			e.logger.Printf("jcm: session %s: decode status response: %v", e.id, err)
			return
		}
		if status.Code.IsOk() {
			e.statusMu.Lock()
			e.lastStatus = &status
			e.statusMu.Unlock()
		}
	}
}

// BillAcceptorState derives the device's coarse operating state from the
// most recent successful StatusResponse this engine has observed. The
// second return value is false until at least one StatusRequest has
// completed.
func (e *Engine) BillAcceptorState() (jcm.BillAcceptorState, bool) {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	if e.lastStatus == nil {
		return 0, false
	}
	return jcm.DeriveBillAcceptorState(e.lastStatus.Status, e.lastStatus.Units), true
}

func (e *Engine) awaitResponse(ctx context.Context, req jcm.MessageData) (jcm.MessageData, error) {
	waitCtx, cancel := context.WithTimeout(ctx, e.responseTimeout)
	defer cancel()
	for {
		select {
		case resp := <-e.responseCh:
			if resp.MessageType != req.MessageType || resp.Code.IsEvent() || resp.Code.Request != req.Code.Request {
				e.logger.Printf("jcm: session %s: discarding mismatched response %s/%s", e.id, resp.MessageType, resp.Code)
				return jcm.MessageData{}, &jcm.MismatchError{
					ObservedType: resp.MessageType, ObservedCode: resp.Code,
					ExpectedType: req.MessageType, ExpectedCode: req.Code,
				}
			}
			return resp, nil
		case <-waitCtx.Done():
			return jcm.MessageData{}, &TransportError{Op: "response wait", Err: waitCtx.Err()}
		}
	}
}
