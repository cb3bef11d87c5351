package health

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"quicktab/internal/backoff"
)

var (
	// ErrChannelDead is returned for critical sends while no channel is
	// usable.
	ErrChannelDead = errors.New("message channel dead")
	// ErrChannelTimeout marks a heartbeat that missed its deadline.
	ErrChannelTimeout = errors.New("heartbeat timeout")
)

// State is the connection-health state.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Degraded
	CircuitOpen
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	case Degraded:
		return "DEGRADED"
	case CircuitOpen:
		return "CIRCUIT_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Transport is the channel the monitor manages. Connect must establish
// the channel; Heartbeat must complete one round trip; Probe is the cheap
// liveness check used while the circuit is open.
type Transport interface {
	Connect(ctx context.Context) error
	Heartbeat(ctx context.Context) error
	Probe(ctx context.Context) error
	Send(payload any) error
	Close() error
}

// Config assembles a Monitor. The heartbeat interval must leave generous
// margin under the host's idle-termination window: a host that recycles
// idle processes after ~30s needs an interval of 15s or less.
type Config struct {
	ContextID         string
	Transport         Transport
	HeartbeatInterval time.Duration // default 10s
	HeartbeatTimeout  time.Duration // default 2s
	FailureThreshold  int           // consecutive misses to open the circuit, default 2
	FailureWindow     time.Duration // misses must fall inside this window, default 60s
	ProbeBackoff      backoff.Policy
	QueueCapacity     int
	QueueTTL          time.Duration
}

// Monitor drives the connection-health state machine for one context.
type Monitor struct {
	cfg   Config
	queue *OfflineQueue

	// OnStateChange, when set, observes every transition. Called outside
	// the monitor's lock.
	OnStateChange func(from, to State)

	mu             sync.Mutex
	state          State
	failures       int
	firstFailureAt time.Time
	probeAttempt   int
	nextAttemptAt  time.Time

	reconnecting atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a monitor in the Disconnected state.
func NewMonitor(cfg Config) *Monitor {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 10 * time.Second
	}
	if cfg.HeartbeatTimeout <= 0 {
		cfg.HeartbeatTimeout = 2 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 2
	}
	if cfg.FailureWindow <= 0 {
		cfg.FailureWindow = 60 * time.Second
	}
	if cfg.ProbeBackoff == (backoff.Policy{}) {
		cfg.ProbeBackoff = backoff.New(200*time.Millisecond, 5*time.Second, 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		cfg:    cfg,
		queue:  NewOfflineQueue(cfg.QueueCapacity, cfg.QueueTTL),
		state:  Disconnected,
		ctx:    ctx,
		cancel: cancel,
	}
}

// State returns the current connection state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// QueueLen returns the number of messages parked for the circuit-open
// period.
func (m *Monitor) QueueLen() int {
	return m.queue.Len()
}

// Start begins the heartbeat/probe loop and triggers the first connect.
func (m *Monitor) Start() {
	m.Connect()
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.ctx.Done():
				return
			case <-ticker.C:
				m.tick()
			}
		}
	}()
}

// Stop halts the loops and closes the transport.
func (m *Monitor) Stop() {
	m.cancel()
	m.wg.Wait()
	m.cfg.Transport.Close()
}

// Connect requests a reconnect. Safe to call from any goroutine at any
// time; the single-flight guard collapses concurrent triggers.
func (m *Monitor) Connect() {
	m.mu.Lock()
	switch m.state {
	case Connected, Connecting:
		m.mu.Unlock()
		return
	default:
	}
	m.mu.Unlock()
	m.reconnect()
}

// Send delivers a message when a channel is usable. While it is not,
// critical messages fail with ErrChannelDead and the rest park in the
// offline queue for the flush that follows reconnection.
func (m *Monitor) Send(payload any, critical bool) error {
	m.mu.Lock()
	state := m.state
	m.mu.Unlock()

	switch state {
	case Connected, Degraded:
		return m.cfg.Transport.Send(payload)
	default:
		if critical {
			return ErrChannelDead
		}
		if m.queue.Push(payload) {
			log.Printf("[%s] Offline queue overflow, dropped oldest message", m.cfg.ContextID)
		}
		return nil
	}
}

// tick runs one scheduling round.
func (m *Monitor) tick() {
	m.mu.Lock()
	state := m.state
	ready := time.Now().After(m.nextAttemptAt)
	m.mu.Unlock()

	switch state {
	case Connected, Degraded:
		m.heartbeat()
	case CircuitOpen:
		if ready {
			m.probe()
		}
	case Disconnected:
		if ready {
			m.reconnect()
		}
	case Connecting:
		// A reconnect is in flight; nothing to schedule.
	}
}

// heartbeat runs one round trip and applies the degrade/recover rules.
func (m *Monitor) heartbeat() {
	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.HeartbeatTimeout)
	err := m.cfg.Transport.Heartbeat(ctx)
	cancel()

	m.mu.Lock()
	if err == nil {
		m.failures = 0
		if m.state == Degraded {
			m.transitionLocked(Connected)
			log.Printf("[%s] Heartbeat recovered", m.cfg.ContextID)
		}
		m.mu.Unlock()
		return
	}

	now := time.Now()
	// A miss outside the window starts a fresh run rather than
	// accumulating forever.
	if m.failures == 0 || now.Sub(m.firstFailureAt) > m.cfg.FailureWindow {
		m.failures = 0
		m.firstFailureAt = now
	}
	m.failures++
	log.Printf("[%s] Heartbeat miss %d/%d: %v", m.cfg.ContextID, m.failures, m.cfg.FailureThreshold, err)

	switch m.state {
	case Connected:
		// Grace: a single miss never opens the circuit.
		m.transitionLocked(Degraded)
	case Degraded:
		if m.failures >= m.cfg.FailureThreshold {
			m.probeAttempt = 0
			m.nextAttemptAt = now.Add(m.cfg.ProbeBackoff.Delay(0))
			m.transitionLocked(CircuitOpen)
		}
	}
	m.mu.Unlock()
}

// probe runs the cheap circuit-open liveness check.
func (m *Monitor) probe() {
	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.HeartbeatTimeout)
	err := m.cfg.Transport.Probe(ctx)
	cancel()

	if err == nil {
		log.Printf("[%s] Probe succeeded, reconnecting", m.cfg.ContextID)
		m.reconnect()
		return
	}

	m.mu.Lock()
	m.probeAttempt++
	m.nextAttemptAt = time.Now().Add(m.cfg.ProbeBackoff.Delay(m.probeAttempt))
	m.mu.Unlock()
}

// reconnect opens the channel under the single-flight guard and promotes
// to Connected only after the first heartbeat round trip succeeds.
func (m *Monitor) reconnect() {
	if !m.reconnecting.CompareAndSwap(false, true) {
		return
	}

	m.mu.Lock()
	from := m.state
	m.transitionLocked(Connecting)
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.reconnecting.Store(false)

		ctx, cancel := context.WithTimeout(m.ctx, m.cfg.HeartbeatTimeout+m.cfg.HeartbeatInterval)
		defer cancel()

		err := m.cfg.Transport.Connect(ctx)
		if err == nil {
			hbCtx, hbCancel := context.WithTimeout(m.ctx, m.cfg.HeartbeatTimeout)
			err = m.cfg.Transport.Heartbeat(hbCtx)
			hbCancel()
		}

		m.mu.Lock()
		if err != nil {
			m.probeAttempt++
			m.nextAttemptAt = time.Now().Add(m.cfg.ProbeBackoff.Delay(m.probeAttempt))
			// A failed attempt returns to where it came from so the
			// circuit state is not forgotten.
			if from == CircuitOpen {
				m.transitionLocked(CircuitOpen)
			} else {
				m.transitionLocked(Disconnected)
			}
			m.mu.Unlock()
			log.Printf("[%s] Reconnect failed: %v", m.cfg.ContextID, err)
			return
		}

		m.failures = 0
		m.probeAttempt = 0
		m.transitionLocked(Connected)
		m.mu.Unlock()

		m.flush()
	}()
}

// flush replays messages parked while the circuit was open.
func (m *Monitor) flush() {
	for _, payload := range m.queue.Drain() {
		if err := m.cfg.Transport.Send(payload); err != nil {
			log.Printf("[%s] Flush send failed: %v", m.cfg.ContextID, err)
			return
		}
	}
}

// transitionLocked moves the state machine. Caller holds m.mu.
func (m *Monitor) transitionLocked(to State) {
	from := m.state
	if from == to {
		return
	}
	m.state = to
	log.Printf("[%s] Connection %s -> %s", m.cfg.ContextID, from, to)
	if cb := m.OnStateChange; cb != nil {
		go cb(from, to)
	}
}
