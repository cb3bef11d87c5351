package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quicktab/internal/backoff"
)

// fakeTransport scripts channel behavior for the monitor.
type fakeTransport struct {
	mu           sync.Mutex
	connectErr   error
	heartbeatErr error
	probeErr     error
	connects     int
	heartbeats   int
	probes       int
	sent         []any
	connectHold  chan struct{} // when set, Connect blocks until closed
}

func (f *fakeTransport) Connect(ctx context.Context) error {
	f.mu.Lock()
	hold := f.connectHold
	f.connects++
	err := f.connectErr
	f.mu.Unlock()
	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *fakeTransport) Heartbeat(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats++
	return f.heartbeatErr
}

func (f *fakeTransport) Probe(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes++
	return f.probeErr
}

func (f *fakeTransport) Send(payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, payload)
	return nil
}

func (f *fakeTransport) Close() error { return nil }

func (f *fakeTransport) setHeartbeatErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeatErr = err
}

func (f *fakeTransport) setProbeErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probeErr = err
}

func (f *fakeTransport) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeTransport) connectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects
}

func newTestMonitor(t *testing.T, tr Transport) *Monitor {
	t.Helper()
	m := NewMonitor(Config{
		ContextID:         "ctx-test",
		Transport:         tr,
		HeartbeatInterval: 10 * time.Millisecond,
		HeartbeatTimeout:  5 * time.Millisecond,
		FailureThreshold:  2,
		FailureWindow:     time.Second,
		ProbeBackoff:      backoff.New(time.Millisecond, 4*time.Millisecond, 0),
		QueueCapacity:     8,
		QueueTTL:          time.Second,
	})
	t.Cleanup(m.Stop)
	return m
}

func waitForState(t *testing.T, m *Monitor, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.State() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("State = %v, want %v", m.State(), want)
}

func TestMonitor_ConnectsOnStart(t *testing.T) {
	tr := &fakeTransport{}
	m := newTestMonitor(t, tr)
	m.Start()
	waitForState(t, m, Connected)
}

func TestMonitor_SingleMissDegradesOnly(t *testing.T) {
	// Scenario: heartbeat fails once, then recovers. The state must walk
	// CONNECTED -> DEGRADED -> CONNECTED and never reach CIRCUIT_OPEN.
	tr := &fakeTransport{}
	m := newTestMonitor(t, tr)

	var mu sync.Mutex
	var visited []State
	m.OnStateChange = func(from, to State) {
		mu.Lock()
		visited = append(visited, to)
		mu.Unlock()
	}

	m.Start()
	waitForState(t, m, Connected)

	tr.setHeartbeatErr(errors.New("missed"))
	waitForState(t, m, Degraded)
	tr.setHeartbeatErr(nil)
	waitForState(t, m, Connected)

	mu.Lock()
	defer mu.Unlock()
	for _, s := range visited {
		if s == CircuitOpen {
			t.Fatalf("Circuit opened on a single miss; transitions: %v", visited)
		}
	}
}

func TestMonitor_ConsecutiveMissesOpenCircuit(t *testing.T) {
	tr := &fakeTransport{}
	m := newTestMonitor(t, tr)
	m.Start()
	waitForState(t, m, Connected)

	tr.setHeartbeatErr(errors.New("gone"))
	tr.setProbeErr(errors.New("still gone"))
	tr.mu.Lock()
	tr.connectErr = errors.New("still gone")
	tr.mu.Unlock()

	waitForState(t, m, CircuitOpen)
}

func TestMonitor_CircuitOpenQueuesAndRecovers(t *testing.T) {
	tr := &fakeTransport{}
	m := newTestMonitor(t, tr)
	m.Start()
	waitForState(t, m, Connected)

	down := errors.New("down")
	tr.setHeartbeatErr(down)
	tr.setProbeErr(down)
	waitForState(t, m, CircuitOpen)

	// Non-critical messages park; critical ones fail loudly.
	if err := m.Send("layout-ping", false); err != nil {
		t.Fatalf("Non-critical send while open: %v", err)
	}
	if err := m.Send("close-window", true); !errors.Is(err, ErrChannelDead) {
		t.Fatalf("Critical send should fail with ErrChannelDead, got %v", err)
	}
	if m.QueueLen() != 1 {
		t.Errorf("QueueLen = %d, want 1", m.QueueLen())
	}

	sentBefore := tr.sentCount()
	tr.setHeartbeatErr(nil)
	tr.setProbeErr(nil)
	waitForState(t, m, Connected)

	// The parked message flushes after reconnect.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && tr.sentCount() == sentBefore {
		time.Sleep(2 * time.Millisecond)
	}
	if tr.sentCount() != sentBefore+1 {
		t.Errorf("Flushed %d messages, want 1", tr.sentCount()-sentBefore)
	}
}

func TestMonitor_SendWhileConnected(t *testing.T) {
	tr := &fakeTransport{}
	m := newTestMonitor(t, tr)
	m.Start()
	waitForState(t, m, Connected)

	if err := m.Send("hello", true); err != nil {
		t.Fatalf("Send while connected failed: %v", err)
	}
	if tr.sentCount() != 1 {
		t.Errorf("Transport saw %d sends, want 1", tr.sentCount())
	}
}

func TestMonitor_ReconnectSingleFlight(t *testing.T) {
	hold := make(chan struct{})
	tr := &fakeTransport{connectHold: hold}
	m := newTestMonitor(t, tr)

	// Concurrent triggers while the first connect is still in flight
	// must not open duplicate channels.
	m.Connect()
	for i := 0; i < 5; i++ {
		go m.Connect()
	}
	time.Sleep(20 * time.Millisecond)
	if got := m.State(); got != Connecting {
		t.Fatalf("State = %v, want Connecting while connect is held", got)
	}
	if tr.connectCount() != 1 {
		t.Errorf("Connect called %d times, want 1", tr.connectCount())
	}

	close(hold)
	waitForState(t, m, Connected)
}
