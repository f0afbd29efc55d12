// Package connectivity tracks whether the remote catalog source is
// reachable and emits transition events so the browser can refresh as
// soon as the network comes back.
package connectivity

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"
)

// DefaultProbeAddr is dialed to decide online/offline when no probe is
// configured. A plain TCP connect is enough; we never send traffic.
const DefaultProbeAddr = "1.1.1.1:53"

// DefaultInterval is how often the monitor re-probes.
const DefaultInterval = 15 * time.Second

// ProbeFunc reports reachability at one instant.
type ProbeFunc func(ctx context.Context) bool

// TCPProbe returns a probe that dials addr with the given timeout.
func TCPProbe(addr string, timeout time.Duration) ProbeFunc {
	return func(ctx context.Context) bool {
		d := net.Dialer{Timeout: timeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}
}

// Monitor polls a probe and publishes offline/online transitions. Event
// delivery is best-effort: a slow consumer misses intermediate edges but
// Online() always reflects the latest probe.
type Monitor struct {
	probe    ProbeFunc
	interval time.Duration

	mu      sync.Mutex
	online  bool
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	events chan bool
}

// NewMonitor builds a monitor around probe. Zero interval selects the
// default.
func NewMonitor(probe ProbeFunc, interval time.Duration) *Monitor {
	if probe == nil {
		probe = TCPProbe(DefaultProbeAddr, 2*time.Second)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		probe:    probe,
		interval: interval,
		events:   make(chan bool, 8),
	}
}

// Start performs an immediate probe to set the initial state and then
// polls until ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	m.online = m.probe(ctx)
	m.mu.Unlock()

	go m.watch(ctx)
}

// Stop halts polling. The events channel stays open; it simply goes
// quiet.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.started = false
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (m *Monitor) watch(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.update(m.probe(ctx))
		}
	}
}

func (m *Monitor) update(online bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	m.mu.Unlock()

	if !changed {
		return
	}

	slog.Info("Connectivity changed", "online", online)
	select {
	case m.events <- online:
	default:
		// Consumer is behind; Online() still carries the truth.
	}
}

// Online reports the most recent probe result.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Events returns the transition stream (true = came online).
func (m *Monitor) Events() <-chan bool {
	return m.events
}

// Static is a fixed connectivity state with no transitions, used by
// one-shot CLI commands and tests.
type Static bool

// Online implements the connectivity interface.
func (s Static) Online() bool { return bool(s) }

// Events returns a channel that never fires.
func (s Static) Events() <-chan bool { return nil }
