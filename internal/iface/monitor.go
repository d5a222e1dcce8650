package iface

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager drives a wireless interface into monitor mode on a channel and
// restores it afterwards. The sequence is strictly linear: down, monitor
// mode, up, channel. Each step must succeed before the next is attempted and
// every failure is terminal; the only compensation is bringing the link back
// up when setting monitor mode fails, so the operator is not left with a
// dead interface.
type Manager struct {
	ctrl   Controller
	settle time.Duration

	iface   string
	monitor bool
	mu      sync.Mutex
}

// NewManager creates a manager. settle is the fixed delay between steps,
// giving the driver time to pick up each state change.
func NewManager(ctrl Controller, settle time.Duration) *Manager {
	return &Manager{ctrl: ctrl, settle: settle}
}

// EnableMonitor runs the four-step configuration sequence on name.
func (m *Manager) EnableMonitor(ctx context.Context, name string, channel int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.iface = name

	if err := m.ctrl.LinkDown(ctx, name); err != nil {
		return fmt.Errorf("bring interface down: %w", err)
	}
	m.pause()

	if err := m.ctrl.SetMonitor(ctx, name); err != nil {
		// Leave the link usable before giving up.
		_ = m.ctrl.LinkUp(ctx, name)
		return fmt.Errorf("set monitor mode: %w", err)
	}
	m.pause()

	if err := m.ctrl.LinkUp(ctx, name); err != nil {
		return fmt.Errorf("bring interface up: %w", err)
	}
	m.pause()

	if err := m.ctrl.SetChannel(ctx, name, channel); err != nil {
		return fmt.Errorf("set channel %d: %w", channel, err)
	}

	m.monitor = true
	return nil
}

// Restore puts the interface back into managed mode. Best effort, for
// operator convenience only.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.monitor || m.iface == "" {
		return
	}

	_ = m.ctrl.LinkDown(ctx, m.iface)
	_ = m.ctrl.SetManaged(ctx, m.iface)
	_ = m.ctrl.LinkUp(ctx, m.iface)
	m.monitor = false
}

// Interface returns the interface the manager was pointed at.
func (m *Manager) Interface() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.iface
}

func (m *Manager) pause() {
	if m.settle > 0 {
		time.Sleep(m.settle)
	}
}
