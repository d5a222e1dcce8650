package iface

import (
	"context"
	"time"
)

// Channels2GHz is the standard 2.4 GHz channel list.
var Channels2GHz = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

// Hopper cycles through channels on a monitor interface. Beacons broadcast on
// all channels, so hopping widens coverage at the cost of dwell time.
type Hopper struct {
	ctrl     Controller
	iface    string
	channels []int
	interval time.Duration
	current  int
	stopCh   chan struct{}
}

// NewHopper creates a channel hopper.
func NewHopper(ctrl Controller, iface string, channels []int, interval time.Duration) *Hopper {
	if len(channels) == 0 {
		channels = Channels2GHz
	}
	if interval == 0 {
		interval = 250 * time.Millisecond
	}
	return &Hopper{
		ctrl:     ctrl,
		iface:    iface,
		channels: channels,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins channel hopping in a goroutine.
func (h *Hopper) Start(ctx context.Context) {
	go h.run(ctx)
}

// Stop halts channel hopping.
func (h *Hopper) Stop() {
	select {
	case h.stopCh <- struct{}{}:
	default:
	}
}

// Current returns the last channel set successfully.
func (h *Hopper) Current() int {
	return h.current
}

func (h *Hopper) run(ctx context.Context) {
	idx := 0
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.stopCh:
			return
		case <-ticker.C:
			channel := h.channels[idx%len(h.channels)]
			if err := h.ctrl.SetChannel(ctx, h.iface, channel); err == nil {
				h.current = channel
			}
			idx++
		}
	}
}
