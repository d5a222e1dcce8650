package iface

import (
	"context"
	"fmt"

	"github.com/ridwatch/ridwatch/internal/tools"
)

// Controller is the capability interface over the OS wireless tooling. The
// monitor-mode sequencing in Manager only talks to this, so it can run
// against a fake in tests.
type Controller interface {
	LinkDown(ctx context.Context, name string) error
	LinkUp(ctx context.Context, name string) error
	SetMonitor(ctx context.Context, name string) error
	SetManaged(ctx context.Context, name string) error
	SetChannel(ctx context.Context, name string, channel int) error
}

// ExecController drives the interface with ip/iw, falling back to iwconfig
// for drivers that never grew nl80211 support.
type ExecController struct{}

func NewExecController() *ExecController {
	return &ExecController{}
}

func (c *ExecController) LinkDown(ctx context.Context, name string) error {
	if out, err := tools.RunCapture(ctx, "ip", "link", "set", name, "down"); err != nil {
		return fmt.Errorf("ip link set %s down: %w: %s", name, err, out)
	}
	return nil
}

func (c *ExecController) LinkUp(ctx context.Context, name string) error {
	if out, err := tools.RunCapture(ctx, "ip", "link", "set", name, "up"); err != nil {
		return fmt.Errorf("ip link set %s up: %w: %s", name, err, out)
	}
	return nil
}

func (c *ExecController) SetMonitor(ctx context.Context, name string) error {
	return c.setType(ctx, name, "monitor")
}

func (c *ExecController) SetManaged(ctx context.Context, name string) error {
	return c.setType(ctx, name, "managed")
}

func (c *ExecController) setType(ctx context.Context, name, mode string) error {
	if _, err := tools.RunCapture(ctx, "iw", "dev", name, "set", "type", mode); err != nil {
		if _, err2 := tools.RunCapture(ctx, "iwconfig", name, "mode", mode); err2 != nil {
			return fmt.Errorf("set %s mode on %s: %w (iwconfig fallback: %w)", mode, name, err, err2)
		}
	}
	return nil
}

func (c *ExecController) SetChannel(ctx context.Context, name string, channel int) error {
	ch := fmt.Sprintf("%d", channel)
	if _, err := tools.RunCapture(ctx, "iwconfig", name, "channel", ch); err != nil {
		if _, err2 := tools.RunCapture(ctx, "iw", "dev", name, "set", "channel", ch); err2 != nil {
			return fmt.Errorf("set channel %d on %s: %w (iw fallback: %w)", channel, name, err, err2)
		}
	}
	return nil
}
