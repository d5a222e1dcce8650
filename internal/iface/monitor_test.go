package iface

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeController records every call and fails the operations listed in fail.
type fakeController struct {
	calls []string
	fail  map[string]error
}

func newFakeController() *fakeController {
	return &fakeController{fail: make(map[string]error)}
}

func (f *fakeController) record(op string) error {
	f.calls = append(f.calls, op)
	return f.fail[op]
}

func (f *fakeController) LinkDown(_ context.Context, name string) error {
	return f.record("down " + name)
}

func (f *fakeController) LinkUp(_ context.Context, name string) error {
	return f.record("up " + name)
}

func (f *fakeController) SetMonitor(_ context.Context, name string) error {
	return f.record("monitor " + name)
}

func (f *fakeController) SetManaged(_ context.Context, name string) error {
	return f.record("managed " + name)
}

func (f *fakeController) SetChannel(_ context.Context, name string, channel int) error {
	return f.record(fmt.Sprintf("channel %s %d", name, channel))
}

func TestEnableMonitorSequence(t *testing.T) {
	ctrl := newFakeController()
	mgr := NewManager(ctrl, 0)

	err := mgr.EnableMonitor(context.Background(), "wlan1", 6)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"down wlan1",
		"monitor wlan1",
		"up wlan1",
		"channel wlan1 6",
	}, ctrl.calls)
}

func TestEnableMonitorDownFails(t *testing.T) {
	ctrl := newFakeController()
	ctrl.fail["down wlan1"] = errors.New("device busy")
	mgr := NewManager(ctrl, 0)

	err := mgr.EnableMonitor(context.Background(), "wlan1", 6)
	require.Error(t, err)

	// No further operation is attempted after a failed step.
	assert.Equal(t, []string{"down wlan1"}, ctrl.calls)
}

func TestEnableMonitorModeFailsCompensates(t *testing.T) {
	ctrl := newFakeController()
	ctrl.fail["monitor wlan1"] = errors.New("operation not supported")
	mgr := NewManager(ctrl, 0)

	err := mgr.EnableMonitor(context.Background(), "wlan1", 6)
	require.Error(t, err)

	// The link is brought back up exactly once, then the run is over.
	assert.Equal(t, []string{"down wlan1", "monitor wlan1", "up wlan1"}, ctrl.calls)
}

func TestEnableMonitorUpFails(t *testing.T) {
	ctrl := newFakeController()
	ctrl.fail["up wlan0"] = errors.New("no such device")
	mgr := NewManager(ctrl, 0)

	err := mgr.EnableMonitor(context.Background(), "wlan0", 6)
	require.Error(t, err)

	assert.Equal(t, []string{"down wlan0", "monitor wlan0", "up wlan0"}, ctrl.calls)
}

func TestEnableMonitorChannelFails(t *testing.T) {
	ctrl := newFakeController()
	ctrl.fail["channel wlan1 6"] = errors.New("invalid argument")
	mgr := NewManager(ctrl, 0)

	err := mgr.EnableMonitor(context.Background(), "wlan1", 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel")
}

func TestRestore(t *testing.T) {
	ctrl := newFakeController()
	mgr := NewManager(ctrl, 0)

	require.NoError(t, mgr.EnableMonitor(context.Background(), "wlan1", 6))
	ctrl.calls = nil

	mgr.Restore(context.Background())
	assert.Equal(t, []string{"down wlan1", "managed wlan1", "up wlan1"}, ctrl.calls)

	// Restoring twice is a no-op.
	ctrl.calls = nil
	mgr.Restore(context.Background())
	assert.Empty(t, ctrl.calls)
}

func TestRestoreWithoutEnable(t *testing.T) {
	ctrl := newFakeController()
	mgr := NewManager(ctrl, 0)

	mgr.Restore(context.Background())
	assert.Empty(t, ctrl.calls, "nothing to restore before monitor mode was enabled")
}
