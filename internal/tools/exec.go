package tools

import (
	"context"
	"os/exec"
	"strings"
)

// RunCapture executes a command and returns its combined output.
func RunCapture(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// RunSilent executes a command and discards output.
func RunSilent(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Run()
}
