package deps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Output waits for the output pipes once the tool
// has exited or its context is done. A tool that forks a child holding
// stdout open would otherwise block past the probe timeout.
const waitDelay = time.Second

// Runner locates and executes external tools.
type Runner interface {
	LookPath(name string) (string, error)
	// Output runs path with args and returns stdout and stderr combined.
	Output(ctx context.Context, path string, args ...string) ([]byte, error)
}

// ExecRunner runs tools through os/exec.
type ExecRunner struct{}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) Output(ctx context.Context, path string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = waitDelay
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return out, fmt.Errorf("%s %s: %w", path, strings.Join(args, " "), ctx.Err())
	}
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", path, strings.Join(args, " "), err)
	}
	return out, nil
}
