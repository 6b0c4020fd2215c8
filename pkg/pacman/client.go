// pkg/pacman/client.go
package pacman

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// Client runs short-lived query commands and captures their output.
// Long-running transactions go through task.Runner instead.
type Client struct {
	timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	return &Client{timeout: timeout}
}

// Output runs argv and returns its stdout. Stderr is folded into the error.
func (c *Client) Output(ctx context.Context, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(cmd.Environ(), "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return stdout.String(), errors.Wrapf(err, "%s: %s", argv[0], msg)
		}
		return stdout.String(), errors.Wrapf(err, "running %s", argv[0])
	}
	return stdout.String(), nil
}

// ExitCode runs argv and returns its exit code along with stdout. Some tools
// (checkupdates) use non-zero exit codes as part of their contract.
func (c *Client) ExitCode(ctx context.Context, argv ...string) (string, int, error) {
	out, err := c.Output(ctx, argv...)
	if err == nil {
		return out, 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, exitErr.ExitCode(), nil
	}
	return out, -1, err
}
