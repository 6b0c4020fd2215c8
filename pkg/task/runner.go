// pkg/task/runner.go
package task

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	// ErrAuthRequired indicates a privileged command could not authenticate.
	ErrAuthRequired = errors.New("authentication required")

	// ErrCancelled indicates the command was cancelled before it finished.
	ErrCancelled = errors.New("operation cancelled")
)

// Runner executes a package transaction command and streams its output,
// translating pacman's chatter into progress updates.
type Runner struct {
	OnProgress ProgressFunc
	OnOutput   OutputFunc

	// AutoConfirm answers pacman's interactive prompts with "Y".
	AutoConfirm bool

	// Dir is the working directory for the command, if set.
	Dir string

	Logger zerolog.Logger
}

// Run executes argv until completion or cancellation. The process runs in
// its own process group so cancellation reaches pkexec/pacman children too.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "opening stdin")
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return errors.Wrap(err, "opening output pipe")
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	r.Logger.Debug().Strs("argv", argv).Msg("running transaction")
	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return errors.Wrapf(err, "starting %s", argv[0])
	}
	pw.Close()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
		case <-done:
		}
	}()

	if r.AutoConfirm {
		// Some pacman prompts appear before we can observe them.
		io.WriteString(stdin, "Y\n")
	}

	authFailed := false
	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if r.OnOutput != nil {
			r.OnOutput(line)
		}

		if strings.Contains(line, "sudo: a password is required") ||
			strings.Contains(line, "sudo: a terminal is required") {
			authFailed = true
			syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
			continue
		}

		lower := strings.ToLower(line)
		if r.AutoConfirm && strings.Contains(lower, "proceed with") {
			io.WriteString(stdin, "Y\n")
		}

		if p, ok := Classify(line); ok && r.OnProgress != nil {
			r.OnProgress(p)
		}
	}

	waitErr := cmd.Wait()
	close(done)
	pr.Close()
	stdin.Close()

	switch {
	case authFailed:
		return ErrAuthRequired
	case ctx.Err() != nil:
		return ErrCancelled
	case waitErr != nil:
		return errors.Wrapf(waitErr, "%s failed", argv[0])
	}
	return nil
}
