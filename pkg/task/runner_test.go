package task

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerStreamsOutput(t *testing.T) {
	var lines []string
	r := &Runner{OnOutput: func(line string) { lines = append(lines, line) }}

	err := r.Run(context.Background(), []string{"sh", "-c", "echo one; echo two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestRunnerReportsProgress(t *testing.T) {
	var updates []Progress
	r := &Runner{OnProgress: func(p Progress) { updates = append(updates, p) }}

	err := r.Run(context.Background(), []string{"sh", "-c",
		"echo ':: resolving dependencies...'; echo 'installing foo (50%)'"})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "Resolving dependencies", updates[0].Status)
	assert.Equal(t, "Installing", updates[1].Status)
}

func TestRunnerCommandFailure(t *testing.T) {
	r := &Runner{}
	err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	assert.Error(t, err)
}

func TestRunnerAuthFailure(t *testing.T) {
	r := &Runner{}
	err := r.Run(context.Background(), []string{"sh", "-c",
		"echo 'sudo: a password is required'; sleep 5"})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{OnOutput: func(line string) {
		if line == "started" {
			cancel()
		}
	}}

	start := time.Now()
	err := r.Run(ctx, []string{"sh", "-c", "echo started; sleep 10"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunnerEmptyCommand(t *testing.T) {
	r := &Runner{}
	assert.Error(t, r.Run(context.Background(), nil))
}

func TestRunnerWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	var got string
	r := &Runner{Dir: dir, OnOutput: func(line string) { got = line }}

	err := r.Run(context.Background(), []string{"pwd"})
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
