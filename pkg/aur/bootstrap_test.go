package aur

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daradege/dastore/pkg/task"
)

// A failed bootstrap must not leave a residual build directory behind.
func TestBootstrapRemovesBuildDirOnFailure(t *testing.T) {
	buildDir := filepath.Join(t.TempDir(), "yay")

	err := Bootstrap(context.Background(), &BootstrapOptions{
		Helper:   "yay",
		CloneURL: "/nonexistent/repo.git",
		BuildDir: buildDir,
		Runner:   &task.Runner{},
	})
	require.Error(t, err)

	_, statErr := os.Stat(buildDir)
	assert.True(t, os.IsNotExist(statErr), "failed bootstrap must not leave a build directory behind")
}
