// pkg/aur/bootstrap.go
package aur

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/daradege/dastore/pkg/task"
)

// BootstrapOptions configures the AUR helper bootstrap.
type BootstrapOptions struct {
	Helper   string // helper package to build (default: yay)
	CloneURL string // override for tests
	BuildDir string // override for tests; a temp dir otherwise
	Runner   *task.Runner
}

// Bootstrap clones the helper's AUR repository and builds and installs it
// with makepkg. The build directory is removed afterwards, also when the
// build fails.
func Bootstrap(ctx context.Context, opts *BootstrapOptions) error {
	if opts == nil {
		opts = &BootstrapOptions{}
	}
	helper := opts.Helper
	if helper == "" {
		helper = DefaultHelper
	}
	cloneURL := opts.CloneURL
	if cloneURL == "" {
		cloneURL = fmt.Sprintf(CloneURLFormat, helper)
	}
	runner := opts.Runner
	if runner == nil {
		runner = &task.Runner{AutoConfirm: true}
	}

	buildDir := opts.BuildDir
	if buildDir == "" {
		tmp, err := os.MkdirTemp("", "dastore-bootstrap-")
		if err != nil {
			return errors.Wrap(err, "creating build directory")
		}
		buildDir = filepath.Join(tmp, helper)
		defer os.RemoveAll(tmp)
	} else {
		defer os.RemoveAll(buildDir)
	}

	if err := runner.Run(ctx, []string{"git", "clone", cloneURL, buildDir}); err != nil {
		return errors.Wrapf(err, "cloning %s", helper)
	}

	build := *runner
	build.Dir = buildDir
	if err := build.Run(ctx, []string{"makepkg", "-si", "--noconfirm"}); err != nil {
		return errors.Wrapf(err, "building %s", helper)
	}
	return nil
}
