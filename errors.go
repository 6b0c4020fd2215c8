// errors.go
package dastore

import (
	"fmt"

	"github.com/daradege/dastore/pkg/aur"
	"github.com/daradege/dastore/pkg/pacman"
	"github.com/daradege/dastore/pkg/setup"
	"github.com/daradege/dastore/pkg/task"
)

// Re-export sentinel errors for convenience
var (
	// ErrNotArch indicates the host is not an Arch-based distribution
	ErrNotArch = setup.ErrNotArch

	// ErrPackageNotFound indicates the package was not found
	ErrPackageNotFound = pacman.ErrPackageNotFound

	// ErrHelperNotInstalled indicates the configured AUR helper is missing
	ErrHelperNotInstalled = aur.ErrHelperNotInstalled

	// ErrAuthRequired indicates a privileged operation could not authenticate
	ErrAuthRequired = task.ErrAuthRequired

	// ErrCancelled indicates the operation was cancelled
	ErrCancelled = task.ErrCancelled
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
