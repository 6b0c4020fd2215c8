// pkg/core/interface.go
package core

import "context"

// Provider is the common interface over the official repositories and the
// AUR.
type Provider interface {
	// Name returns the provider name (e.g., "pacman", "aur").
	Name() string

	// Search searches for packages matching the query.
	Search(ctx context.Context, query string) ([]*Package, error)

	// Info retrieves detailed information about a package.
	Info(ctx context.Context, name string) (*Package, error)

	// Install installs a package.
	Install(ctx context.Context, names ...string) error

	// Remove removes a package.
	Remove(ctx context.Context, names ...string) error

	// IsAvailable checks whether this provider can be used on this system.
	IsAvailable() bool
}
