// dastore.go
package dastore

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/daradege/dastore/pkg/aur"
	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/pacman"
	"github.com/daradege/dastore/pkg/queue"
)

// Version is the dastore release version.
const Version = "1.0.0"

// Both providers satisfy the common provider interface.
var (
	_ core.Provider = (*pacman.Manager)(nil)
	_ core.Provider = (*aur.Provider)(nil)
)

// Re-export core types for convenience
type (
	Package      = core.Package
	Config       = core.Config
	Update       = core.Update
	HistoryEntry = core.HistoryEntry
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager is the Dastore package manager: the official repositories and the
// AUR behind one interface, plus the install queue.
type Manager struct {
	Pacman *pacman.Manager
	AUR    *aur.Provider
	Queue  *queue.Queue

	logger zerolog.Logger
}

// NewManager wires up a manager from configuration. The persisted install
// queue is restored when present.
func NewManager(cfg *core.Config, logger zerolog.Logger) *Manager {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	q, err := queue.Load("")
	if err != nil {
		logger.Warn().Err(err).Msg("could not restore install queue")
		q = queue.New()
	}

	return &Manager{
		Pacman: pacman.NewManager(&pacman.Config{
			Escalate:  cfg.Escalate,
			NoConfirm: cfg.NoConfirm,
			Logger:    logger,
		}),
		AUR: aur.NewProvider(&aur.Config{
			Helper:    cfg.AURHelper,
			NoConfirm: cfg.NoConfirm,
			Logger:    logger,
		}),
		Queue:  q,
		logger: logger,
	}
}

// Search queries the official repositories and the AUR concurrently, then
// merges, deduplicates and ranks the results. One source failing is
// tolerated as long as the other answers.
func (m *Manager) Search(ctx context.Context, query string) ([]*core.Package, error) {
	var (
		mu       sync.Mutex
		all      []*core.Package
		firstErr error
	)
	collect := func(pkgs []*core.Package, err error, source string) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			m.logger.Debug().Err(err).Str("source", source).Msg("search failed")
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		all = append(all, pkgs...)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pkgs, err := m.Pacman.Search(ctx, query)
		collect(pkgs, err, "pacman")
		return nil
	})
	g.Go(func() error {
		pkgs, err := m.AUR.Search(ctx, query)
		collect(pkgs, err, "aur")
		return nil
	})
	g.Wait()

	if len(all) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return core.Rank(all, query), nil
}

// Info retrieves package details, preferring the official repositories and
// falling back to the AUR.
func (m *Manager) Info(ctx context.Context, name string) (*core.Package, error) {
	pkg, err := m.Pacman.Info(ctx, name)
	if err == nil {
		return pkg, nil
	}
	return m.AUR.Info(ctx, name)
}

// Install installs a mixed set of packages: official-repository packages in
// one pacman transaction, AUR packages in one helper run.
func (m *Manager) Install(ctx context.Context, packages ...*core.Package) error {
	var official, fromAUR []string
	for _, p := range packages {
		if p.FromAUR() {
			fromAUR = append(fromAUR, p.Name)
		} else {
			official = append(official, p.Name)
		}
	}

	if len(official) > 0 {
		if err := m.Pacman.Install(ctx, official...); err != nil {
			return err
		}
	}
	if len(fromAUR) > 0 {
		if err := m.AUR.Install(ctx, fromAUR...); err != nil {
			return err
		}
	}
	return nil
}

// InstallQueue installs everything in the queue and clears it on success.
func (m *Manager) InstallQueue(ctx context.Context) error {
	items := m.Queue.Items()
	if len(items) == 0 {
		return nil
	}
	if err := m.Install(ctx, items...); err != nil {
		return err
	}
	m.Queue.Clear()
	return m.Queue.Save("")
}
