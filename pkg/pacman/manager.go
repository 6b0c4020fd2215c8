// pkg/pacman/manager.go
package pacman

import (
	"context"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/task"
)

// ErrPackageNotFound indicates pacman knows nothing about the package.
var ErrPackageNotFound = errors.New("package not found")

func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Escalate == "" {
		cfg.Escalate = DefaultEscalate
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.LogPath == "" {
		cfg.LogPath = LogPath
	}
	if cfg.ConfPath == "" {
		cfg.ConfPath = ConfPath
	}

	return &Manager{
		config: cfg,
		client: NewClient(cfg.Timeout),
		runner: &task.Runner{AutoConfirm: true, Logger: cfg.Logger},
		logger: cfg.Logger,
	}
}

// Runner exposes the transaction runner so callers can attach progress and
// output callbacks.
func (m *Manager) Runner() *task.Runner {
	return m.runner
}

func (m *Manager) Name() string {
	return "pacman"
}

// IsAvailable checks whether pacman exists on this system.
func (m *Manager) IsAvailable() bool {
	_, err := exec.LookPath(m.config.Command)
	return err == nil
}

// Search queries the sync databases with `pacman -Ss`.
func (m *Manager) Search(ctx context.Context, query string) ([]*core.Package, error) {
	out, code, err := m.client.ExitCode(ctx, m.config.Command, "-Ss", query)
	if err != nil {
		return nil, errors.Wrap(err, "searching repositories")
	}
	// pacman -Ss exits 1 when nothing matches
	if code != 0 {
		return nil, nil
	}
	return ParseSearch(out), nil
}

// Info retrieves package details, trying the sync databases first and
// falling back to the local database for packages that are installed but no
// longer in any repository.
func (m *Manager) Info(ctx context.Context, name string) (*core.Package, error) {
	out, err := m.client.Output(ctx, m.config.Command, "-Si", name)
	if err != nil {
		out, err = m.client.Output(ctx, m.config.Command, "-Qi", name)
		if err != nil {
			return nil, errors.Wrapf(ErrPackageNotFound, "%s", name)
		}
	}

	pkg := &core.Package{Name: name}
	ApplyInfo(pkg, ParseInfoFields(out))
	pkg.Installed = m.isInstalled(ctx, name)
	return pkg, nil
}

func (m *Manager) isInstalled(ctx context.Context, name string) bool {
	_, code, err := m.client.ExitCode(ctx, m.config.Command, "-Q", name)
	return err == nil && code == 0
}

// Installed lists all installed packages from `pacman -Qi`.
func (m *Manager) Installed(ctx context.Context) ([]*core.Package, error) {
	out, err := m.client.Output(ctx, m.config.Command, "-Qi")
	if err != nil {
		return nil, errors.Wrap(err, "listing installed packages")
	}
	return ParseInstalled(out), nil
}

// LargestPackages returns the n largest installed packages by installed
// size.
func (m *Manager) LargestPackages(ctx context.Context, n int) ([]*core.Package, error) {
	packages, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(packages, func(i, j int) bool {
		a, _ := task.ParseSize(packages[i].InstalledSize)
		b, _ := task.ParseSize(packages[j].InstalledSize)
		return a > b
	})
	if n > 0 && len(packages) > n {
		packages = packages[:n]
	}
	return packages, nil
}

// Updates lists pending updates via checkupdates. checkupdates exits 2 when
// the system is up to date.
func (m *Manager) Updates(ctx context.Context) ([]core.Update, error) {
	out, code, err := m.client.ExitCode(ctx, CheckUpdatesCommand)
	if err != nil {
		return nil, errors.Wrap(err, "checking updates")
	}
	switch code {
	case 0:
		return ParseUpdates(out), nil
	case 2:
		return nil, nil
	default:
		return nil, errors.Errorf("checkupdates exited with %d", code)
	}
}

// Install installs packages, streaming transaction progress through the
// runner.
func (m *Manager) Install(ctx context.Context, names ...string) error {
	return m.transaction(ctx, append([]string{"-S", "--needed"}, names...)...)
}

// Remove removes packages.
func (m *Manager) Remove(ctx context.Context, names ...string) error {
	return m.transaction(ctx, append([]string{"-R"}, names...)...)
}

// Upgrade performs a full system upgrade (`pacman -Syu`).
func (m *Manager) Upgrade(ctx context.Context) error {
	return m.transaction(ctx, "-Syu")
}

// Refresh re-synchronizes the package databases (`pacman -Sy`).
func (m *Manager) Refresh(ctx context.Context) error {
	return m.transaction(ctx, "-Sy")
}

// CleanCache removes all cached package files (`pacman -Scc`).
func (m *Manager) CleanCache(ctx context.Context) error {
	return m.transaction(ctx, "-Scc")
}

func (m *Manager) transaction(ctx context.Context, args ...string) error {
	argv := []string{m.config.Command}
	if os.Geteuid() != 0 && m.config.Escalate != "" {
		argv = append([]string{m.config.Escalate}, argv...)
	}
	argv = append(argv, args...)
	if m.config.NoConfirm {
		argv = append(argv, "--noconfirm")
	}
	return m.runner.Run(ctx, argv)
}

// History lists recent package installations from pacman.log.
func (m *Manager) History(limit int) ([]core.HistoryEntry, error) {
	data, err := os.ReadFile(m.config.LogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading pacman log")
	}
	return ParseHistory(string(data), limit), nil
}

// Repositories lists the repositories enabled in pacman.conf.
func (m *Manager) Repositories() ([]string, error) {
	data, err := os.ReadFile(m.config.ConfPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading pacman.conf")
	}
	return ParseRepositories(string(data)), nil
}
