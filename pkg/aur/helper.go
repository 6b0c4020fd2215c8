// pkg/aur/helper.go
package aur

import (
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/pacman"
	"github.com/daradege/dastore/pkg/task"
)

// ErrHelperNotInstalled indicates the configured AUR helper is missing from
// the system.
var ErrHelperNotInstalled = errors.New("AUR helper not installed")

// Config configures the AUR provider.
type Config struct {
	Helper    string        // helper command (default: yay)
	RPCURL    string        // AUR RPC endpoint for helper-less queries
	NoConfirm bool          // pass --noconfirm to the helper
	Timeout   time.Duration // timeout for query commands
	Logger    zerolog.Logger
}

// Provider serves AUR queries and installs. Queries go through the helper
// when present and fall back to the AUR RPC; installs always need the
// helper, since makepkg refuses to run as root and dastore does not build
// packages itself.
type Provider struct {
	config *Config
	client *pacman.Client
	rpc    *RPCClient
	runner *task.Runner
	logger zerolog.Logger
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Helper == "" {
		cfg.Helper = DefaultHelper
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultRPCURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Provider{
		config: cfg,
		client: pacman.NewClient(cfg.Timeout),
		rpc:    NewRPCClient(cfg.RPCURL, cfg.Timeout),
		runner: &task.Runner{AutoConfirm: true, Logger: cfg.Logger},
		logger: cfg.Logger,
	}
}

// Runner exposes the transaction runner so callers can attach progress and
// output callbacks.
func (p *Provider) Runner() *task.Runner {
	return p.runner
}

func (p *Provider) Name() string {
	return "aur"
}

// IsAvailable reports whether the configured helper is on PATH.
func (p *Provider) IsAvailable() bool {
	_, err := exec.LookPath(p.config.Helper)
	return err == nil
}

// Search queries the AUR, through the helper when installed and through the
// RPC otherwise.
func (p *Provider) Search(ctx context.Context, query string) ([]*core.Package, error) {
	if !p.IsAvailable() {
		return p.rpc.Search(ctx, query)
	}

	out, err := p.client.Output(ctx, p.config.Helper, "-Ss", "--aur", query)
	if err != nil {
		p.logger.Debug().Err(err).Msg("helper search failed, falling back to RPC")
		return p.rpc.Search(ctx, query)
	}
	return ParseSearch(out), nil
}

// Info retrieves detailed package information from the AUR.
func (p *Provider) Info(ctx context.Context, name string) (*core.Package, error) {
	if !p.IsAvailable() {
		return p.rpc.Info(ctx, name)
	}

	out, err := p.client.Output(ctx, p.config.Helper, "-Si", name)
	if err != nil {
		return p.rpc.Info(ctx, name)
	}

	pkg := &core.Package{Name: name, Repository: core.RepoAUR}
	pacman.ApplyInfo(pkg, pacman.ParseInfoFields(out))
	pkg.Repository = core.RepoAUR
	return pkg, nil
}

// Install builds and installs AUR packages through the helper. The helper
// escalates on its own for the install step; running it under pkexec would
// make makepkg run as root, which it refuses.
func (p *Provider) Install(ctx context.Context, names ...string) error {
	if !p.IsAvailable() {
		return errors.Wrapf(ErrHelperNotInstalled, "%s", p.config.Helper)
	}

	argv := []string{p.config.Helper, "-S"}
	argv = append(argv, names...)
	if p.config.NoConfirm {
		argv = append(argv, "--noconfirm")
	}
	return p.runner.Run(ctx, argv)
}

// Remove removes packages through the helper.
func (p *Provider) Remove(ctx context.Context, names ...string) error {
	if !p.IsAvailable() {
		return errors.Wrapf(ErrHelperNotInstalled, "%s", p.config.Helper)
	}

	argv := []string{p.config.Helper, "-R"}
	argv = append(argv, names...)
	if p.config.NoConfirm {
		argv = append(argv, "--noconfirm")
	}
	return p.runner.Run(ctx, argv)
}
