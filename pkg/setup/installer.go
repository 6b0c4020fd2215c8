// pkg/setup/installer.go
package setup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/daradege/dastore/pkg/aur"
	"github.com/daradege/dastore/pkg/pacman"
	"github.com/daradege/dastore/pkg/task"
)

// Config configures the installer.
type Config struct {
	// Root is the filesystem root the installer operates on ("/" for a
	// real installation, a scratch directory under test).
	Root string

	// SourceDir holds the application files to copy into the install
	// directory. Defaults to the directory of the running executable.
	SourceDir string

	// Dependencies overrides the provisioned package list.
	Dependencies []string

	// Helper is the AUR helper to check for and bootstrap if missing.
	Helper string

	// SkipDeps skips dependency provisioning and the helper bootstrap,
	// for file-placement-only runs.
	SkipDeps bool

	Pacman *pacman.Manager
	Runner *task.Runner
	Logger zerolog.Logger
}

// Installer performs the Dastore system installation: environment check,
// dependency provisioning, artifact placement and desktop integration.
// Steps run strictly in order and the first failure stops the run; there is
// no rollback of completed steps.
type Installer struct {
	config *Config
	logger zerolog.Logger
}

func NewInstaller(cfg *Config) *Installer {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Root == "" {
		cfg.Root = "/"
	}
	if len(cfg.Dependencies) == 0 {
		cfg.Dependencies = DefaultDependencies
	}
	if cfg.Helper == "" {
		cfg.Helper = aur.DefaultHelper
	}
	if cfg.Runner == nil {
		cfg.Runner = &task.Runner{AutoConfirm: true, Logger: cfg.Logger}
	}
	if cfg.Pacman == nil {
		cfg.Pacman = pacman.NewManager(&pacman.Config{NoConfirm: true, Logger: cfg.Logger})
	}
	return &Installer{config: cfg, logger: cfg.Logger}
}

// Run executes the installation sequence.
func (i *Installer) Run(ctx context.Context) error {
	if err := DetectArch(i.config.Root); err != nil {
		return err
	}

	if !i.config.SkipDeps {
		if err := i.installDependencies(ctx); err != nil {
			return err
		}
		if err := i.ensureHelper(ctx); err != nil {
			return err
		}
	}

	if err := i.placeArtifacts(); err != nil {
		return err
	}
	return i.desktopIntegration()
}

func (i *Installer) installDependencies(ctx context.Context) error {
	i.logger.Info().Strs("packages", i.config.Dependencies).Msg("installing dependencies")
	if err := i.config.Pacman.Install(ctx, i.config.Dependencies...); err != nil {
		return errors.Wrap(err, "installing dependencies")
	}
	return nil
}

func (i *Installer) ensureHelper(ctx context.Context) error {
	if _, err := exec.LookPath(i.config.Helper); err == nil {
		i.logger.Debug().Str("helper", i.config.Helper).Msg("AUR helper already installed")
		return nil
	}

	i.logger.Info().Str("helper", i.config.Helper).Msg("bootstrapping AUR helper")
	err := aur.Bootstrap(ctx, &aur.BootstrapOptions{
		Helper: i.config.Helper,
		Runner: i.config.Runner,
	})
	return errors.Wrapf(err, "bootstrapping %s", i.config.Helper)
}

func (i *Installer) placeArtifacts() error {
	source := i.config.SourceDir
	if source == "" {
		exe, err := os.Executable()
		if err != nil {
			return errors.Wrap(err, "locating executable")
		}
		source = filepath.Dir(exe)
	}

	dest := filepath.Join(i.config.Root, InstallDir)
	i.logger.Info().Str("from", source).Str("to", dest).Msg("copying application files")

	if err := os.MkdirAll(dest, 0755); err != nil {
		return errors.Wrap(err, "creating install directory")
	}
	if err := cp.Copy(source, dest); err != nil {
		return errors.Wrap(err, "copying application files")
	}
	return nil
}

func (i *Installer) desktopIntegration() error {
	appsDir := filepath.Join(i.config.Root, ApplicationsDir)
	if err := os.MkdirAll(appsDir, 0755); err != nil {
		return errors.Wrap(err, "creating applications directory")
	}

	entry := &DesktopEntry{
		Type:       "Application",
		Name:       "Dastore",
		Comment:    "Graphical package manager for Arch Linux",
		Exec:       AppName,
		Icon:       filepath.Join("/", InstallDir, IconFile),
		Categories: []string{"System", "PackageManager"},
		Terminal:   false,
	}
	desktopPath := filepath.Join(appsDir, AppName+".desktop")
	if err := entry.WriteFile(desktopPath); err != nil {
		return err
	}
	i.logger.Info().Str("path", desktopPath).Msg("wrote desktop entry")

	binDir := filepath.Join(i.config.Root, BinDir)
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return errors.Wrap(err, "creating bin directory")
	}
	link := filepath.Join(binDir, AppName)
	target := filepath.Join("/", InstallDir, AppName)

	os.Remove(link)
	if err := os.Symlink(target, link); err != nil {
		return errors.Wrap(err, "creating symlink")
	}
	i.logger.Info().Str("link", link).Str("target", target).Msg("linked entry point")
	return nil
}

// Uninstall removes everything Run placed on the system: the symlink, the
// desktop entry and the install directory.
func (i *Installer) Uninstall() error {
	link := filepath.Join(i.config.Root, BinDir, AppName)
	desktop := filepath.Join(i.config.Root, ApplicationsDir, AppName+".desktop")
	dir := filepath.Join(i.config.Root, InstallDir)

	for _, path := range []string{link, desktop} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing %s", path)
		}
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "removing %s", dir)
	}
	i.logger.Info().Msg("dastore removed")
	return nil
}
