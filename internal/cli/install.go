// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daradege/dastore/internal/logging"
	"github.com/daradege/dastore/pkg/core"
	"github.com/daradege/dastore/pkg/deps"
	"github.com/daradege/dastore/pkg/syncdb"
)

var (
	installFromAUR bool
	installDryRun  bool
	installVerbose bool
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more packages",
	Long: `Install packages from the official repositories, or from the AUR with --aur.

Examples:
  dastore install firefox
  dastore install visual-studio-code-bin --aur
  dastore install git base-devel --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installFromAUR, "aur", false, "install from the AUR")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "only print the resolved install order")
	installCmd.Flags().BoolVarP(&installVerbose, "verbose", "v", false, "stream raw transaction output")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if installDryRun {
		return printInstallOrder(ctx, args)
	}

	attachProgress(manager.Pacman.Runner(), installVerbose)
	attachProgress(manager.AUR.Runner(), installVerbose)

	repo := ""
	if installFromAUR {
		repo = core.RepoAUR
	}
	packages := make([]*core.Package, 0, len(args))
	for _, name := range args {
		packages = append(packages, &core.Package{Name: name, Repository: repo})
	}

	if err := manager.Install(ctx, packages...); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Installation failed: %v\n", err)
		return err
	}
	for _, name := range args {
		fmt.Printf("✓ Successfully installed %s\n", name)
	}
	return nil
}

// printInstallOrder resolves the dependency closure against the local sync
// databases and prints it dependencies-first.
func printInstallOrder(ctx context.Context, names []string) error {
	db, err := syncdb.Load(config.SyncDBPath, logging.Log)
	if err != nil {
		return fmt.Errorf("loading sync databases: %w", err)
	}

	resolver := deps.NewResolver(func(ctx context.Context, name string) (*core.Package, error) {
		if pkg, ok := db.Get(name); ok {
			return pkg, nil
		}
		return nil, fmt.Errorf("package %s not found", name)
	})

	order, err := resolver.InstallOrder(ctx, names...)
	if err != nil {
		return fmt.Errorf("resolving dependencies: %w", err)
	}

	fmt.Printf("Install order (%d packages):\n", len(order))
	for _, name := range order {
		version := ""
		if pkg, ok := db.Get(name); ok {
			version = " " + pkg.Version
		}
		fmt.Printf("  %s%s\n", name, version)
	}
	return nil
}
