// internal/cli/setup.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daradege/dastore/internal/logging"
	"github.com/daradege/dastore/pkg/setup"
)

var (
	setupRemove   bool
	setupSource   string
	setupSkipDeps bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install dastore on this system",
	Long: `Install dastore system-wide: verify the host is Arch-based, provision
dependencies (bootstrapping the AUR helper if it is missing), copy the
application files to /usr/share/dastore, write the desktop entry and link
/usr/bin/dastore.

Needs root for the system directories. With --remove, uninstalls instead.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupRemove, "remove", false, "uninstall dastore from this system")
	setupCmd.Flags().StringVar(&setupSource, "source", "", "directory holding the application files (default: the running binary's directory)")
	setupCmd.Flags().BoolVar(&setupSkipDeps, "skip-deps", false, "skip dependency provisioning and helper bootstrap")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	installer := setup.NewInstaller(&setup.Config{
		SourceDir: setupSource,
		Helper:    config.AURHelper,
		SkipDeps:  setupSkipDeps,
		Pacman:    manager.Pacman,
		Logger:    logging.Log,
	})

	if setupRemove {
		if err := installer.Uninstall(); err != nil {
			return fmt.Errorf("uninstalling: %w", err)
		}
		fmt.Println("✓ dastore removed")
		return nil
	}

	if err := installer.Run(ctx); err != nil {
		return err
	}
	fmt.Println("✓ dastore installed successfully")
	return nil
}
