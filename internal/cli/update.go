// internal/cli/update.go
package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	updateSystem  bool
	updateVerbose bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "List pending updates or upgrade the system",
	Long: `Without flags, lists pending updates via checkupdates.
With --system, performs a full system upgrade (pacman -Syu).`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateSystem, "system", false, "perform a full system upgrade")
	updateCmd.Flags().BoolVarP(&updateVerbose, "verbose", "v", false, "stream raw transaction output")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if updateSystem {
		attachProgress(manager.Pacman.Runner(), updateVerbose)
		if err := manager.Pacman.Upgrade(ctx); err != nil {
			return fmt.Errorf("upgrading system: %w", err)
		}
		fmt.Println("✓ System updated successfully")
		return nil
	}

	updates, err := manager.Pacman.Updates(ctx)
	if err != nil {
		return fmt.Errorf("checking updates: %w", err)
	}
	if len(updates) == 0 {
		fmt.Println("System is up to date")
		return nil
	}

	t := newTable(table.Row{"Name", "Current", "Available"})
	for _, u := range updates {
		t.AppendRow(table.Row{u.Name, u.OldVersion, u.NewVersion})
	}
	t.Render()
	fmt.Printf("\n%d updates available. Run 'dastore update --system' to apply.\n", len(updates))
	return nil
}
