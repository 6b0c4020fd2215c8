// internal/cli/remove.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var removeVerbose bool

var removeCmd = &cobra.Command{
	Use:   "remove [package...]",
	Short: "Remove one or more packages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeVerbose, "verbose", "v", false, "stream raw transaction output")
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	attachProgress(manager.Pacman.Runner(), removeVerbose)
	if err := manager.Pacman.Remove(ctx, args...); err != nil {
		return fmt.Errorf("removing packages: %w", err)
	}
	for _, name := range args {
		fmt.Printf("✓ Successfully removed %s\n", name)
	}
	return nil
}
