// internal/cli/cache.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the package cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all cached package files",
	Long:  `Remove all cached package files (pacman -Scc).`,
	RunE:  runCacheClean,
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}

func runCacheClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := manager.Pacman.CleanCache(ctx); err != nil {
		return fmt.Errorf("cleaning cache: %w", err)
	}
	fmt.Println("✓ Package cache cleaned")
	return nil
}
