// internal/cli/repos.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reposRefresh bool

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List enabled repositories",
	Long: `List the repositories enabled in pacman.conf. With --refresh,
re-synchronizes the package databases first (pacman -Sy).`,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().BoolVar(&reposRefresh, "refresh", false, "re-synchronize the package databases")
}

func runRepos(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if reposRefresh {
		if err := manager.Pacman.Refresh(ctx); err != nil {
			return fmt.Errorf("refreshing databases: %w", err)
		}
		fmt.Println("✓ Databases refreshed")
	}

	repos, err := manager.Pacman.Repositories()
	if err != nil {
		return fmt.Errorf("reading pacman.conf: %w", err)
	}
	fmt.Println("Enabled repositories:")
	for _, repo := range repos {
		fmt.Printf("  %s\n", repo)
	}
	return nil
}
