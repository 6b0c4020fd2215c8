// internal/cli/search.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the repositories and the AUR",
	Long: `Search for packages in the official repositories and the AUR.

Results from both sources are merged, deduplicated and ranked by relevance,
best match first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

	packages, err := manager.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	if len(packages) == 0 {
		fmt.Printf("No packages found for '%s'\n", query)
		return nil
	}

	renderPackages(packages)
	return nil
}
