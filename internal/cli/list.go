// internal/cli/list.go
package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	listSizes bool
	listTop   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long: `List installed packages. With --sizes, shows the largest packages by
installed size instead.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSizes, "sizes", false, "sort by installed size, largest first")
	listCmd.Flags().IntVar(&listTop, "top", 20, "how many packages to show with --sizes")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if listSizes {
		packages, err := manager.Pacman.LargestPackages(ctx, listTop)
		if err != nil {
			return fmt.Errorf("listing package sizes: %w", err)
		}
		t := newTable(table.Row{"Name", "Installed Size"})
		for _, p := range packages {
			t.AppendRow(table.Row{p.Name, p.InstalledSize})
		}
		t.Render()
		return nil
	}

	packages, err := manager.Pacman.Installed(ctx)
	if err != nil {
		return fmt.Errorf("listing installed packages: %w", err)
	}
	t := newTable(table.Row{"Name", "Version", "Description"})
	for _, p := range packages {
		t.AppendRow(table.Row{p.Name, p.Version, truncate(p.Description, 60)})
	}
	t.Render()
	fmt.Printf("\n%d packages installed\n", len(packages))
	return nil
}
