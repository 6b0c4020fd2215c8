// internal/cli/history.go
package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently installed packages",
	Long:  `Show the most recent package installations from the pacman log.`,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := manager.Pacman.History(config.HistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history found")
		return nil
	}

	t := newTable(table.Row{"Package", "Installed On"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Date})
	}
	t.Render()
	return nil
}
