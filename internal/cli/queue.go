// internal/cli/queue.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var queueVerbose bool

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the install queue",
	Long: `Collect packages into a queue and install them in one go. Official
packages install in a single pacman transaction, AUR packages in a single
helper run. The queue persists between invocations.`,
}

var queueAddCmd = &cobra.Command{
	Use:   "add [package...]",
	Short: "Add packages to the queue",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQueueAdd,
}

var queueRemoveCmd = &cobra.Command{
	Use:   "remove [package...]",
	Short: "Remove packages from the queue",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQueueRemove,
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the queue",
	RunE:  runQueueClear,
}

var queueShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the queued packages",
	RunE:  runQueueShow,
}

var queueInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install everything in the queue",
	RunE:  runQueueInstall,
}

func init() {
	queueInstallCmd.Flags().BoolVarP(&queueVerbose, "verbose", "v", false, "stream raw transaction output")

	queueCmd.AddCommand(queueAddCmd)
	queueCmd.AddCommand(queueRemoveCmd)
	queueCmd.AddCommand(queueClearCmd)
	queueCmd.AddCommand(queueShowCmd)
	queueCmd.AddCommand(queueInstallCmd)
}

func runQueueAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for _, name := range args {
		pkg, err := manager.Info(ctx, name)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", name, err)
		}
		if manager.Queue.Add(pkg) {
			fmt.Printf("Added %s (%s) to the queue\n", pkg.Name, pkg.Repository)
		} else {
			fmt.Printf("%s is already queued\n", pkg.Name)
		}
	}
	return manager.Queue.Save("")
}

func runQueueRemove(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		manager.Queue.Remove(name)
	}
	return manager.Queue.Save("")
}

func runQueueClear(cmd *cobra.Command, args []string) error {
	manager.Queue.Clear()
	return manager.Queue.Save("")
}

func runQueueShow(cmd *cobra.Command, args []string) error {
	items := manager.Queue.Items()
	if len(items) == 0 {
		fmt.Println("The queue is empty")
		return nil
	}

	official, fromAUR := manager.Queue.Split()
	renderPackages(items)
	fmt.Printf("\n%d from official repositories, %d from AUR\n", len(official), len(fromAUR))
	return nil
}

func runQueueInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if manager.Queue.Len() == 0 {
		fmt.Println("The queue is empty")
		return nil
	}

	attachProgress(manager.Pacman.Runner(), queueVerbose)
	attachProgress(manager.AUR.Runner(), queueVerbose)

	if err := manager.InstallQueue(ctx); err != nil {
		return fmt.Errorf("installing queue: %w", err)
	}
	fmt.Println("✓ Queue installed successfully")
	return nil
}
