// internal/cli/info.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show information about a package",
	Long:  `Display detailed information about a package from the official repositories or the AUR.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pkg, err := manager.Info(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting package info: %w", err)
	}

	fmt.Printf("Name: %s\n", pkg.Name)
	fmt.Printf("Version: %s\n", pkg.Version)
	fmt.Printf("Repository: %s\n", pkg.Repository)
	if pkg.Description != "" {
		fmt.Printf("Description: %s\n", pkg.Description)
	}
	if pkg.URL != "" {
		fmt.Printf("URL: %s\n", pkg.URL)
	}
	if pkg.Licenses != "" {
		fmt.Printf("Licenses: %s\n", pkg.Licenses)
	}
	if pkg.Groups != "" {
		fmt.Printf("Groups: %s\n", pkg.Groups)
	}
	if pkg.DownloadSize != "" {
		fmt.Printf("Download Size: %s\n", pkg.DownloadSize)
	}
	if pkg.InstalledSize != "" {
		fmt.Printf("Installed Size: %s\n", pkg.InstalledSize)
	}
	if len(pkg.Depends) > 0 {
		fmt.Printf("Depends On: %s\n", strings.Join(pkg.Depends, " "))
	}
	fmt.Printf("Installed: %t\n", pkg.Installed)
	return nil
}
