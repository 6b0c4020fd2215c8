// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daradege/dastore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dastore version %s\n", dastore.Version)
		fmt.Println("Package manager for Arch Linux")
		fmt.Println("https://github.com/daradege/dastore")
	},
}
