// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/daradege/dastore"
	"github.com/daradege/dastore/internal/logging"
	"github.com/daradege/dastore/pkg/core"
)

var (
	cfgFile   string
	debug     bool
	noConfirm bool
	config    *core.Config
	manager   *dastore.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dastore",
	Short: "Package manager for Arch Linux",
	Long: `dastore - package manager for Arch Linux

Search, inspect and install packages from the official repositories and the
AUR with one tool. Includes an install queue, update checking and a
self-installer for desktop integration.`,
	Version:       dastore.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dastore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noConfirm, "noconfirm", false, "never ask for confirmation")

	// Add commands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		logging.Log.Error().Err(err).Msg("error loading config, using defaults")
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if noConfirm {
		config.NoConfirm = true
	}

	logging.Setup(config.Debug, config.LogDir)
	manager = dastore.NewManager(config, logging.Log)
}
