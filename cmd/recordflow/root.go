package main

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/recordflow/pkg/logging"
)

var version = "dev"

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "recordflow",
		Short: "Inspect recordflow dispatch configuration",
		Long: `recordflow supervises record-change event handlers: it routes lifecycle
notifications to phase callbacks with recursion guarding, runtime bypass,
and declarative deactivation. This tool inspects and validates the
deactivation configuration the library reads at runtime.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("recordflow version %s\n", version)
	},
}

// defaultConfigPath resolves the deactivation config file location, e.g.
// ~/.config/recordflow/recordflow.toml.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "recordflow", "recordflow.toml")
}
