package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "switch",
	Short: "Switch between environment variables in the current session",
	Long: `switch keeps named environment variables ("switches") grouped in categories
in ~/.config/switch/registry.json and applies a chosen one to the shell you are
typing in.

Switches are addressed as "<category> <name>" or "<category>/<name>".

Configuration:
  --registry / SWITCH_REGISTRY    registry file location
  --log-level / SWITCH_LOG_LEVEL  debug, info, warn or error (default warn)
  ~/.config/switch/config.yaml    same keys: registry, log_level`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile      string
	registryFlag string
	logLevelFlag string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/switch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "registry file (default is $HOME/.config/switch/registry.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
