package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arcade",
		Short: "Arcade CLI - Track player lives and level progress",
		Long: `Arcade CLI tracks per-player game sessions: lives (capped at the
maximum) and completed levels, stored in a local database.

Examples:
  arcade session start --player ellen
  arcade session list
  arcade session info --player ellen
  arcade lives add --session <session-id> --amount 2
  arcade level complete --session <session-id>`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewSessionCommand())
	rootCmd.AddCommand(NewLivesCommand())
	rootCmd.AddCommand(NewLevelCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
