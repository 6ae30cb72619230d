package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "evermore-cli",
	Short: "Evermore portal CLI tool",
	Long: `evermore-cli inspects a portal deployment without starting the server.

Available commands:
  config     Show the configuration the server would start with
  content    Validate and summarize the content catalog
  routes     List the HTTP routes the server registers
  events     List the auth events published on the bus
  version    Print the CLI version

Use "evermore-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
}
