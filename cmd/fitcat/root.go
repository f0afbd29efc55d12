package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitcat",
	Short: "Browse the exercise catalog",
	Long: `fitcat merges the bundled exercise catalog with an optional remote
database and lets you search, filter, and inspect exercises from the
terminal, a TUI, or an HTTP API.

Configuration comes from fitcat.yaml, a .env file, or FITCAT_*
environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(sourcesCmd)
}
