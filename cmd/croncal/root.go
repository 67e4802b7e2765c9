package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "croncal",
	Short: "Croncal - occurrence estimation for scheduled jobs",
	Long: `Croncal estimates how many times scheduled jobs (fixed interval,
one-shot, or cron expression) will fire within UTC calendar days, weeks,
months and years, for calendar display. It never executes anything.`,
	Version: Version,
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
