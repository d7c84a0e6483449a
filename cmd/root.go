package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strategy-scanner",
	Short: "Scan stock symbols against trading strategies through the scan engine",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(quicklistCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
