package commands

import (
	"github.com/spf13/cobra"
)

var cfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pivotpeers",
	Short: "Daily pivot-level report for seed tickers and their industry peers",
	Long: `pivotpeers resolves a set of seed tickers and their industry peers,
fetches the latest daily bar for each, computes classic floor-trader pivot
levels (P, S1, S2, R1, R2), and renders the result as CSV, PDF and HTML,
optionally pushing a notification with links to the outputs.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "configs/config.yaml", "config file path")
}
