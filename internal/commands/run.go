package commands

import (
	"context"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the report once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		return a.sched.RunOnce(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
