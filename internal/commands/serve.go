package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report on a cron schedule until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.sched.Register(a.cfg.Schedule.DailyCron); err != nil {
			return err
		}
		a.sched.Start()
		defer a.sched.Stop()

		if runOnStart || os.Getenv("RUN_ON_START") == "true" {
			go func() {
				if err := a.sched.RunOnce(ctx); err != nil {
					a.log.Errorf("initial run failed: %v", err)
				}
			}()
		}

		a.log.Infof("pivotpeers is running, daily cron %q", a.cfg.Schedule.DailyCron)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		a.log.Info("shutdown signal received, stopping")
		cancel()
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "execute the report immediately on startup")
	rootCmd.AddCommand(serveCmd)
}
