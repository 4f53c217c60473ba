package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/notify"
	"github.com/banklar/banklar/internal/schedule"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the periodic interest checker until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			delay, err := a.cfg.Scheduler.InitialDelayDuration()
			if err != nil {
				return err
			}
			interval, err := a.cfg.Scheduler.IntervalDuration()
			if err != nil {
				return err
			}

			check := func() {
				res := a.engine.Apply()
				if res.Applied {
					a.notifier.Notify(
						fmt.Sprintf("interest applied: %s over %d day(s)", a.fmtMoney(res.Amount), res.Days),
						notify.Success)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.log.Info().
				Dur("interval", interval).
				Msg("watching for pending interest")
			schedule.New(check, delay, interval, a.log).Run(ctx)
			return nil
		},
	}
}
