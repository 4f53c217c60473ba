package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/interest"
	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/notify"
)

func newInterestCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Show accrued interest status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if a.store.Profile() == nil {
				return ledger.ErrNoProfile
			}

			settings := a.store.Settings()
			meta := a.store.Meta()
			rate := interest.DailyRate(settings.AnnualRate)
			fmt.Printf("annual rate   %s%% EA\n", settings.AnnualRate)
			fmt.Printf("daily rate    %s\n", rate.Round(10))

			if meta.LastApplied == nil {
				fmt.Println("watermark     not initialized (run `banklar interest apply`)")
				return nil
			}
			fmt.Printf("watermark     %s\n", meta.LastApplied.Format("2006-01-02 15:04"))

			days := a.engine.PendingDays()
			pending := a.engine.Accrue()
			fmt.Printf("pending       %s over %d day(s)\n", a.fmtMoney(pending), len(days))
			fmt.Printf("projection    %s per year at the current balance\n", a.fmtMoney(a.engine.Projection()))
			return nil
		},
	}

	cmd.AddCommand(newInterestApplyCommand(opts))
	return cmd
}

func newInterestApplyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Materialize pending interest as an income transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if a.store.Profile() == nil {
				return ledger.ErrNoProfile
			}

			res := a.engine.Apply()
			switch {
			case res.Initialized:
				fmt.Println("Interest tracking initialized; accrual starts today.")
			case res.Applied:
				a.notifier.Notify(
					fmt.Sprintf("interest applied: %s over %d day(s)", a.fmtMoney(res.Amount), res.Days),
					notify.Success)
			default:
				fmt.Printf("Nothing to apply (pending %s)\n", a.fmtMoney(res.Pending))
			}
			return nil
		},
	}
}
