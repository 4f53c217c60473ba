package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSettingsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show ledger settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			s := a.store.Settings()
			fmt.Printf("annual rate    %s%% EA\n", s.AnnualRate)
			fmt.Printf("low threshold  %s\n", a.fmtMoney(s.LowThreshold))
			fmt.Printf("currency       %s\n", s.Currency)
			return nil
		},
	}
	cmd.AddCommand(newSettingsSetCommand(opts))
	return cmd
}

func newSettingsSetCommand(opts *rootOptions) *cobra.Command {
	var rate, threshold, currency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change ledger settings",
		Long: `Change the annual rate, low-balance threshold or display currency.
A rate change applies to interest not yet materialized; already-applied
interest transactions are never recomputed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			s := a.store.Settings()

			if rate != "" {
				d, err := decimal.NewFromString(rate)
				if err != nil || d.IsNegative() {
					return fmt.Errorf("invalid annual rate %q", rate)
				}
				s.AnnualRate = d
			}
			if threshold != "" {
				d, err := decimal.NewFromString(threshold)
				if err != nil || d.IsNegative() {
					return fmt.Errorf("invalid threshold %q", threshold)
				}
				s.LowThreshold = d
			}
			if currency != "" {
				s.Currency = currency
			}
			a.store.UpdateSettings(s)

			// Saving settings also makes sure interest tracking is running and
			// settles anything pending at the new rate.
			if a.store.Profile() != nil {
				if a.store.Meta().LastApplied == nil {
					a.store.SetWatermark(a.clock.Now())
				} else {
					a.engine.Apply()
				}
			}

			fmt.Println("Settings saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&rate, "rate", "", "nominal annual interest rate (EA, percent)")
	cmd.Flags().StringVar(&threshold, "threshold", "", "low-balance alert threshold")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO display currency code")

	return cmd
}
