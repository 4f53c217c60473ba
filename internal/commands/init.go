package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/config"
	"github.com/banklar/banklar/internal/model"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string
	var savings, wallet, cash string
	var rate float64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the user profile and seed balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := [3]decimal.Decimal{}
			for i, raw := range []string{savings, wallet, cash} {
				d, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid seed balance %q: %w", raw, err)
				}
				if d.IsNegative() {
					return fmt.Errorf("seed balances cannot be negative, got %s", d)
				}
				seeds[i] = d
			}
			return runInit(opts, name, seeds, rate)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&savings, "savings", "0", "seed balance of the savings account")
	cmd.Flags().StringVar(&wallet, "wallet", "0", "seed balance of the wallet account")
	cmd.Flags().StringVar(&cash, "cash", "0", "seed balance of physical cash")
	cmd.Flags().Float64Var(&rate, "rate", 8.25, "nominal annual interest rate (EA, percent)")

	return cmd
}

func runInit(opts *rootOptions, name string, seeds [3]decimal.Decimal, rate float64) error {
	// Write a default banklar.yaml next to the ledger if none exists yet.
	if _, err := os.Stat(opts.configPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Save(opts.configPath, config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	a, err := newApp(opts)
	if err != nil {
		return err
	}
	if a.store.Profile() != nil {
		return errors.New("a profile already exists; adjust balances with transactions, not by re-initializing")
	}

	now := a.clock.Now()
	a.store.SetProfile(model.Profile{
		Name:      name,
		Savings:   seeds[0],
		Wallet:    seeds[1],
		Cash:      seeds[2],
		CreatedAt: now,
	})

	settings := a.store.Settings()
	settings.AnnualRate = decimal.NewFromFloat(rate)
	a.store.UpdateSettings(settings)

	// Interest starts counting from setup; no retroactive accrual.
	a.store.SetWatermark(now)

	fmt.Printf("Ledger initialized for %s (savings %s, wallet %s, cash %s, %s%% EA)\n",
		name, a.fmtMoney(seeds[0]), a.fmtMoney(seeds[1]), a.fmtMoney(seeds[2]), settings.AnnualRate)
	return nil
}
