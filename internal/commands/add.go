package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/id"
	"github.com/banklar/banklar/internal/model"
)

func newIncomeCommand(opts *rootOptions) *cobra.Command {
	var account, source, split, description string

	cmd := &cobra.Command{
		Use:   "income <amount>",
		Short: "Record an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			acct, err := model.ParseAccount(account)
			if err != nil {
				return err
			}
			allocated := decimal.Zero
			if split != "" {
				allocated, err = parseAmount(split)
				if err != nil {
					return fmt.Errorf("invalid savings split: %w", err)
				}
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			tx := model.Transaction{
				ID:               id.New(),
				Type:             model.TypeIncome,
				Amount:           amount,
				Date:             a.clock.Now(),
				Account:          acct,
				SavingsAllocated: allocated,
				Source:           source,
				Description:      description,
			}
			if err := a.ledger.Add(tx); err != nil {
				return err
			}
			fmt.Printf("Income of %s recorded (%s)\n", a.fmtMoney(amount), tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", string(model.AccountWallet), "destination account")
	cmd.Flags().StringVar(&source, "source", "", "income source, e.g. salary")
	cmd.Flags().StringVar(&split, "savings-split", "", "portion of the amount credited to savings")
	cmd.Flags().StringVar(&description, "note", "", "free-text description")

	return cmd
}

func newExpenseCommand(opts *rootOptions) *cobra.Command {
	var account, category, description string

	cmd := &cobra.Command{
		Use:   "expense <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			acct, err := model.ParseAccount(account)
			if err != nil {
				return err
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			tx := model.Transaction{
				ID:          id.New(),
				Type:        model.TypeExpense,
				Amount:      amount,
				Date:        a.clock.Now(),
				Account:     acct,
				Category:    category,
				Description: description,
			}
			if err := a.ledger.Add(tx); err != nil {
				return err
			}
			fmt.Printf("Expense of %s recorded (%s)\n", a.fmtMoney(amount), tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", string(model.AccountWallet), "source account")
	cmd.Flags().StringVar(&category, "category", "Other", "expense category")
	cmd.Flags().StringVar(&description, "note", "", "free-text description")

	return cmd
}

func newTransferCommand(opts *rootOptions) *cobra.Command {
	var from, to, description string

	cmd := &cobra.Command{
		Use:   "transfer <amount>",
		Short: "Move money between accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			fromAcct, err := model.ParseAccount(from)
			if err != nil {
				return err
			}
			toAcct, err := model.ParseAccount(to)
			if err != nil {
				return err
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			tx := model.Transaction{
				ID:          id.New(),
				Type:        model.TypeTransfer,
				Amount:      amount,
				Date:        a.clock.Now(),
				From:        fromAcct,
				To:          toAcct,
				Description: description,
			}
			if err := a.ledger.Add(tx); err != nil {
				return err
			}
			fmt.Printf("Transferred %s from %s to %s (%s)\n", a.fmtMoney(amount), fromAcct, toAcct, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination account (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&description, "note", "", "free-text description")

	return cmd
}

func newConvertCommand(opts *rootOptions) *cobra.Command {
	var direction, digital, description string

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert between digital money and physical cash",
		Long: `Convert moves money between a digital account and cash. It has the same
balance effect as a transfer; the direction tag exists for reporting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			digitalAcct, err := model.ParseAccount(digital)
			if err != nil {
				return err
			}
			if digitalAcct == model.AccountCash {
				return fmt.Errorf("--digital must name a digital account (savings or wallet)")
			}

			var from, to model.Account
			switch model.Direction(direction) {
			case model.DirectionDigitalToCash:
				from, to = digitalAcct, model.AccountCash
			case model.DirectionCashToDigital:
				from, to = model.AccountCash, digitalAcct
			default:
				return fmt.Errorf("unknown direction %q (want digital-to-cash or cash-to-digital)", direction)
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			tx := model.Transaction{
				ID:          id.New(),
				Type:        model.TypeConversion,
				Amount:      amount,
				Date:        a.clock.Now(),
				From:        from,
				To:          to,
				Direction:   model.Direction(direction),
				Description: description,
			}
			if err := a.ledger.Add(tx); err != nil {
				return err
			}
			fmt.Printf("Converted %s (%s, %s)\n", a.fmtMoney(amount), direction, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&direction, "direction", string(model.DirectionDigitalToCash), "digital-to-cash or cash-to-digital")
	cmd.Flags().StringVar(&digital, "digital", string(model.AccountWallet), "digital side of the conversion")
	cmd.Flags().StringVar(&description, "note", "", "free-text description")

	return cmd
}
