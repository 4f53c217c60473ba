package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/model"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var txType, account, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			filter := ledger.Filter{Search: search}
			if txType != "" {
				filter.Type = model.Type(txType)
			}
			if account != "" {
				acct, err := model.ParseAccount(account)
				if err != nil {
					return err
				}
				filter.Account = acct
			}

			txs := a.ledger.List(filter)
			if len(txs) == 0 {
				fmt.Println("No matching transactions.")
				return nil
			}
			for _, tx := range txs {
				fmt.Println(formatLine(a, tx))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income, expense, transfer, conversion)")
	cmd.Flags().StringVar(&account, "account", "", "filter by account (transfers match either side)")
	cmd.Flags().StringVar(&search, "search", "", "match against description, source and category")

	return cmd
}

func formatLine(a *app, tx model.Transaction) string {
	date := tx.Date.Format("2006-01-02")
	amount := a.fmtMoney(tx.Amount)
	switch tx.Type {
	case model.TypeIncome:
		label := tx.Source
		if label == "" {
			label = "income"
		}
		if tx.Interest {
			label = "interest"
		}
		return fmt.Sprintf("%s  +%s  %s -> %s  [%s]  %s", date, amount, label, tx.Account, tx.ID, tx.Description)
	case model.TypeExpense:
		label := tx.Category
		if label == "" {
			label = "expense"
		}
		return fmt.Sprintf("%s  -%s  %s <- %s  [%s]  %s", date, amount, label, tx.Account, tx.ID, tx.Description)
	default:
		return fmt.Sprintf("%s  =%s  %s -> %s  [%s]  %s", date, amount, tx.From, tx.To, tx.ID, tx.Description)
	}
}

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a transaction, reverting its effect on balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			tx, ok := a.store.Find(args[0])
			if !ok {
				return fmt.Errorf("no transaction with ID %s", args[0])
			}
			a.ledger.Remove(tx.ID)
			fmt.Printf("Removed %s of %s; balances recomputed without it.\n", tx.Type, a.fmtMoney(tx.Amount))
			return nil
		},
	}
}

func newBalanceCommand(opts *rootOptions) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show per-account balances, current or as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if a.store.Profile() == nil {
				return ledger.ErrNoProfile
			}

			balances := a.ledger.Balances()
			if asOf != "" {
				// End of the given day, so all its transactions count.
				day, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q (want YYYY-MM-DD)", asOf)
				}
				balances = a.ledger.BalancesAsOf(day.AddDate(0, 0, 1).Add(-time.Nanosecond))
			}

			for _, acct := range model.Accounts() {
				fmt.Printf("%-8s %s\n", acct, a.fmtMoney(balances.Of(acct)))
			}
			fmt.Printf("%-8s %s\n", "total", a.fmtMoney(balances.Total()))

			if balances.Total().LessThan(a.store.Settings().LowThreshold) {
				fmt.Println("status   low balance")
			} else {
				fmt.Println("status   stable")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "balances at the end of this date (YYYY-MM-DD)")
	return cmd
}
