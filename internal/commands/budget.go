package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/report"
)

func newBudgetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category spending budgets",
	}
	cmd.AddCommand(
		newBudgetSetCommand(opts),
		newBudgetRemoveCommand(opts),
		newBudgetListCommand(opts),
	)
	return cmd
}

func newBudgetSetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Create or replace a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			a.store.SetBudget(args[0], limit)
			fmt.Printf("Budget for %s set to %s\n", args[0], a.fmtMoney(limit))
			return nil
		},
	}
}

func newBudgetRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <category>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if !a.store.RemoveBudget(args[0]) {
				return fmt.Errorf("no budget for category %q", args[0])
			}
			fmt.Printf("Budget for %s removed\n", args[0])
			return nil
		},
	}
}

func newBudgetListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budget progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			lines := report.BudgetStatus(a.store.Snapshot())
			if len(lines) == 0 {
				fmt.Println("No budgets defined.")
				return nil
			}
			for _, line := range lines {
				marker := ""
				if line.Over {
					marker = "  OVER"
				}
				fmt.Printf("%-20s %s / %s (%d%%)%s\n",
					line.Category, a.fmtMoney(line.Spent), a.fmtMoney(line.Limit), line.Percent, marker)
			}
			return nil
		},
	}
}
