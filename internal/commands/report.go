package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize income, spending, budgets and alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if a.store.Profile() == nil {
				return ledger.ErrNoProfile
			}

			snap := a.store.Snapshot()
			totals := report.ComputeTotals(snap.Transactions)
			fmt.Printf("income    %s\n", a.fmtMoney(totals.Incomes))
			fmt.Printf("expenses  %s\n", a.fmtMoney(totals.Expenses))
			fmt.Printf("advice    %s\n", report.SuggestSavings(totals, snap.Transactions, snap.Settings.Currency))
			fmt.Printf("interest  %s projected per year\n\n", a.fmtMoney(a.engine.Projection()))

			byCat := report.ExpensesByCategory(snap.Transactions)
			if len(byCat) > 0 {
				fmt.Println("expenses by category:")
				type catLine struct {
					name  string
					spent string
					pct   int64
				}
				var lines []catLine
				for cat, amt := range byCat {
					pct := int64(0)
					if totals.Expenses.IsPositive() {
						pct = amt.Div(totals.Expenses).Mul(hundred).Round(0).IntPart()
					}
					lines = append(lines, catLine{cat, a.fmtMoney(amt), pct})
				}
				sort.Slice(lines, func(i, j int) bool { return lines[i].pct > lines[j].pct })
				for _, l := range lines {
					fmt.Printf("  %-20s %3d%%  %s\n", l.name, l.pct, l.spent)
				}
				fmt.Println()
			}

			balances := a.ledger.Balances()
			pending := a.engine.Accrue()
			for _, alert := range report.Alerts(snap, balances, pending, len(a.engine.PendingDays())) {
				fmt.Printf("[%s] %s\n", alert.Severity, alert.Message)
			}
			return nil
		},
	}
}
