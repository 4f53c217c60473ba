// Package report derives read-only summaries from a snapshot: totals,
// category breakdowns, budget progress, alerts and a savings suggestion.
// Nothing here mutates state.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/money"
	"github.com/banklar/banklar/internal/notify"
)

// fallbackCategory buckets expenses recorded without a category.
const fallbackCategory = "Other"

// Totals sums the log per transaction type. Conversions count as transfers;
// they move money between accounts without changing the total.
type Totals struct {
	Incomes   decimal.Decimal
	Expenses  decimal.Decimal
	Transfers decimal.Decimal
}

// ComputeTotals tallies the transaction log.
func ComputeTotals(txs []model.Transaction) Totals {
	t := Totals{
		Incomes:   decimal.Zero,
		Expenses:  decimal.Zero,
		Transfers: decimal.Zero,
	}
	for _, tx := range txs {
		switch tx.Type {
		case model.TypeIncome:
			t.Incomes = t.Incomes.Add(tx.Amount)
		case model.TypeExpense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		case model.TypeTransfer, model.TypeConversion:
			t.Transfers = t.Transfers.Add(tx.Amount)
		}
	}
	return t
}

// ExpensesByCategory groups expense amounts by exact category string.
func ExpensesByCategory(txs []model.Transaction) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		cat := strings.TrimSpace(tx.Category)
		if cat == "" {
			cat = fallbackCategory
		}
		out[cat] = out[cat].Add(tx.Amount)
	}
	return out
}

// Categories returns the known category list: defaults, then categories seen
// in expenses, then budget keys, deduplicated in first-seen order.
func Categories(snap model.Snapshot) []string {
	var all []string
	all = append(all, model.DefaultCategories...)
	for _, tx := range snap.Transactions {
		if tx.Type == model.TypeExpense && strings.TrimSpace(tx.Category) != "" {
			all = append(all, strings.TrimSpace(tx.Category))
		}
	}
	for cat := range snap.Budgets {
		all = append(all, cat)
	}
	sort.Strings(all[len(model.DefaultCategories):]) // stable order for map-sourced tail

	seen := map[string]bool{}
	var out []string
	for _, c := range all {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// BudgetLine is one budget's progress. A budget keyed by a category no
// expense uses simply shows zero spend; there is no referential integrity.
type BudgetLine struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Percent  int // capped at 100
	Over     bool
}

// BudgetStatus reports every budget's spend against its limit, sorted by
// category.
func BudgetStatus(snap model.Snapshot) []BudgetLine {
	spent := ExpensesByCategory(snap.Transactions)
	var lines []BudgetLine
	for cat, limit := range snap.Budgets {
		line := BudgetLine{Category: cat, Limit: limit, Spent: spent[cat]}
		if limit.IsPositive() {
			pct := line.Spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
			if pct > 100 {
				pct = 100
			}
			line.Percent = int(pct)
			line.Over = line.Spent.GreaterThan(limit)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Category < lines[j].Category })
	return lines
}

// Alert is a user-facing condition worth surfacing.
type Alert struct {
	Severity notify.Severity
	Message  string
}

// Alerts evaluates the snapshot's alert conditions: pending interest, low
// total balance, overspending, and budget overruns. Balances arrive
// unclamped and are reported as-is.
func Alerts(snap model.Snapshot, balances ledger.Balances, pending decimal.Decimal, pendingDays int) []Alert {
	cur := snap.Settings.Currency
	var alerts []Alert

	if pendingDays > 0 && pending.GreaterThanOrEqual(decimal.New(1, -2)) {
		alerts = append(alerts, Alert{notify.Info,
			fmt.Sprintf("pending interest: %s accrued over %d days", money.Format(pending, cur), pendingDays)})
	}

	total := balances.Total()
	if total.LessThan(snap.Settings.LowThreshold) {
		alerts = append(alerts, Alert{notify.Error,
			fmt.Sprintf("total balance is low (%s); review your budget", money.Format(total, cur))})
	} else {
		alerts = append(alerts, Alert{notify.Success,
			fmt.Sprintf("balance OK; %s available", money.Format(total, cur))})
	}

	totals := ComputeTotals(snap.Transactions)
	if totals.Expenses.GreaterThan(totals.Incomes) {
		alerts = append(alerts, Alert{notify.Error,
			fmt.Sprintf("spending exceeds income (%s > %s)",
				money.Format(totals.Expenses, cur), money.Format(totals.Incomes, cur))})
	} else if totals.Incomes.IsPositive() {
		ratio := totals.Expenses.Div(totals.Incomes)
		if ratio.GreaterThan(decimal.NewFromFloat(0.8)) {
			pct := ratio.Mul(decimal.NewFromInt(100)).Round(0)
			alerts = append(alerts, Alert{notify.Info,
				fmt.Sprintf("expenses are at %s%% of income", pct)})
		}
	}

	for _, line := range BudgetStatus(snap) {
		if line.Over {
			alerts = append(alerts, Alert{notify.Error,
				fmt.Sprintf("budget exceeded for %s: spent %s of %s",
					line.Category, money.Format(line.Spent, cur), money.Format(line.Limit, cur))})
		}
	}
	return alerts
}

// SuggestSavings recommends a savings rate from the income/expense ratio.
func SuggestSavings(totals Totals, txs []model.Transaction, currency string) string {
	if !totals.Incomes.IsPositive() {
		return "record your income to get recommendations"
	}
	ratio := totals.Expenses.Div(totals.Incomes)
	if ratio.GreaterThan(decimal.NewFromFloat(0.9)) {
		return "spending is very high; cut immediate expenses by at least 10%"
	}

	salaried := false
	for _, tx := range txs {
		if tx.Type == model.TypeIncome && strings.EqualFold(strings.TrimSpace(tx.Source), "salary") {
			salaried = true
			break
		}
	}
	if salaried {
		percent := 20
		switch {
		case ratio.LessThan(decimal.NewFromFloat(0.4)):
			percent = 30
		case ratio.LessThan(decimal.NewFromFloat(0.6)):
			percent = 25
		}
		amount := totals.Incomes.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
		return fmt.Sprintf("save %d%% of your income (%s)", percent, money.Format(amount, currency))
	}
	return "consider saving 15-20% of your income"
}
