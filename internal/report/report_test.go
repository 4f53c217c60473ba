package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/notify"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var when = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestComputeTotals(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("1000")},
		{Type: model.TypeIncome, Amount: dec("500")},
		{Type: model.TypeExpense, Amount: dec("300")},
		{Type: model.TypeTransfer, Amount: dec("100")},
		{Type: model.TypeConversion, Amount: dec("50")},
	}
	totals := ComputeTotals(txs)
	assert.True(t, totals.Incomes.Equal(dec("1500")))
	assert.True(t, totals.Expenses.Equal(dec("300")))
	assert.True(t, totals.Transfers.Equal(dec("150")), "conversions count as transfers")
}

func TestExpensesByCategory(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TypeExpense, Amount: dec("100"), Category: "Food"},
		{Type: model.TypeExpense, Amount: dec("50"), Category: "Food"},
		{Type: model.TypeExpense, Amount: dec("30")}, // uncategorized
		{Type: model.TypeIncome, Amount: dec("999"), Source: "salary"},
	}
	byCat := ExpensesByCategory(txs)
	assert.True(t, byCat["Food"].Equal(dec("150")))
	assert.True(t, byCat["Other"].Equal(dec("30")), "blank category falls back")
	assert.Len(t, byCat, 2)
}

func TestCategoriesMergesSources(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Transactions = []model.Transaction{
		{Type: model.TypeExpense, Amount: dec("10"), Category: "Gym"},
		{Type: model.TypeExpense, Amount: dec("10"), Category: "Food"}, // already a default
	}
	snap.Budgets["Rent"] = dec("900000")

	cats := Categories(snap)
	assert.Subset(t, cats, model.DefaultCategories)
	assert.Contains(t, cats, "Gym")
	assert.Contains(t, cats, "Rent")

	seen := map[string]int{}
	for _, c := range cats {
		seen[c]++
	}
	assert.Equal(t, 1, seen["Food"], "no duplicates")
}

func TestBudgetStatus(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Budgets["Food"] = dec("100")
	snap.Budgets["Orphan"] = dec("500")
	snap.Transactions = []model.Transaction{
		{Type: model.TypeExpense, Amount: dec("150"), Category: "Food"},
	}

	lines := BudgetStatus(snap)
	require.Len(t, lines, 2)
	food, orphan := lines[0], lines[1]

	assert.Equal(t, "Food", food.Category)
	assert.True(t, food.Over)
	assert.Equal(t, 100, food.Percent, "percent caps at 100")

	// A budget whose category no expense references simply shows zero spend.
	assert.Equal(t, "Orphan", orphan.Category)
	assert.True(t, orphan.Spent.IsZero())
	assert.False(t, orphan.Over)
	assert.Equal(t, 0, orphan.Percent)
}

func TestAlertsLowBalance(t *testing.T) {
	snap := model.DefaultSnapshot() // threshold 20000
	balances := ledger.Balances{Wallet: dec("5000")}

	alerts := Alerts(snap, balances, decimal.Zero, 0)
	require.NotEmpty(t, alerts)
	assert.Equal(t, notify.Error, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "low")
}

func TestAlertsPendingInterestAndOverspend(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Transactions = []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("100"), Date: when},
		{Type: model.TypeExpense, Amount: dec("200"), Date: when},
	}
	balances := ledger.Balances{Savings: dec("1000000")}

	alerts := Alerts(snap, balances, dec("651.63"), 3)
	require.GreaterOrEqual(t, len(alerts), 3)
	assert.Contains(t, alerts[0].Message, "pending interest")
	assert.Contains(t, alerts[0].Message, "3 days")

	var overspend bool
	for _, a := range alerts {
		if a.Severity == notify.Error && a.Message != alerts[0].Message {
			overspend = true
		}
	}
	assert.True(t, overspend, "spending over income raises an alert")
}

func TestAlertsBudgetOverrun(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Budgets["Food"] = dec("100")
	snap.Transactions = []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("100000"), Date: when},
		{Type: model.TypeExpense, Amount: dec("150"), Category: "Food", Date: when},
	}
	balances := ledger.Balances{Wallet: dec("100000")}

	alerts := Alerts(snap, balances, decimal.Zero, 0)
	var found bool
	for _, a := range alerts {
		if a.Severity == notify.Error {
			assert.Contains(t, a.Message, "Food")
			found = true
		}
	}
	assert.True(t, found)
}

func TestSuggestSavings(t *testing.T) {
	salary := []model.Transaction{{Type: model.TypeIncome, Amount: dec("1000"), Source: "Salary"}}

	tests := []struct {
		name   string
		totals Totals
		txs    []model.Transaction
		want   string
	}{
		{"no income", Totals{}, nil, "record your income"},
		{"very high spend", Totals{Incomes: dec("1000"), Expenses: dec("950")}, nil, "very high"},
		{"salaried low spend", Totals{Incomes: dec("1000"), Expenses: dec("300")}, salary, "save 30%"},
		{"salaried mid spend", Totals{Incomes: dec("1000"), Expenses: dec("500")}, salary, "save 25%"},
		{"salaried high spend", Totals{Incomes: dec("1000"), Expenses: dec("700")}, salary, "save 20%"},
		{"no salary source", Totals{Incomes: dec("1000"), Expenses: dec("300")}, nil, "15-20%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestSavings(tt.totals, tt.txs, "COP")
			assert.Contains(t, got, tt.want)
		})
	}
}
