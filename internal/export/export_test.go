package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banklar/banklar/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSnapshot() model.Snapshot {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	watermark := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)

	snap := model.DefaultSnapshot()
	snap.Profile = &model.Profile{Name: "Ana", Savings: dec("100000.50"), CreatedAt: t1}
	snap.Budgets["Food"] = dec("50000")
	snap.Meta.LastApplied = &watermark
	snap.Transactions = []model.Transaction{
		// Deliberately out of date order; CSV export sorts.
		{ID: "b", Type: model.TypeExpense, Amount: dec("200.25"), Date: t2,
			Account: model.AccountWallet, Category: "Food"},
		{ID: "a", Type: model.TypeIncome, Amount: dec("1000"), Date: t1,
			Account: model.AccountSavings, SavingsAllocated: dec("1000"), Source: "Compound interest", Interest: true},
	}
	return snap
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleSnapshot()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header + 2 rows")
	assert.Equal(t, CSVHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a,"), "oldest first")
	assert.Contains(t, lines[1], "true", "interest flag exported")
	assert.Contains(t, lines[2], "200.25")
	assert.Contains(t, lines[2], "Food")
}

func TestJSONRoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap))

	got, err := ReadJSON(&buf)
	require.NoError(t, err)

	require.NotNil(t, got.Profile)
	assert.Equal(t, "Ana", got.Profile.Name)
	assert.True(t, got.Profile.Savings.Equal(dec("100000.50")), "decimal precision preserved")
	require.Len(t, got.Transactions, 2)
	assert.True(t, got.Transactions[0].Amount.Equal(dec("200.25")))
	assert.True(t, got.Transactions[1].Interest)
	assert.True(t, got.Budgets["Food"].Equal(dec("50000")))
	require.NotNil(t, got.Meta.LastApplied)
	assert.True(t, got.Meta.LastApplied.Equal(*snap.Meta.LastApplied))
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding backup")
}
