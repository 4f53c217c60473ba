package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banklar/banklar/internal/clock"
	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/notify"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	st := Open(path, clock.Fixed(testNow), zerolog.Nop(), notify.Discard{})
	st.LoadOrInit()
	return st
}

func TestLoadOrInitMissingFile(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "banklar.json"))

	snap := st.Snapshot()
	assert.Nil(t, snap.Profile)
	assert.Empty(t, snap.Transactions)
	assert.NotNil(t, snap.Budgets)
	assert.True(t, snap.Settings.AnnualRate.Equal(dec("8.25")))
	assert.Equal(t, "COP", snap.Settings.Currency)
	assert.Nil(t, snap.Meta.LastApplied)
}

func TestLoadOrInitCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banklar.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	// Corrupt-but-present data must load as absent, never crash.
	st := openStore(t, path)
	assert.Nil(t, st.Profile())
	assert.Empty(t, st.Transactions())
}

func TestAppendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banklar.json")
	st := openStore(t, path)
	st.SetProfile(model.Profile{Name: "Ana", Savings: dec("100.50"), CreatedAt: testNow})
	st.Append(model.Transaction{
		ID: "a", Type: model.TypeIncome, Amount: dec("1234.56"),
		Date: testNow, Account: model.AccountWallet, Source: "salary",
	})
	st.SetWatermark(testNow)

	st2 := openStore(t, path)
	require.NotNil(t, st2.Profile())
	assert.Equal(t, "Ana", st2.Profile().Name)
	assert.True(t, st2.Profile().Savings.Equal(dec("100.50")), "decimals survive the round trip")

	txs := st2.Transactions()
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(dec("1234.56")))
	require.NotNil(t, st2.Meta().LastApplied)
	assert.True(t, st2.Meta().LastApplied.Equal(testNow))
}

func TestAppendSurvivesPersistenceFailure(t *testing.T) {
	// Point the snapshot under a regular file so the directory cannot be
	// created: the write fails, the in-memory append must not roll back.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	st := openStore(t, filepath.Join(blocker, "banklar.json"))
	st.Append(model.Transaction{ID: "a", Type: model.TypeIncome, Amount: dec("10"), Date: testNow, Account: model.AccountCash})
	assert.Len(t, st.Transactions(), 1, "append succeeds in memory despite the failed write")
}

func TestRemove(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "banklar.json"))
	st.Append(model.Transaction{ID: "a", Type: model.TypeIncome, Amount: dec("10"), Date: testNow, Account: model.AccountCash})
	st.Append(model.Transaction{ID: "b", Type: model.TypeIncome, Amount: dec("20"), Date: testNow, Account: model.AccountCash})

	assert.True(t, st.Remove("a"))
	assert.False(t, st.Remove("a"), "second removal is a no-op")
	txs := st.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "b", txs[0].ID)
}

func TestBudgets(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "banklar.json"))
	st.SetBudget("Food", dec("50000"))
	st.SetBudget("Transport", dec("20000"))

	budgets := st.Budgets()
	assert.Len(t, budgets, 2)
	assert.True(t, budgets["Food"].Equal(dec("50000")))

	assert.True(t, st.RemoveBudget("Food"))
	assert.False(t, st.RemoveBudget("Food"))
	assert.Len(t, st.Budgets(), 1)
}

func TestDailyInterestScratchCache(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "banklar.json"))
	st.RecordDailyInterest("2025-06-09", dec("217.2100"))
	st.RecordDailyInterest("2025-06-10", dec("217.2100"))
	assert.Len(t, st.Meta().DailyInterests, 2)

	st.ClearDailyInterests()
	assert.Empty(t, st.Meta().DailyInterests)
}

func TestSnapshotReturnsCopies(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "banklar.json"))
	st.Append(model.Transaction{ID: "a", Type: model.TypeIncome, Amount: dec("10"), Date: testNow, Account: model.AccountCash})

	snap := st.Snapshot()
	snap.Transactions[0].ID = "mutated"
	snap.Budgets["sneaky"] = dec("1")

	assert.Equal(t, "a", st.Transactions()[0].ID)
	assert.Empty(t, st.Budgets())
}

func TestReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banklar.json")
	st := openStore(t, path)

	restored := model.DefaultSnapshot()
	restored.Profile = &model.Profile{Name: "Luz", Wallet: dec("5000"), CreatedAt: testNow}
	restored.Transactions = []model.Transaction{
		{ID: "x", Type: model.TypeExpense, Amount: dec("100"), Date: testNow, Account: model.AccountWallet},
	}
	st.Replace(restored)

	st2 := openStore(t, path)
	require.NotNil(t, st2.Profile())
	assert.Equal(t, "Luz", st2.Profile().Name)
	assert.Len(t, st2.Transactions(), 1)
}
