package ledger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banklar/banklar/internal/clock"
	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/notify"
	"github.com/banklar/banklar/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "banklar.json"),
		clock.Fixed(day(10)), zerolog.Nop(), notify.Discard{})
	st.LoadOrInit()
	return NewService(st), st
}

func TestAddRequiresProfile(t *testing.T) {
	svc, _ := newTestService(t)
	tx := model.Transaction{ID: "a", Type: model.TypeIncome, Amount: dec("100"),
		Date: day(1), Account: model.AccountWallet}
	assert.ErrorIs(t, svc.Add(tx), ErrNoProfile)
}

func TestAddValidatesAgainstCurrentBalances(t *testing.T) {
	svc, st := newTestService(t)
	st.SetProfile(*testProfile()) // wallet seed 50000

	ok := model.Transaction{ID: "a", Type: model.TypeExpense, Amount: dec("40000"),
		Date: day(1), Account: model.AccountWallet}
	require.NoError(t, svc.Add(ok))

	// Wallet now holds 10000; the next expense must be rejected and the log
	// left untouched.
	bad := model.Transaction{ID: "b", Type: model.TypeExpense, Amount: dec("20000"),
		Date: day(2), Account: model.AccountWallet}
	require.Error(t, svc.Add(bad))
	assert.Len(t, st.Transactions(), 1)
}

func TestRemoveRevertsEffect(t *testing.T) {
	svc, st := newTestService(t)
	st.SetProfile(*testProfile())

	tx := model.Transaction{ID: "a", Type: model.TypeExpense, Amount: dec("5000"),
		Date: day(1), Account: model.AccountCash, Category: "Transport"}
	require.NoError(t, svc.Add(tx))
	assert.True(t, svc.Balances().Cash.Equal(dec("15000")))

	assert.True(t, svc.Remove("a"))
	assert.True(t, svc.Balances().Cash.Equal(dec("20000")), "removal reverts the effect")
	assert.False(t, svc.Remove("a"), "second removal is a no-op")
}

func TestListFilters(t *testing.T) {
	svc, st := newTestService(t)
	st.SetProfile(*testProfile())

	require.NoError(t, svc.Add(model.Transaction{ID: "inc", Type: model.TypeIncome,
		Amount: dec("1000"), Date: day(1), Account: model.AccountWallet, Source: "salary"}))
	require.NoError(t, svc.Add(model.Transaction{ID: "exp", Type: model.TypeExpense,
		Amount: dec("200"), Date: day(2), Account: model.AccountCash, Category: "Food"}))
	require.NoError(t, svc.Add(model.Transaction{ID: "tr", Type: model.TypeTransfer,
		Amount: dec("300"), Date: day(3), From: model.AccountWallet, To: model.AccountSavings}))

	all := svc.List(Filter{})
	require.Len(t, all, 3)
	assert.Equal(t, "tr", all[0].ID, "newest first")

	byType := svc.List(Filter{Type: model.TypeExpense})
	require.Len(t, byType, 1)
	assert.Equal(t, "exp", byType[0].ID)

	// Account filter matches either side of a transfer.
	bySavings := svc.List(Filter{Account: model.AccountSavings})
	require.Len(t, bySavings, 1)
	assert.Equal(t, "tr", bySavings[0].ID)

	bySearch := svc.List(Filter{Search: "foo"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "exp", bySearch[0].ID, "case-insensitive substring on category")
}
