// Package ledger derives balances. Nothing here is stored: every balance is
// the profile's seed amounts plus a replay of the transaction log.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/model"
)

// Balances holds point-in-time per-account balances. Values are not clamped:
// an overdrawn account reads negative so that balance always equals seed plus
// the signed sum of movements.
type Balances struct {
	Savings decimal.Decimal
	Wallet  decimal.Decimal
	Cash    decimal.Decimal
}

// Total returns the sum across all accounts.
func (b Balances) Total() decimal.Decimal {
	return b.Savings.Add(b.Wallet).Add(b.Cash)
}

// Of returns the balance of a single account.
func (b Balances) Of(a model.Account) decimal.Decimal {
	switch a {
	case model.AccountSavings:
		return b.Savings
	case model.AccountWallet:
		return b.Wallet
	case model.AccountCash:
		return b.Cash
	}
	return decimal.Zero
}

func (b *Balances) add(a model.Account, amt decimal.Decimal) {
	switch a {
	case model.AccountSavings:
		b.Savings = b.Savings.Add(amt)
	case model.AccountWallet:
		b.Wallet = b.Wallet.Add(amt)
	case model.AccountCash:
		b.Cash = b.Cash.Add(amt)
	}
}

func (b *Balances) sub(a model.Account, amt decimal.Decimal) {
	b.add(a, amt.Neg())
}

// Compute replays the whole log against the profile's seeds.
func Compute(profile *model.Profile, txs []model.Transaction) Balances {
	return replay(profile, txs, time.Time{}, false)
}

// ComputeAsOf replays only transactions dated at or before asOf. The
// interest engine uses this to read the savings balance at the start of a
// pending day.
func ComputeAsOf(profile *model.Profile, txs []model.Transaction, asOf time.Time) Balances {
	return replay(profile, txs, asOf, true)
}

func replay(profile *model.Profile, txs []model.Transaction, asOf time.Time, cutoff bool) Balances {
	var b Balances
	if profile != nil {
		for _, a := range model.Accounts() {
			b.add(a, profile.Seed(a))
		}
	}

	sorted := make([]model.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for _, tx := range sorted {
		if cutoff && tx.Date.After(asOf) {
			continue
		}
		apply(&b, tx)
	}
	return b
}

func apply(b *Balances, tx model.Transaction) {
	switch tx.Type {
	case model.TypeIncome:
		if tx.SavingsAllocated.IsPositive() {
			b.add(model.AccountSavings, tx.SavingsAllocated)
			if rest := tx.Amount.Sub(tx.SavingsAllocated); rest.IsPositive() {
				b.add(tx.Account, rest)
			}
		} else {
			b.add(tx.Account, tx.Amount)
		}
	case model.TypeExpense:
		b.sub(tx.Account, tx.Amount)
	case model.TypeTransfer, model.TypeConversion:
		b.sub(tx.From, tx.Amount)
		b.add(tx.To, tx.Amount)
	}
}
