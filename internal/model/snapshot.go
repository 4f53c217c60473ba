package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the user's name and the seed balances each account starts
// from. Seeds are fixed at setup; every later movement is a transaction.
type Profile struct {
	Name      string          `json:"name"`
	Savings   decimal.Decimal `json:"savings"`
	Wallet    decimal.Decimal `json:"wallet"`
	Cash      decimal.Decimal `json:"cash"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Seed returns the seed balance for an account.
func (p Profile) Seed(a Account) decimal.Decimal {
	switch a {
	case AccountSavings:
		return p.Savings
	case AccountWallet:
		return p.Wallet
	case AccountCash:
		return p.Cash
	}
	return decimal.Zero
}

// Settings are the user-mutable knobs. A rate change affects only interest
// not yet applied; already-materialized interest is never reconciled.
type Settings struct {
	AnnualRate   decimal.Decimal `json:"annualRate"`   // nominal EA, percent
	LowThreshold decimal.Decimal `json:"lowThreshold"` // low-balance alert level
	Currency     string          `json:"currency"`     // ISO display code
}

// InterestMeta tracks how far interest has been materialized.
type InterestMeta struct {
	// LastApplied is the watermark: nil until the interest system is first
	// initialized, after which all accrual is computed relative to it.
	LastApplied *time.Time `json:"lastInterestApplied"`
	// DailyInterests is a scratch cache of per-day computed interest keyed by
	// ISO date, cleared on every application.
	DailyInterests map[string]decimal.Decimal `json:"dailyInterests"`
}

// Snapshot is the full persisted state. The store owns it exclusively.
type Snapshot struct {
	Profile      *Profile                   `json:"user"`
	Transactions []Transaction              `json:"transactions"`
	Budgets      map[string]decimal.Decimal `json:"budgets"`
	Settings     Settings                   `json:"settings"`
	Meta         InterestMeta               `json:"meta"`
	LastUpdated  time.Time                  `json:"lastUpdated"`
}

// DefaultCategories seed the expense category list for a new snapshot.
var DefaultCategories = []string{"Transport", "Skincare", "Health", "Entertainment", "Food", "Other"}

// DefaultSettings returns the settings a fresh snapshot starts with.
func DefaultSettings() Settings {
	return Settings{
		AnnualRate:   decimal.NewFromFloat(8.25),
		LowThreshold: decimal.NewFromInt(20000),
		Currency:     "COP",
	}
}

// DefaultSnapshot is the documented fallback when no persisted state exists
// (or what exists cannot be read).
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Budgets:  map[string]decimal.Decimal{},
		Settings: DefaultSettings(),
		Meta:     InterestMeta{DailyInterests: map[string]decimal.Decimal{}},
	}
}
