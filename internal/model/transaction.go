package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction.
type Type string

const (
	TypeIncome     Type = "income"
	TypeExpense    Type = "expense"
	TypeTransfer   Type = "transfer"
	TypeConversion Type = "conversion" // cash-conversion: a tagged transfer
)

// Direction records which way a cash conversion went. It has no effect on
// balances; it exists for reporting.
type Direction string

const (
	DirectionDigitalToCash Direction = "digital-to-cash"
	DirectionCashToDigital Direction = "cash-to-digital"
)

// Transaction is one immutable row in the append-only log. There is no edit
// operation: the only undo is removal, which works because balances are
// derived by replay, never stored.
type Transaction struct {
	ID     string          `json:"id"`
	Type   Type            `json:"type"`
	Amount decimal.Decimal `json:"amount"` // always > 0
	Date   time.Time       `json:"date"`   // ordering key for all replay

	// Income and expense target a single account.
	Account Account `json:"account,omitempty"`

	// Income only: portion credited to savings. When positive and less than
	// Amount, the remainder is credited to Account.
	SavingsAllocated decimal.Decimal `json:"savingsAllocated,omitempty"`
	Source           string          `json:"source,omitempty"`
	Interest         bool            `json:"interest,omitempty"` // materialized interest income

	// Expense only.
	Category string `json:"category,omitempty"`

	// Transfer and conversion.
	From      Account   `json:"from,omitempty"`
	To        Account   `json:"to,omitempty"`
	Direction Direction `json:"direction,omitempty"`

	Description string `json:"description,omitempty"`
}

// SourceAccount returns the account a transaction debits, if any.
func (t Transaction) SourceAccount() (Account, bool) {
	switch t.Type {
	case TypeExpense:
		return t.Account, true
	case TypeTransfer, TypeConversion:
		return t.From, true
	}
	return "", false
}
