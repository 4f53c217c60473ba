package ledger

import (
	"fmt"

	"github.com/banklar/banklar/internal/model"
)

// ValidationError describes why a transaction was rejected before append.
// The log is untouched when validation fails.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid transaction: " + e.Reason
}

func invalidf(format string, args ...any) ValidationError {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a candidate transaction against the current balances.
// Income never requires a balance; every debit (expense, transfer,
// conversion) requires sufficient funds in its source account.
func Validate(tx model.Transaction, current Balances) error {
	if !tx.Amount.IsPositive() {
		return invalidf("amount must be greater than zero")
	}

	switch tx.Type {
	case model.TypeIncome:
		if !tx.Account.Valid() {
			return invalidf("income needs a destination account")
		}
		if tx.SavingsAllocated.IsNegative() {
			return invalidf("savings allocation cannot be negative")
		}
		if tx.SavingsAllocated.GreaterThan(tx.Amount) {
			return invalidf("savings allocation %s exceeds amount %s", tx.SavingsAllocated, tx.Amount)
		}

	case model.TypeExpense:
		if !tx.Account.Valid() {
			return invalidf("expense needs a source account")
		}

	case model.TypeTransfer, model.TypeConversion:
		if !tx.From.Valid() || !tx.To.Valid() {
			return invalidf("%s needs from and to accounts", tx.Type)
		}
		if tx.From == tx.To {
			return invalidf("from and to accounts must differ")
		}
		if tx.Type == model.TypeConversion {
			if err := checkDirection(tx); err != nil {
				return err
			}
		}

	default:
		return invalidf("unknown transaction type %q", tx.Type)
	}

	if src, ok := tx.SourceAccount(); ok {
		if current.Of(src).LessThan(tx.Amount) {
			return invalidf("insufficient balance in %s: have %s, need %s",
				src, current.Of(src), tx.Amount)
		}
	}
	return nil
}

// checkDirection ensures a conversion's reporting tag agrees with its
// accounts. The direction changes nothing about balances.
func checkDirection(tx model.Transaction) error {
	switch tx.Direction {
	case model.DirectionDigitalToCash:
		if tx.To != model.AccountCash || tx.From == model.AccountCash {
			return invalidf("digital-to-cash conversion must move into cash")
		}
	case model.DirectionCashToDigital:
		if tx.From != model.AccountCash || tx.To == model.AccountCash {
			return invalidf("cash-to-digital conversion must move out of cash")
		}
	default:
		return invalidf("conversion needs a direction")
	}
	return nil
}
