package model

import "fmt"

// Account identifies one of the three tracked balances.
type Account string

const (
	AccountSavings Account = "savings" // interest-bearing
	AccountWallet  Account = "wallet"  // digital transactional
	AccountCash    Account = "cash"    // physical currency
)

// Accounts lists all accounts in display order.
func Accounts() []Account {
	return []Account{AccountSavings, AccountWallet, AccountCash}
}

// ParseAccount converts a user-supplied string into an Account.
func ParseAccount(s string) (Account, error) {
	switch Account(s) {
	case AccountSavings, AccountWallet, AccountCash:
		return Account(s), nil
	}
	return "", fmt.Errorf("unknown account %q (want savings, wallet or cash)", s)
}

// Valid reports whether a is one of the three known accounts.
func (a Account) Valid() bool {
	return a == AccountSavings || a == AccountWallet || a == AccountCash
}
