package ledger

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/store"
)

// ErrNoProfile is returned when a ledger operation runs before setup.
var ErrNoProfile = errors.New("no user profile; run init first")

// Service provides the validating command surface over the store.
type Service struct {
	store *store.Store
}

// NewService creates a ledger Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Balances replays the full log.
func (s *Service) Balances() Balances {
	return Compute(s.store.Profile(), s.store.Transactions())
}

// BalancesAsOf replays the log up to and including asOf.
func (s *Service) BalancesAsOf(asOf time.Time) Balances {
	return ComputeAsOf(s.store.Profile(), s.store.Transactions(), asOf)
}

// Add validates a transaction against current balances and appends it.
// Rejected transactions leave the log untouched.
func (s *Service) Add(tx model.Transaction) error {
	if s.store.Profile() == nil {
		return ErrNoProfile
	}
	if err := Validate(tx, s.Balances()); err != nil {
		return err
	}
	s.store.Append(tx)
	return nil
}

// Remove deletes a transaction by ID. Reports whether anything was removed.
func (s *Service) Remove(txID string) bool {
	return s.store.Remove(txID)
}

// Filter narrows a transaction listing. Zero values match everything.
type Filter struct {
	Type    model.Type
	Account model.Account
	Search  string
}

// List returns matching transactions, newest first.
func (s *Service) List(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, tx := range s.store.Transactions() {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (f Filter) matches(tx model.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Account != "" {
		switch tx.Type {
		case model.TypeTransfer, model.TypeConversion:
			if tx.From != f.Account && tx.To != f.Account {
				return false
			}
		default:
			if tx.Account != f.Account {
				return false
			}
		}
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Description), q) &&
			!strings.Contains(strings.ToLower(tx.Source), q) &&
			!strings.Contains(strings.ToLower(tx.Category), q) {
			return false
		}
	}
	return true
}
