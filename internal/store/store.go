// Package store owns the persisted snapshot: the transaction log, the user
// profile, budgets, settings and interest metadata. No other package holds a
// mutable reference to any of it; readers get copies.
package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/clock"
	"github.com/banklar/banklar/internal/model"
	"github.com/banklar/banklar/internal/notify"
)

// Store holds the in-memory snapshot and persists it synchronously after
// every mutation. Persistence failure is reported through the notifier and
// the log but never rolled back: the in-memory state is the source of truth
// for the rest of the session.
type Store struct {
	mu       sync.Mutex
	path     string
	clock    clock.Clock
	log      zerolog.Logger
	notifier notify.Notifier
	state    model.Snapshot
}

// Open creates a Store bound to a snapshot file. Call LoadOrInit before use.
func Open(path string, clk clock.Clock, log zerolog.Logger, notifier notify.Notifier) *Store {
	return &Store{
		path:     path,
		clock:    clk,
		log:      log,
		notifier: notifier,
		state:    model.DefaultSnapshot(),
	}
}

// LoadOrInit deserializes the persisted snapshot. A missing or unreadable
// file falls back to the default snapshot; corrupt data is treated the same
// way. Startup never fails here.
func (s *Store) LoadOrInit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := readSnapshot(s.path)
	switch {
	case err == errNoSnapshot:
		s.log.Debug().Str("path", s.path).Msg("no snapshot found, starting fresh")
	case err != nil:
		s.log.Warn().Err(err).Str("path", s.path).Msg("snapshot unreadable, starting fresh")
		s.notifier.Notify("stored data could not be read; starting with a fresh ledger", notify.Warn)
	default:
		s.state = snap
	}
	normalize(&s.state)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.state)
}

// Replace swaps in a whole snapshot (backup restore) and persists.
func (s *Store) Replace(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = copySnapshot(snap)
	normalize(&s.state)
	s.persistLocked()
}

// Profile returns a copy of the user profile, or nil before setup.
func (s *Store) Profile() *model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Profile == nil {
		return nil
	}
	p := *s.state.Profile
	return &p
}

// SetProfile stores the profile created at setup and persists.
func (s *Store) SetProfile(p model.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Profile = &p
	s.persistLocked()
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// UpdateSettings replaces the settings and persists. Takes effect on the
// next balance or interest computation; already-applied interest is not
// reconciled.
func (s *Store) UpdateSettings(set model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = set
	s.persistLocked()
}

// Transactions returns a copy of the transaction log in insertion order.
// Consumers re-sort by date before replay.
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := make([]model.Transaction, len(s.state.Transactions))
	copy(txs, s.state.Transactions)
	return txs
}

// Find returns the transaction with the given ID.
func (s *Store) Find(txID string) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.state.Transactions {
		if tx.ID == txID {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// Append adds a transaction to the end of the log and persists.
func (s *Store) Append(tx model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions = append(s.state.Transactions, tx)
	s.persistLocked()
}

// Remove deletes the transaction with the given ID if present. Removal is
// the only undo: balances are recomputed, so dropping the row reverts its
// effect. Reports whether anything was removed.
func (s *Store) Remove(txID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.state.Transactions {
		if tx.ID == txID {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// Budgets returns a copy of the budget map.
func (s *Store) Budgets() map[string]decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make(map[string]decimal.Decimal, len(s.state.Budgets))
	for k, v := range s.state.Budgets {
		b[k] = v
	}
	return b
}

// SetBudget creates or replaces the limit for a category and persists.
func (s *Store) SetBudget(category string, limit decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Budgets[category] = limit
	s.persistLocked()
}

// RemoveBudget deletes a budget. Reports whether it existed.
func (s *Store) RemoveBudget(category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Budgets[category]; !ok {
		return false
	}
	delete(s.state.Budgets, category)
	s.persistLocked()
	return true
}

// Meta returns a copy of the interest metadata.
func (s *Store) Meta() model.InterestMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := model.InterestMeta{DailyInterests: make(map[string]decimal.Decimal, len(s.state.Meta.DailyInterests))}
	if s.state.Meta.LastApplied != nil {
		t := *s.state.Meta.LastApplied
		m.LastApplied = &t
	}
	for k, v := range s.state.Meta.DailyInterests {
		m.DailyInterests[k] = v
	}
	return m
}

// SetWatermark advances the last-applied interest watermark and persists.
func (s *Store) SetWatermark(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Meta.LastApplied = &t
	s.persistLocked()
}

// RecordDailyInterest stores a computed per-day interest amount in the
// scratch cache without persisting; the cache is debug state and is written
// out with the next mutation.
func (s *Store) RecordDailyInterest(day string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Meta.DailyInterests[day] = amount
}

// ClearDailyInterests empties the scratch cache.
func (s *Store) ClearDailyInterests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Meta.DailyInterests = map[string]decimal.Decimal{}
}

// persistLocked writes the snapshot to disk. Callers hold s.mu. A write
// failure is a side-channel warning, not a rollback signal.
func (s *Store) persistLocked() {
	s.state.LastUpdated = s.clock.Now()
	if err := writeSnapshot(s.path, s.state); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("persisting snapshot failed")
		s.notifier.Notify("saving data failed; changes are kept for this session only", notify.Warn)
	}
}

// normalize repairs nil maps after deserialization of older or partial
// snapshots.
func normalize(snap *model.Snapshot) {
	if snap.Budgets == nil {
		snap.Budgets = map[string]decimal.Decimal{}
	}
	if snap.Meta.DailyInterests == nil {
		snap.Meta.DailyInterests = map[string]decimal.Decimal{}
	}
}

func copySnapshot(in model.Snapshot) model.Snapshot {
	out := in
	if in.Profile != nil {
		p := *in.Profile
		out.Profile = &p
	}
	out.Transactions = make([]model.Transaction, len(in.Transactions))
	copy(out.Transactions, in.Transactions)
	out.Budgets = make(map[string]decimal.Decimal, len(in.Budgets))
	for k, v := range in.Budgets {
		out.Budgets[k] = v
	}
	out.Meta.DailyInterests = make(map[string]decimal.Decimal, len(in.Meta.DailyInterests))
	for k, v := range in.Meta.DailyInterests {
		out.Meta.DailyInterests[k] = v
	}
	if in.Meta.LastApplied != nil {
		t := *in.Meta.LastApplied
		out.Meta.LastApplied = &t
	}
	return out
}
