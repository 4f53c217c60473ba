// Package interest accrues daily-compounded interest on the savings account
// and materializes it as income transactions.
package interest

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/clock"
	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/store"
)

// dayKey is the ISO date format keying the per-day scratch cache.
const dayKey = "2006-01-02"

// minApply is the smallest total worth materializing. Anything below one
// cent stays pending so the log is not spammed with near-zero rows.
var minApply = decimal.New(1, -2)

// Engine computes pending interest against the store's transaction log.
type Engine struct {
	store *store.Store
	clock clock.Clock
	log   zerolog.Logger
}

// NewEngine creates an Engine. The clock is injectable so tests control
// "today".
func NewEngine(st *store.Store, clk clock.Clock, log zerolog.Logger) *Engine {
	return &Engine{store: st, clock: clk, log: log}
}

// DailyRate derives the effective daily rate from a nominal annual
// percentage: (1 + r/100)^(1/365) - 1. This is the true daily-compounding
// decomposition, not the simple-interest r/365 approximation.
func DailyRate(annual decimal.Decimal) decimal.Decimal {
	r, _ := annual.Float64()
	return decimal.NewFromFloat(math.Pow(1+r/100, 1.0/365) - 1)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PendingDays returns the calendar dates strictly after the watermark's date
// up to and including today, one per day. Time-of-day on the watermark is
// ignored. Empty when the watermark is unset or up to date.
func (e *Engine) PendingDays() []time.Time {
	meta := e.store.Meta()
	if e.store.Profile() == nil || meta.LastApplied == nil {
		return nil
	}
	last := startOfDay(*meta.LastApplied)
	today := startOfDay(e.clock.Now())

	var days []time.Time
	for d := last.AddDate(0, 0, 1); !d.After(today); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Accrue computes the total pending interest and records each day's amount
// in the scratch cache. Each day's base is the savings balance from replay
// at that day's midnight, which by construction excludes earlier pending
// days' unapplied interest; compounding across the pending window is
// realized only at application time.
func (e *Engine) Accrue() decimal.Decimal {
	days := e.PendingDays()
	if len(days) == 0 {
		return decimal.Zero
	}

	rate := DailyRate(e.store.Settings().AnnualRate)
	profile := e.store.Profile()
	txs := e.store.Transactions()

	total := decimal.Zero
	for _, day := range days {
		base := ledger.ComputeAsOf(profile, txs, day).Savings
		dayInterest := base.Mul(rate)
		total = total.Add(dayInterest)
		e.store.RecordDailyInterest(day.Format(dayKey), dayInterest.Round(4))
	}
	return total
}

// TodayAccrued returns today's single not-yet-applied day of interest, for
// display. Zero when the watermark already covers today.
func (e *Engine) TodayAccrued() decimal.Decimal {
	meta := e.store.Meta()
	if e.store.Profile() == nil || meta.LastApplied == nil {
		return decimal.Zero
	}
	now := e.clock.Now()
	if startOfDay(*meta.LastApplied).Equal(startOfDay(now)) {
		return decimal.Zero
	}
	rate := DailyRate(e.store.Settings().AnnualRate)
	base := ledger.ComputeAsOf(e.store.Profile(), e.store.Transactions(), startOfDay(now)).Savings
	return base.Mul(rate)
}

// Projection returns the compound interest the current savings balance would
// earn over a full year at the current rate.
func (e *Engine) Projection() decimal.Decimal {
	savings := ledger.Compute(e.store.Profile(), e.store.Transactions()).Savings
	rate := DailyRate(e.store.Settings().AnnualRate)
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(365))
	return savings.Mul(factor.Sub(decimal.NewFromInt(1)))
}
