package interest

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/id"
	"github.com/banklar/banklar/internal/model"
)

// Result reports what an application attempt did.
type Result struct {
	Applied     bool
	Initialized bool            // watermark was unset and has now been set
	Amount      decimal.Decimal // materialized amount when Applied
	Pending     decimal.Decimal // computed total before the threshold check
	Days        int             // pending days covered
}

// Apply materializes pending interest as a single income transaction dated
// now, with the full amount allocated to savings. It advances the watermark
// and clears the scratch cache. Safe to call repeatedly: after a successful
// application the watermark covers today, so the next call is a no-op until
// a new calendar day elapses.
func (e *Engine) Apply() Result {
	if e.store.Profile() == nil {
		return Result{}
	}

	now := e.clock.Now()
	if e.store.Meta().LastApplied == nil {
		e.store.SetWatermark(now)
		e.log.Info().Time("watermark", now).Msg("interest tracking initialized")
		return Result{Initialized: true}
	}

	days := e.PendingDays()
	pending := e.Accrue()
	if pending.LessThan(minApply) {
		return Result{Pending: pending, Days: len(days)}
	}

	rate := e.store.Settings().AnnualRate
	amount := pending.Round(2)
	tx := model.Transaction{
		ID:               id.New(),
		Type:             model.TypeIncome,
		Amount:           amount,
		Date:             now,
		Account:          model.AccountSavings,
		SavingsAllocated: amount,
		Source:           "Compound interest",
		Interest:         true,
		Description:      fmt.Sprintf("Accrued compound interest (%s%% EA, %d days)", rate, len(days)),
	}

	e.store.Append(tx)
	e.store.SetWatermark(now)
	e.store.ClearDailyInterests()

	e.log.Info().
		Str("amount", amount.StringFixed(2)).
		Int("days", len(days)).
		Msg("interest applied")

	return Result{Applied: true, Amount: amount, Pending: pending, Days: len(days)}
}
