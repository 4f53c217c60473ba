package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/banklar/banklar/internal/clock"
	"github.com/banklar/banklar/internal/config"
	"github.com/banklar/banklar/internal/interest"
	"github.com/banklar/banklar/internal/ledger"
	"github.com/banklar/banklar/internal/money"
	"github.com/banklar/banklar/internal/notify"
	"github.com/banklar/banklar/internal/store"
)

var hundred = decimal.NewFromInt(100)

// app bundles the wired services a command works with.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	notifier notify.Notifier
	clock    clock.Clock
	store    *store.Store
	ledger   *ledger.Service
	engine   *interest.Engine
}

// newApp loads config, builds the logger, opens the store and constructs the
// services.
func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	notifier := notify.NewLogNotifier(log)
	clk := clock.System()

	st := store.Open(cfg.DataFile, clk, log, notifier)
	st.LoadOrInit()

	return &app{
		cfg:      cfg,
		log:      log,
		notifier: notifier,
		clock:    clk,
		store:    st,
		ledger:   ledger.NewService(st),
		engine:   interest.NewEngine(st, clk, log),
	}, nil
}

// fmtMoney renders an amount in the snapshot's display currency.
func (a *app) fmtMoney(amount decimal.Decimal) string {
	return money.Format(amount, a.store.Settings().Currency)
}

// parseAmount parses a positive decimal command argument.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than zero, got %s", d)
	}
	return d, nil
}
