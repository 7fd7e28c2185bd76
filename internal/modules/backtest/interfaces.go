package backtest

import (
	"optionslab/internal/domain"
)

// OptionIndex is the read-only view of a dataset the validator and
// engine operate on. *options.Index satisfies it; tests substitute
// stubs for degenerate dataset states.
type OptionIndex interface {
	PriceOf(date string, strike float64, expiry string, optionType domain.OptionType) (float64, bool)
	UnderlyingOf(date string) (float64, bool)
	AvailableDates() []string
	StrikesFor(expiry string, optionType domain.OptionType) []float64
	Exists(strike float64, expiry string, optionType domain.OptionType) bool
}
