package backtest

import (
	"fmt"

	"github.com/rs/zerolog"

	"optionslab/internal/domain"
)

// maxSuggestedStrikes caps how many alternative strikes an
// INVALID_STRIKE message enumerates.
const maxSuggestedStrikes = 10

// Validator runs pre-flight checks for a strategy against a resolved
// option index. Dataset resolution happens before this point; a
// missing dataset never reaches the validator.
type Validator struct {
	log zerolog.Logger
}

// NewValidator creates a new strategy validator
func NewValidator(log zerolog.Logger) *Validator {
	return &Validator{log: log.With().Str("component", "validator").Logger()}
}

// Validate checks that the strategy's strike/expiry/type combination
// exists in the dataset and resolves an entry price from the first
// date carrying a quote.
//
// The entry date found here scans ALL available dates; the engine
// later re-resolves it constrained by the requested date range. The
// two can legitimately disagree: validation is a coarse pre-check, not
// a guarantee that a particular range will find a quote.
func (v *Validator) Validate(strategy domain.StrategyConfig, index OptionIndex) ValidationResponse {
	if !index.Exists(strategy.Strike, strategy.Expiry, strategy.OptionType) {
		available := index.StrikesFor(strategy.Expiry, strategy.OptionType)
		if len(available) > maxSuggestedStrikes {
			available = available[:maxSuggestedStrikes]
		}

		return ValidationResponse{
			Valid: false,
			Message: fmt.Sprintf("Strike %v not available for expiry %s. Available strikes: %v",
				strategy.Strike, strategy.Expiry, available),
			ErrorCode: string(domain.CodeInvalidStrike),
		}
	}

	for _, date := range index.AvailableDates() {
		if price, ok := index.PriceOf(date, strategy.Strike, strategy.Expiry, strategy.OptionType); ok {
			v.log.Debug().
				Str("entry_date", date).
				Float64("entry_price", price).
				Msg("Resolved entry price")

			return ValidationResponse{
				Valid:      true,
				Message:    "Strategy configuration is valid",
				EntryPrice: &price,
			}
		}
	}

	// The combination exists per Exists() but no date carries a quote.
	// Degenerate but possible, since existence and lookup are
	// independent checks.
	return ValidationResponse{
		Valid:     false,
		Message:   "No pricing data available for this option",
		ErrorCode: string(domain.CodeNoPricingData),
	}
}
