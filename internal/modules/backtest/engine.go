package backtest

import (
	"math"

	"github.com/rs/zerolog"

	"optionslab/internal/domain"
	"optionslab/pkg/formulas"
)

// contractMultiplier converts a per-unit option price change into a
// per-contract dollar P&L.
const contractMultiplier = 100

// Engine runs the day-stepping simulation. It holds no per-run state:
// each Run is a pure fold over the date window, so one Engine serves
// concurrent requests.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a new backtest engine
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "engine").Logger()}
}

// Run simulates the strategy over the requested range against the
// given index and returns the P&L trajectory with summary metrics.
// Expected failures come back as domain.Error values; the engine never
// panics for data conditions.
func (e *Engine) Run(strategy domain.StrategyConfig, dateRange domain.DateRange, index OptionIndex) (*Outcome, error) {
	availableDates := index.AvailableDates()
	if len(availableDates) == 0 {
		return nil, domain.NewError(domain.CodeInsufficientData, "No data available in dataset")
	}

	// Simulation window: available dates within the requested range,
	// clamped at expiry.
	windowEnd := domain.MinDate(dateRange.EndDate, strategy.Expiry)
	window := make([]string, 0, len(availableDates))
	for _, d := range availableDates {
		if dateRange.StartDate <= d && d <= windowEnd {
			window = append(window, d)
		}
	}
	if len(window) == 0 {
		return nil, domain.NewError(domain.CodeInsufficientData, "No data available for entry date %s", dateRange.StartDate)
	}

	// The entry date is re-resolved here independently of the
	// validator, constrained by the window. A validated strategy can
	// still fail for a range whose first date carries no quote.
	entryDate := window[0]
	entryPrice, ok := index.PriceOf(entryDate, strategy.Strike, strategy.Expiry, strategy.OptionType)
	if !ok {
		return nil, domain.NewError(domain.CodeNoPricingData, "No pricing data for entry date %s", entryDate)
	}

	positionMultiplier := 1.0
	if strategy.PositionDirection == domain.Sell {
		positionMultiplier = -1.0
	}
	scale := positionMultiplier * contractMultiplier * float64(strategy.Quantity)

	// Explicit left-to-right fold over the window. Cumulative P&L is a
	// mark-to-market snapshot, replaced on days with a quote and
	// carried forward unchanged on days without one.
	points := make([]DailyPnL, 0, len(window))
	cumulativePnl := 0.0
	positionClosed := false
	exitReason := ExitReasonBacktestEnd

	for _, date := range window {
		if date == strategy.Expiry {
			// Settlement reads the underlying as a required value.
			underlying, ok := index.UnderlyingOf(date)
			if !ok {
				return nil, domain.NewError(domain.CodeBacktestFailed, "No underlying price on expiry date %s", date)
			}

			var intrinsic float64
			if strategy.OptionType == domain.Call {
				intrinsic = math.Max(0, underlying-strategy.Strike)
			} else {
				intrinsic = math.Max(0, strategy.Strike-underlying)
			}

			cumulativePnl = (intrinsic - entryPrice) * scale
			points = append(points, DailyPnL{
				Date:            date,
				CumulativePnL:   formulas.Round2(cumulativePnl),
				UnderlyingPrice: formulas.Round2(underlying),
			})
			positionClosed = true
			exitReason = ExitReasonExpiry
			break
		}

		if currentPrice, ok := index.PriceOf(date, strategy.Strike, strategy.Expiry, strategy.OptionType); ok {
			cumulativePnl = (currentPrice - entryPrice) * scale
		}

		underlying, _ := index.UnderlyingOf(date)
		points = append(points, DailyPnL{
			Date:            date,
			CumulativePnL:   formulas.Round2(cumulativePnl),
			UnderlyingPrice: formulas.Round2(underlying),
		})
	}

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.CumulativePnL
	}

	return &Outcome{
		DailyPnL:       points,
		EntryDate:      entryDate,
		EntryPrice:     entryPrice,
		FinalPnL:       formulas.Round2(cumulativePnl),
		WinRate:        formulas.WinRate(series),
		MaxDrawdown:    formulas.MaxDrawdown(series),
		PositionClosed: positionClosed,
		ExitReason:     exitReason,
	}, nil
}
