package backtest

import (
	"optionslab/internal/domain"
)

// DailyPnL is one simulated day: the mark-to-market cumulative P&L and
// the underlying price (0.0 when no record carries one). Values are
// rounded to 2 decimals when the point is built, so the summary
// statistics operate on exactly what the client sees.
type DailyPnL struct {
	Date            string  `json:"date"`
	CumulativePnL   float64 `json:"cumulative_pnl"`
	UnderlyingPrice float64 `json:"underlying_price"`
}

// Outcome is the result of one simulation run.
type Outcome struct {
	DailyPnL       []DailyPnL
	EntryDate      string
	EntryPrice     float64
	FinalPnL       float64
	WinRate        float64
	MaxDrawdown    float64
	PositionClosed bool
	ExitReason     string
}

const (
	// ExitReasonExpiry means the simulation reached the strategy's
	// expiry date and settled at intrinsic value.
	ExitReasonExpiry = "expiry"
	// ExitReasonBacktestEnd means the requested range ended with the
	// position still open.
	ExitReasonBacktestEnd = "backtest_end"
)

// ValidationResponse is the payload of POST /api/strategy/validate.
type ValidationResponse struct {
	Valid      bool     `json:"valid"`
	Message    string   `json:"message"`
	EntryPrice *float64 `json:"entry_price,omitempty"`
	ErrorCode  string   `json:"error_code,omitempty"`
}

// Request is the payload of POST /api/backtest/run.
type Request struct {
	Strategy  domain.StrategyConfig `json:"strategy"`
	DateRange domain.DateRange      `json:"date_range"`
}

// StrategySummary echoes the simulated strategy with its resolved
// entry point.
type StrategySummary struct {
	OptionType        domain.OptionType `json:"option_type"`
	Strike            float64           `json:"strike"`
	Expiry            string            `json:"expiry"`
	PositionDirection domain.Direction  `json:"position_direction"`
	Quantity          int               `json:"quantity"`
	EntryPrice        float64           `json:"entry_price"`
	EntryDate         string            `json:"entry_date"`
}

// Period describes the simulated window.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
}

// Results carries the P&L series and summary risk metrics.
type Results struct {
	DailyPnL       []DailyPnL `json:"daily_pnl"`
	FinalPnL       float64    `json:"final_pnl"`
	WinRate        float64    `json:"win_rate"`
	MaxDrawdown    float64    `json:"max_drawdown"`
	PositionClosed bool       `json:"position_closed"`
	ExitReason     string     `json:"exit_reason"`
}

// Response is the payload of POST /api/backtest/run: either a full
// success or an error with a machine-readable code, never a truncated
// outcome presented as success.
type Response struct {
	Status          string           `json:"status"`
	StrategySummary *StrategySummary `json:"strategy_summary,omitempty"`
	BacktestPeriod  *Period          `json:"backtest_period,omitempty"`
	Results         *Results         `json:"results,omitempty"`
	ExecutionTimeMs *int64           `json:"execution_time_ms,omitempty"`
	Message         string           `json:"message,omitempty"`
	ErrorCode       string           `json:"error_code,omitempty"`
}
