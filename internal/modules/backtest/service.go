package backtest

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"optionslab/internal/domain"
	"optionslab/internal/modules/datasets"
	"optionslab/pkg/formulas"
)

// Service orchestrates dataset resolution, validation and simulation.
type Service struct {
	repo      *datasets.Repository
	cache     *datasets.Cache
	validator *Validator
	engine    *Engine
	log       zerolog.Logger
}

// NewService creates a new backtest service
func NewService(repo *datasets.Repository, cache *datasets.Cache, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		validator: NewValidator(log),
		engine:    NewEngine(log),
		log:       log.With().Str("service", "backtest").Logger(),
	}
}

// ValidateStrategy runs the pre-flight checks for a strategy: dataset
// resolution first, then existence and entry-price checks against the
// dataset's index.
func (s *Service) ValidateStrategy(strategy domain.StrategyConfig) ValidationResponse {
	index, err := s.cache.IndexFor(strategy.DatasetName)
	if err != nil {
		code, _ := domain.CodeOf(err)
		return ValidationResponse{
			Valid:     false,
			Message:   domain.MessageOf(err),
			ErrorCode: string(code),
		}
	}

	return s.validator.Validate(strategy, index)
}

// Run executes a full backtest and maps every failure onto the error
// response shape. Unexpected internal faults are recovered here, at
// the outermost boundary, logged in detail and surfaced as a generic
// BACKTEST_FAILED; they are never silently swallowed as success.
func (s *Service) Run(req Request) (resp Response) {
	start := time.Now()
	runID := uuid.New().String()
	log := s.log.With().Str("run_id", runID).Str("dataset", req.Strategy.DatasetName).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Backtest run panicked")
			resp = errorResponse(domain.NewError(domain.CodeBacktestFailed,
				"Internal server error during backtest execution"))
		}
	}()

	index, err := s.cache.IndexFor(req.Strategy.DatasetName)
	if err != nil {
		return errorResponse(err)
	}

	outcome, err := s.engine.Run(req.Strategy, req.DateRange, index)
	if err != nil {
		log.Warn().Err(err).Msg("Backtest run failed")
		return errorResponse(err)
	}

	series := make([]float64, len(outcome.DailyPnL))
	for i, p := range outcome.DailyPnL {
		series[i] = p.CumulativePnL
	}

	executionTime := time.Since(start).Milliseconds()
	log.Info().
		Int("days", len(outcome.DailyPnL)).
		Float64("final_pnl", outcome.FinalPnL).
		Float64("mean_daily_pnl", formulas.Round2(formulas.Mean(series))).
		Float64("pnl_volatility", formulas.Round2(formulas.StdDev(series))).
		Str("exit_reason", outcome.ExitReason).
		Int64("execution_time_ms", executionTime).
		Msg("Backtest complete")

	lastDate := outcome.DailyPnL[len(outcome.DailyPnL)-1].Date

	return Response{
		Status: "success",
		StrategySummary: &StrategySummary{
			OptionType:        req.Strategy.OptionType,
			Strike:            req.Strategy.Strike,
			Expiry:            req.Strategy.Expiry,
			PositionDirection: req.Strategy.PositionDirection,
			Quantity:          req.Strategy.Quantity,
			EntryPrice:        outcome.EntryPrice,
			EntryDate:         outcome.EntryDate,
		},
		BacktestPeriod: &Period{
			StartDate: req.DateRange.StartDate,
			EndDate:   lastDate,
			TotalDays: len(outcome.DailyPnL),
		},
		Results: &Results{
			DailyPnL:       outcome.DailyPnL,
			FinalPnL:       outcome.FinalPnL,
			WinRate:        outcome.WinRate,
			MaxDrawdown:    outcome.MaxDrawdown,
			PositionClosed: outcome.PositionClosed,
			ExitReason:     outcome.ExitReason,
		},
		ExecutionTimeMs: &executionTime,
	}
}

func errorResponse(err error) Response {
	code, _ := domain.CodeOf(err)
	return Response{
		Status:    "error",
		Message:   domain.MessageOf(err),
		ErrorCode: string(code),
	}
}
