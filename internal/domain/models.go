// Package domain holds the core value types shared across modules.
package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used throughout the system.
// Lexicographic order on these strings equals chronological order, so
// date comparisons and range clamps work directly on the raw values.
const DateLayout = "2006-01-02"

// OptionType identifies the option side.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Direction identifies the position direction.
type Direction string

const (
	Buy  Direction = "buy"
	Sell Direction = "sell"
)

// OptionRecord is one quoted option on one trading day.
type OptionRecord struct {
	Date       string     `json:"date"`
	Underlying float64    `json:"underlying"`
	Expiry     string     `json:"expiry"`
	Strike     float64    `json:"strike"`
	Type       OptionType `json:"type"`
	MidPrice   float64    `json:"mid_price"`
}

// DateRange is an inclusive calendar-day window.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Validate checks the date formats. Ordering of start vs end is not
// enforced; an inverted range simply yields an empty simulation window.
func (r DateRange) Validate() error {
	if !ValidDate(r.StartDate) {
		return fmt.Errorf("start_date must be in YYYY-MM-DD format, got %q", r.StartDate)
	}
	if !ValidDate(r.EndDate) {
		return fmt.Errorf("end_date must be in YYYY-MM-DD format, got %q", r.EndDate)
	}
	return nil
}

// DatasetMetadata describes a dataset without its records.
type DatasetMetadata struct {
	DatasetName string            `json:"dataset_name"`
	DateRange   map[string]string `json:"date_range"`
	RecordCount int               `json:"record_count"`
}

// Dataset is a named, versioned collection of option records. It is
// loaded by the storage layer and treated as a read-only snapshot for
// the duration of a request.
type Dataset struct {
	Metadata DatasetMetadata `json:"metadata"`
	Data     []OptionRecord  `json:"data"`
}

// StrategyConfig describes a single-leg option position to simulate.
type StrategyConfig struct {
	DatasetName       string     `json:"dataset_name"`
	OptionType        OptionType `json:"option_type"`
	Strike            float64    `json:"strike"`
	Expiry            string     `json:"expiry"`
	PositionDirection Direction  `json:"position_direction"`
	Quantity          int        `json:"quantity"`
}

// Validate performs structural validation: field formats, ranges and
// enum membership. Existence against a dataset is checked separately by
// the strategy validator.
func (c StrategyConfig) Validate() error {
	if c.DatasetName == "" {
		return fmt.Errorf("dataset_name is required")
	}
	if c.OptionType != Call && c.OptionType != Put {
		return fmt.Errorf("option_type must be %q or %q, got %q", Call, Put, c.OptionType)
	}
	if c.Strike <= 0 {
		return fmt.Errorf("strike must be positive, got %v", c.Strike)
	}
	if !ValidDate(c.Expiry) {
		return fmt.Errorf("expiry must be in YYYY-MM-DD format, got %q", c.Expiry)
	}
	if c.PositionDirection != Buy && c.PositionDirection != Sell {
		return fmt.Errorf("position_direction must be %q or %q, got %q", Buy, Sell, c.PositionDirection)
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", c.Quantity)
	}
	return nil
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar day.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// MinDate returns the lexicographically (and therefore chronologically)
// smaller of two YYYY-MM-DD dates.
func MinDate(a, b string) string {
	if b < a {
		return b
	}
	return a
}
