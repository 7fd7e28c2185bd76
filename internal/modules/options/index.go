// Package options provides an in-memory lookup index over one
// dataset's option records.
package options

import (
	"sort"

	"optionslab/internal/domain"
)

type priceKey struct {
	date       string
	strike     float64
	expiry     string
	optionType domain.OptionType
}

type comboKey struct {
	strike     float64
	expiry     string
	optionType domain.OptionType
}

type strikeSetKey struct {
	expiry     string
	optionType domain.OptionType
}

// Index answers point lookups and enumeration queries over a dataset
// snapshot. All maps are built once at construction and never mutated
// afterwards, so a single Index is safe to share across concurrent
// backtest requests.
//
// The dataset does not guarantee uniqueness of the (date, strike,
// expiry, type) tuple. When duplicates exist, the first record in
// dataset order wins: the build below only inserts a key on first
// sight, which reproduces the first-hit semantics of a linear scan
// deterministically.
type Index struct {
	priceByKey       map[priceKey]float64
	underlyingByDate map[string]float64
	combos           map[comboKey]struct{}
	dates            []string
	expiries         []string
	strikesByExpType map[strikeSetKey][]float64
	strikesByExpiry  map[string][]float64
}

// NewIndex builds the index for one dataset snapshot.
func NewIndex(ds *domain.Dataset) *Index {
	ix := &Index{
		priceByKey:       make(map[priceKey]float64),
		underlyingByDate: make(map[string]float64),
		combos:           make(map[comboKey]struct{}),
		strikesByExpType: make(map[strikeSetKey][]float64),
		strikesByExpiry:  make(map[string][]float64),
	}

	dateSet := make(map[string]struct{})
	expirySet := make(map[string]struct{})
	strikeSets := make(map[strikeSetKey]map[float64]struct{})
	mergedStrikeSets := make(map[string]map[float64]struct{})

	for _, rec := range ds.Data {
		pk := priceKey{rec.Date, rec.Strike, rec.Expiry, rec.Type}
		if _, seen := ix.priceByKey[pk]; !seen {
			ix.priceByKey[pk] = rec.MidPrice
		}

		// Underlying is assumed identical across all records of a day;
		// the first record encountered wins, disagreements are not
		// reconciled.
		if _, seen := ix.underlyingByDate[rec.Date]; !seen {
			ix.underlyingByDate[rec.Date] = rec.Underlying
		}

		ix.combos[comboKey{rec.Strike, rec.Expiry, rec.Type}] = struct{}{}
		dateSet[rec.Date] = struct{}{}
		expirySet[rec.Expiry] = struct{}{}

		sk := strikeSetKey{rec.Expiry, rec.Type}
		if strikeSets[sk] == nil {
			strikeSets[sk] = make(map[float64]struct{})
		}
		strikeSets[sk][rec.Strike] = struct{}{}

		if mergedStrikeSets[rec.Expiry] == nil {
			mergedStrikeSets[rec.Expiry] = make(map[float64]struct{})
		}
		mergedStrikeSets[rec.Expiry][rec.Strike] = struct{}{}
	}

	ix.dates = sortedStrings(dateSet)
	ix.expiries = sortedStrings(expirySet)
	for sk, set := range strikeSets {
		ix.strikesByExpType[sk] = sortedFloats(set)
	}
	for expiry, set := range mergedStrikeSets {
		ix.strikesByExpiry[expiry] = sortedFloats(set)
	}

	return ix
}

// PriceOf returns the mid price quoted for the option on the given
// date, or false when no record matches.
func (ix *Index) PriceOf(date string, strike float64, expiry string, optionType domain.OptionType) (float64, bool) {
	price, ok := ix.priceByKey[priceKey{date, strike, expiry, optionType}]
	return price, ok
}

// UnderlyingOf returns the underlying price for the given date, taken
// from the first record of that day, or false when the date carries no
// records.
func (ix *Index) UnderlyingOf(date string) (float64, bool) {
	price, ok := ix.underlyingByDate[date]
	return price, ok
}

// AvailableDates returns all distinct trading dates, ascending.
func (ix *Index) AvailableDates() []string {
	return copyStrings(ix.dates)
}

// AvailableExpiries returns all distinct expiry dates, ascending.
func (ix *Index) AvailableExpiries() []string {
	return copyStrings(ix.expiries)
}

// StrikesFor returns the distinct strikes quoted for the given expiry
// and option type, ascending.
func (ix *Index) StrikesFor(expiry string, optionType domain.OptionType) []float64 {
	return copyFloats(ix.strikesByExpType[strikeSetKey{expiry, optionType}])
}

// StrikesByExpiry returns every expiry mapped to its distinct strikes
// (calls and puts merged), ascending.
func (ix *Index) StrikesByExpiry() map[string][]float64 {
	out := make(map[string][]float64, len(ix.strikesByExpiry))
	for expiry, strikes := range ix.strikesByExpiry {
		out[expiry] = copyFloats(strikes)
	}
	return out
}

// Exists reports whether any record matches the strike/expiry/type
// combination on any date.
func (ix *Index) Exists(strike float64, expiry string, optionType domain.OptionType) bool {
	_, ok := ix.combos[comboKey{strike, expiry, optionType}]
	return ok
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedFloats(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
