// Command gendata writes a synthetic options dataset for local
// development and demos: a random-walk SPX-like underlying with call
// and put quotes over a fixed strike ladder and rolling weekly
// expiries.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"optionslab/internal/domain"
	"optionslab/pkg/formulas"
)

var strikes = []float64{4700, 4750, 4800, 4850, 4900}

func main() {
	out := flag.String("out", "data/SPX_Sample.json", "output dataset file")
	start := flag.String("start", "2024-01-02", "first trading date (YYYY-MM-DD)")
	days := flag.Int("days", 30, "number of trading days to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	startDate, err := time.Parse(domain.DateLayout, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start date %q: %v\n", *start, err)
		os.Exit(1)
	}

	ds := generate(startDate, *days, datasetName(*out), rand.New(rand.NewSource(*seed)))

	if err := writeDataset(*out, ds); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d records\n", ds.Metadata.RecordCount)
	fmt.Printf("Saved to: %s\n", *out)
	fmt.Printf("Date range: %s to %s\n", ds.Metadata.DateRange["start"], ds.Metadata.DateRange["end"])
}

func generate(startDate time.Time, days int, name string, rng *rand.Rand) *domain.Dataset {
	underlying := 4800.0
	current := startDate
	expiry := startDate.AddDate(0, 0, 5)

	var records []domain.OptionRecord
	var firstDate, lastDate string

	for day := 0; day < days; day++ {
		underlying += rng.Float64()*100 - 50
		if underlying < 4500 {
			underlying = 4500
		}
		if underlying > 5100 {
			underlying = 5100
		}

		date := current.Format(domain.DateLayout)
		expiryStr := expiry.Format(domain.DateLayout)
		if firstDate == "" {
			firstDate = date
		}
		lastDate = date

		for _, strike := range strikes {
			records = append(records,
				record(date, underlying, expiryStr, strike, domain.Call, optionPrice(underlying-strike, rng)),
				record(date, underlying, expiryStr, strike, domain.Put, optionPrice(strike-underlying, rng)),
			)
		}

		current = current.AddDate(0, 0, 1)

		// Roll to a fresh weekly expiry every 5 trading days
		if day%5 == 4 {
			expiry = current.AddDate(0, 0, 5)
		}
	}

	return &domain.Dataset{
		Metadata: domain.DatasetMetadata{
			DatasetName: name,
			DateRange:   map[string]string{"start": firstDate, "end": lastDate},
			RecordCount: len(records),
		},
		Data: records,
	}
}

// optionPrice prices one side from its moneyness: intrinsic value plus
// a random time premium in the money, pure random premium otherwise,
// floored at 5.
func optionPrice(moneyness float64, rng *rand.Rand) float64 {
	var price float64
	if moneyness > 0 {
		price = moneyness + 10 + rng.Float64()*40
	} else {
		price = 5 + rng.Float64()*25
	}
	if price < 5 {
		price = 5
	}
	return formulas.Round2(price)
}

func record(date string, underlying float64, expiry string, strike float64, t domain.OptionType, price float64) domain.OptionRecord {
	return domain.OptionRecord{
		Date:       date,
		Underlying: formulas.Round2(underlying),
		Expiry:     expiry,
		Strike:     strike,
		Type:       t,
		MidPrice:   price,
	}
}

func datasetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

func writeDataset(path string, ds *domain.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0644)
}
