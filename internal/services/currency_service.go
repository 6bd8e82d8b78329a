// internal/services/currency_service.go
package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RateSource supplies exchange rates expressed in canonical-currency units
// (rate = how many canonical units one unit of the code is worth).
type RateSource interface {
	Rate(code string) (float64, bool)
	Codes() []string
}

// StaticRateSource serves rates from an immutable table, so it is safe for
// concurrent use without locking.
type StaticRateSource struct {
	rates map[string]float64
}

func NewStaticRateSource(rates map[string]float64) *StaticRateSource {
	table := make(map[string]float64, len(rates))
	for code, rate := range rates {
		table[strings.ToUpper(code)] = rate
	}
	return &StaticRateSource{rates: table}
}

func (s *StaticRateSource) Rate(code string) (float64, bool) {
	rate, ok := s.rates[strings.ToUpper(code)]
	return rate, ok
}

func (s *StaticRateSource) Codes() []string {
	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

type CurrencyService struct {
	source    RateSource
	canonical string
}

func NewCurrencyService(source RateSource, canonical string) *CurrencyService {
	return &CurrencyService{
		source:    source,
		canonical: strings.ToUpper(canonical),
	}
}

// Canonical is the currency every price is persisted in.
func (s *CurrencyService) Canonical() string {
	return s.canonical
}

// Codes lists the currencies the rate source knows about.
func (s *CurrencyService) Codes() []string {
	return s.source.Codes()
}

// Convert translates amount between two currency codes, rounded to cents.
// Unknown codes produce a ConversionError.
func (s *CurrencyService) Convert(amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return amount, nil
	}

	fromRate, ok := s.source.Rate(from)
	if !ok {
		return 0, &ConversionError{Code: from}
	}

	toRate, ok := s.source.Rate(to)
	if !ok {
		return 0, &ConversionError{Code: to}
	}

	converted := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(fromRate)).
		Div(decimal.NewFromFloat(toRate)).
		Round(2)

	return converted.InexactFloat64(), nil
}
