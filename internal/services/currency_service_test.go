// internal/services/currency_service_test.go
package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurrencyService() *CurrencyService {
	source := NewStaticRateSource(map[string]float64{
		"USD": 1.0,
		"EUR": 1.1,
		"GBP": 1.27,
		"JPY": 0.0067,
	})
	return NewCurrencyService(source, "USD")
}

func TestConvertSameCurrency(t *testing.T) {
	svc := newTestCurrencyService()

	amount, err := svc.Convert(19.99, "USD", "USD")
	require.NoError(t, err)
	assert.Equal(t, 19.99, amount)
}

func TestConvertToCanonical(t *testing.T) {
	svc := newTestCurrencyService()

	amount, err := svc.Convert(10, "EUR", "USD")
	require.NoError(t, err)
	assert.Equal(t, 11.0, amount)
}

func TestConvertFromCanonical(t *testing.T) {
	svc := newTestCurrencyService()

	amount, err := svc.Convert(11, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
}

func TestConvertCaseInsensitiveCodes(t *testing.T) {
	svc := newTestCurrencyService()

	amount, err := svc.Convert(10, "eur", "usd")
	require.NoError(t, err)
	assert.Equal(t, 11.0, amount)
}

func TestConvertUnknownCurrency(t *testing.T) {
	svc := newTestCurrencyService()

	tests := []struct {
		name string
		from string
		to   string
		code string
	}{
		{"unknown source", "XXX", "USD", "XXX"},
		{"unknown target", "USD", "ZZZ", "ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Convert(10, tt.from, tt.to)
			require.Error(t, err)

			var conversionErr *ConversionError
			require.ErrorAs(t, err, &conversionErr)
			assert.Equal(t, tt.code, conversionErr.Code)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	svc := newTestCurrencyService()

	pairs := [][2]string{
		{"USD", "EUR"},
		{"EUR", "GBP"},
		{"GBP", "JPY"},
		{"GBP", "EUR"},
	}

	for _, pair := range pairs {
		for _, amount := range []float64{1, 9.99, 250, 1999.95} {
			there, err := svc.Convert(amount, pair[0], pair[1])
			require.NoError(t, err)

			back, err := svc.Convert(there, pair[1], pair[0])
			require.NoError(t, err)

			assert.InDelta(t, amount, back, 0.02, "round trip %s->%s for %v", pair[0], pair[1], amount)
		}
	}
}

func TestConvertConcurrent(t *testing.T) {
	svc := newTestCurrencyService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			amount, err := svc.Convert(10, "EUR", "USD")
			assert.NoError(t, err)
			assert.Equal(t, 11.0, amount)
		}()
	}
	wg.Wait()
}

func TestRateSourceCodesSorted(t *testing.T) {
	svc := newTestCurrencyService()

	assert.Equal(t, []string{"EUR", "GBP", "JPY", "USD"}, svc.Codes())
}
