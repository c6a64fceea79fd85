// internal/engine/exchange_test.go
package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibank-aggregator/internal/domain"
)

func usdRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.5, Sell: 92.8, Promotion: "Лучший курс в приложении"},
		{BankName: "SBank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 89.9, Sell: 94.1},
		{BankName: "VBank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.1, Sell: 93.5},
		{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.2, Sell: 93.8},
		{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyEUR, Buy: 98.2, Sell: 101.5},
	}
}

func TestCompareRates(t *testing.T) {
	options := CompareRates(usdRates(), 10000, domain.CurrencyRUB, domain.CurrencyUSD)
	require.Len(t, options, 4)

	// Минимальный курс продажи дает максимальный результат.
	assert.Equal(t, 92.8, options[0].Sell)
	assert.InDelta(t, 10000/92.8, options[0].Result, 1e-9)

	// Порядок строго по возрастанию курса продажи.
	sells := []float64{options[0].Sell, options[1].Sell, options[2].Sell, options[3].Sell}
	assert.Equal(t, []float64{92.8, 93.5, 93.8, 94.1}, sells)

	// Результаты не возрастают.
	for i := 0; i < len(options)-1; i++ {
		assert.GreaterOrEqual(t, options[i].Result, options[i+1].Result)
	}
}

func TestCompareRatesKeepsSameBankQuotes(t *testing.T) {
	options := CompareRates(usdRates(), 10000, domain.CurrencyRUB, domain.CurrencyUSD)

	abank := 0
	for _, opt := range options {
		if opt.BankName == "ABank" {
			abank++
		}
	}
	// Промо-котировки одного банка не схлопываются.
	assert.Equal(t, 2, abank)
}

func TestCompareRatesNoQuotes(t *testing.T) {
	options := CompareRates(usdRates(), 10000, domain.CurrencyRUB, domain.CurrencyCNY)
	// Пустой, но не nil: «нет котировок» отличимо от «не посчитано».
	require.NotNil(t, options)
	assert.Empty(t, options)
}

func TestCompareRatesInvalidAmount(t *testing.T) {
	for _, amount := range []float64{-100, math.NaN(), math.Inf(1)} {
		options := CompareRates(usdRates(), amount, domain.CurrencyRUB, domain.CurrencyUSD)
		require.Len(t, options, 4)
		for _, opt := range options {
			assert.Equal(t, 0.0, opt.Result)
		}
	}
}

func TestCompareRatesStableForEqualResults(t *testing.T) {
	rates := []domain.ExchangeRate{
		{BankName: "First", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Sell: 93.0},
		{BankName: "Second", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Sell: 93.0},
	}
	options := CompareRates(rates, 10000, domain.CurrencyRUB, domain.CurrencyUSD)
	require.Len(t, options, 2)
	assert.Equal(t, "First", options[0].BankName)
	assert.Equal(t, "Second", options[1].BankName)
}

func TestAvailableCurrencies(t *testing.T) {
	currencies := AvailableCurrencies(usdRates())
	assert.Equal(t, []domain.Currency{domain.CurrencyUSD, domain.CurrencyEUR}, currencies)
}
