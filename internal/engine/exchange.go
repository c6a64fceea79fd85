// internal/engine/exchange.go
package engine

import (
	"sort"

	"multibank-aggregator/internal/domain"
)

// RateOption — котировка с рассчитанным результатом обмена.
type RateOption struct {
	domain.ExchangeRate
	Result float64 `json:"result"`
}

// CompareRates ранжирует котировки по выгодности покупки валюты:
// result = amount / sell, сортировка по убыванию результата,
// стабильная при равных значениях. Несколько котировок одного банка —
// самостоятельные варианты, они не схлопываются. Для пары без
// котировок возвращается пустой (не nil) список.
func CompareRates(rates []domain.ExchangeRate, amount float64, from, to domain.Currency) []RateOption {
	amount = sanitizeAmount(amount)

	options := make([]RateOption, 0)
	for _, rate := range rates {
		if rate.From != from || rate.To != to {
			continue
		}
		if rate.Sell <= 0 {
			continue
		}
		options = append(options, RateOption{
			ExchangeRate: rate,
			Result:       amount / rate.Sell,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Result > options[j].Result
	})
	return options
}

// AvailableCurrencies возвращает валюты, в которые есть хотя бы одна
// котировка, в порядке первого появления.
func AvailableCurrencies(rates []domain.ExchangeRate) []domain.Currency {
	seen := make(map[domain.Currency]struct{})
	var currencies []domain.Currency
	for _, rate := range rates {
		if _, ok := seen[rate.To]; ok {
			continue
		}
		seen[rate.To] = struct{}{}
		currencies = append(currencies, rate.To)
	}
	return currencies
}
