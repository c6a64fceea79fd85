// internal/engine/cashback.go
package engine

import "multibank-aggregator/internal/domain"

// BestCard — результат подбора карты для категории трат.
// Account равен nil, когда подходящих счетов нет вообще.
// Rate 0 — карта найдена, но кэшбэка по категории не будет;
// решает, считать ли это «нет карты», вызывающая сторона.
type BestCard struct {
	Account *domain.Account `json:"account"`
	Rate    float64         `json:"rate"`
}

// BestAccountForCategory выбирает счет с максимальным кэшбэком по
// категории. includedIDs — набор счетов, участвующих в оптимизации
// (переключатели в интерфейсе); nil означает «участвуют все».
// Банк без таблицы кэшбэка дает ставку 0. При равных ставках
// побеждает первый встреченный счет.
func BestAccountForCategory(accounts []domain.Account, includedIDs []string, table []domain.CashbackCategory, category string) BestCard {
	var included map[string]struct{}
	if includedIDs != nil {
		included = make(map[string]struct{}, len(includedIDs))
		for _, id := range includedIDs {
			included[id] = struct{}{}
		}
	}

	rates := make(map[string]float64, len(table))
	for _, cc := range table {
		rates[cc.BankName] = cc.Categories[category]
	}

	best := BestCard{Rate: -1}
	for i := range accounts {
		acc := &accounts[i]
		if included != nil {
			if _, ok := included[acc.ID]; !ok {
				continue
			}
		}
		rate := rates[acc.BankName]
		if rate > best.Rate {
			found := *acc
			best = BestCard{Account: &found, Rate: rate}
		}
	}

	if best.Account == nil {
		best.Rate = 0
	}
	return best
}
