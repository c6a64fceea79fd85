// internal/engine/cards.go
package engine

import (
	"sort"
	"time"

	"multibank-aggregator/internal/domain"
)

// Переводы между своими счетами тратами не считаются.
const transfersCategory = "Переводы"

// Минимальная месячная выгода, при которой рекомендация показывается.
const materialityThreshold = 100.0

// CardRecommendation — предложение оформить новую карту с оценкой
// дополнительной месячной выгоды по самой затратной категории.
type CardRecommendation struct {
	Offer            domain.RecommendedCardOffer `json:"offer"`
	TopCategory      string                      `json:"topCategory"`
	TopCategorySpend float64                     `json:"topCategorySpend"`
	CurrentRate      float64                     `json:"currentRate"`
	OfferRate        float64                     `json:"offerRate"`
	PotentialSaving  float64                     `json:"potentialSaving"`
}

// RecommendCard анализирует расходы за последний месяц, находит
// категорию с максимальными тратами и подбирает предложение карты
// с кэшбэком выше текущего лучшего по этой категории. Возвращает nil,
// если предложения нет или выгода ниже порога существенности.
// При равных тратах категорий побеждает первая встреченная.
func RecommendCard(now time.Time, transactions []domain.Transaction, accounts []domain.Account, table []domain.CashbackCategory, offers []domain.RecommendedCardOffer) *CardRecommendation {
	monthAgo := now.AddDate(0, -1, 0)

	// Суммируем траты по категориям, сохраняя порядок первого появления.
	spendBy := make(map[string]float64)
	var order []string
	for _, t := range transactions {
		if t.Type != domain.TransactionExpense || t.Category == transfersCategory {
			continue
		}
		date, err := time.Parse(time.RFC3339, t.Date)
		if err != nil || !date.After(monthAgo) {
			continue
		}
		if _, ok := spendBy[t.Category]; !ok {
			order = append(order, t.Category)
		}
		amount := t.Amount
		if amount < 0 {
			amount = -amount
		}
		spendBy[t.Category] += amount
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return spendBy[order[i]] > spendBy[order[j]]
	})
	topCategory := order[0]
	topSpend := spendBy[topCategory]

	// Текущая лучшая ставка по своим дебетовым и кредитным картам.
	currentRate := 0.0
	for _, acc := range accounts {
		if acc.Type != domain.AccountDebit && acc.Type != domain.AccountCredit {
			continue
		}
		for _, cc := range table {
			if cc.BankName == acc.BankName {
				if rate := cc.Categories[topCategory]; rate > currentRate {
					currentRate = rate
				}
				break
			}
		}
	}

	var bestOffer *domain.RecommendedCardOffer
	bestRate := currentRate
	for i := range offers {
		if rate := offers[i].CashbackRates[topCategory]; rate > bestRate {
			bestRate = rate
			bestOffer = &offers[i]
		}
	}
	if bestOffer == nil {
		return nil
	}

	saving := topSpend * (bestRate - currentRate) / 100
	if saving <= materialityThreshold {
		return nil
	}

	return &CardRecommendation{
		Offer:            *bestOffer,
		TopCategory:      topCategory,
		TopCategorySpend: topSpend,
		CurrentRate:      currentRate,
		OfferRate:        bestRate,
		PotentialSaving:  saving,
	}
}
