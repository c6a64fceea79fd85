// internal/engine/marketplace.go
package engine

import (
	"time"

	"multibank-aggregator/internal/domain"
)

// Доля трат, которую в среднем экономит пакетная подписка.
const DefaultMarketplaceSavingRate = 0.10

// SubscriptionRecommendation — подписка из маркетплейса, которая
// окупилась бы по истории трат пользователя. BestCard — дебетовая
// карта с лучшим кэшбэком по категории подписки; nil, когда кэшбэка
// по категории нет ни у одной карты.
type SubscriptionRecommendation struct {
	Subscription    domain.MarketplaceSubscription `json:"subscription"`
	TotalSpent      float64                        `json:"totalSpent"`
	PotentialSaving float64                        `json:"potentialSaving"`
	BestCard        *domain.Account                `json:"bestCard,omitempty"`
	BestCardRate    float64                        `json:"bestCardRate,omitempty"`
}

// RecommendSubscriptions сопоставляет расходы за последний месяц со
// списками мерчантов пакетных подписок. Подписка рекомендуется, когда
// траты по ее мерчантам превышают ее стоимость; выгода оценивается как
// savingRate от суммы трат (некорректная ставка заменяется значением
// по умолчанию). Совпадение мерчанта — точное совпадение описания
// транзакции.
func RecommendSubscriptions(now time.Time, transactions []domain.Transaction, accounts []domain.Account, table []domain.CashbackCategory, subs []domain.MarketplaceSubscription, savingRate float64) []SubscriptionRecommendation {
	if savingRate <= 0 || savingRate > 1 {
		savingRate = DefaultMarketplaceSavingRate
	}
	monthAgo := now.AddDate(0, -1, 0)

	var recent []domain.Transaction
	for _, t := range transactions {
		if t.Type != domain.TransactionExpense {
			continue
		}
		date, err := time.Parse(time.RFC3339, t.Date)
		if err != nil || !date.After(monthAgo) {
			continue
		}
		recent = append(recent, t)
	}

	debitIDs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Type == domain.AccountDebit {
			debitIDs = append(debitIDs, acc.ID)
		}
	}

	recommendations := make([]SubscriptionRecommendation, 0)
	for _, sub := range subs {
		merchants := make(map[string]struct{}, len(sub.RelatedMerchants))
		for _, m := range sub.RelatedMerchants {
			merchants[m] = struct{}{}
		}

		total := 0.0
		for _, t := range recent {
			if _, ok := merchants[t.Description]; ok {
				if t.Amount < 0 {
					total -= t.Amount
				} else {
					total += t.Amount
				}
			}
		}
		if total <= sub.Cost {
			continue
		}

		rec := SubscriptionRecommendation{
			Subscription:    sub,
			TotalSpent:      total,
			PotentialSaving: total * savingRate,
		}
		best := BestAccountForCategory(accounts, debitIDs, table, sub.CashbackCategory)
		if best.Account != nil && best.Rate > 0 {
			rec.BestCard = best.Account
			rec.BestCardRate = best.Rate
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations
}
