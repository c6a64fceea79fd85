// internal/engine/cards_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibank-aggregator/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tx(id string, daysAgo int, desc string, amount float64, txType domain.TransactionType, category string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        testNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		Description: desc,
		Amount:      amount,
		Type:        txType,
		Category:    category,
	}
}

func TestRecommendCard(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 1, "Зарплата", 120000, domain.TransactionIncome, "Зарплата"),
		tx("t2", 4, "Ресторан \"Огонек\"", -5600, domain.TransactionExpense, "Рестораны"),
		tx("t3", 9, "Ресторан \"White Rabbit\"", -12500, domain.TransactionExpense, "Рестораны"),
		tx("t4", 2, "Perekrestok", -3450.50, domain.TransactionExpense, "Супермаркеты"),
	}
	accounts := []domain.Account{
		{ID: "a1", BankName: "ABank", Type: domain.AccountDebit},
		{ID: "a2", BankName: "SBank", Type: domain.AccountDebit},
	}
	table := []domain.CashbackCategory{
		{BankName: "ABank", Categories: map[string]float64{"Рестораны": 5}},
		{BankName: "SBank", Categories: map[string]float64{"Рестораны": 1}},
	}
	offers := []domain.RecommendedCardOffer{
		{ID: "rec1", Name: "ABank Premium", CashbackRates: map[string]float64{"Рестораны": 10}},
	}

	rec := RecommendCard(testNow, transactions, accounts, table, offers)
	require.NotNil(t, rec)

	assert.Equal(t, "Рестораны", rec.TopCategory)
	assert.Equal(t, 18100.0, rec.TopCategorySpend)
	assert.Equal(t, 5.0, rec.CurrentRate)
	assert.Equal(t, 10.0, rec.OfferRate)
	// 18100 × (10−5)/100 = 905
	assert.InDelta(t, 905, rec.PotentialSaving, 1e-9)
	assert.Equal(t, "rec1", rec.Offer.ID)
}

func TestRecommendCardBelowThreshold(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 3, "Кафе", -1500, domain.TransactionExpense, "Рестораны"),
	}
	offers := []domain.RecommendedCardOffer{
		{ID: "rec1", CashbackRates: map[string]float64{"Рестораны": 5}},
	}

	// Выгода 1500 × 5% = 75 ₽ — меньше порога в 100 ₽.
	rec := RecommendCard(testNow, transactions, nil, nil, offers)
	assert.Nil(t, rec)
}

func TestRecommendCardNoBetterOffer(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 3, "Ресторан", -50000, domain.TransactionExpense, "Рестораны"),
	}
	accounts := []domain.Account{{ID: "a1", BankName: "ABank", Type: domain.AccountDebit}}
	table := []domain.CashbackCategory{
		{BankName: "ABank", Categories: map[string]float64{"Рестораны": 10}},
	}
	offers := []domain.RecommendedCardOffer{
		{ID: "rec1", CashbackRates: map[string]float64{"Рестораны": 10}},
	}

	// Ставка не выше текущей — рекомендации нет.
	assert.Nil(t, RecommendCard(testNow, transactions, accounts, table, offers))
}

func TestRecommendCardIgnoresOldAndTransferSpending(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 45, "Старый ресторан", -90000, domain.TransactionExpense, "Рестораны"),
		tx("t2", 2, "Перевод Ивану", -90000, domain.TransactionExpense, "Переводы"),
		tx("t3", 3, "Такси", -9000, domain.TransactionExpense, "Такси"),
	}
	offers := []domain.RecommendedCardOffer{
		{ID: "rec1", CashbackRates: map[string]float64{"Рестораны": 10, "Переводы": 10, "Такси": 7}},
	}

	rec := RecommendCard(testNow, transactions, nil, nil, offers)
	require.NotNil(t, rec)
	assert.Equal(t, "Такси", rec.TopCategory)
}

func TestRecommendCardEmptyInputs(t *testing.T) {
	assert.Nil(t, RecommendCard(testNow, nil, nil, nil, nil))
}

func TestRecommendCardTopCategoryTieIsFirstEncountered(t *testing.T) {
	transactions := []domain.Transaction{
		tx("t1", 2, "Кафе", -5000, domain.TransactionExpense, "Рестораны"),
		tx("t2", 3, "Такси", -5000, domain.TransactionExpense, "Такси"),
	}
	offers := []domain.RecommendedCardOffer{
		{ID: "rec1", CashbackRates: map[string]float64{"Рестораны": 10, "Такси": 10}},
	}

	rec := RecommendCard(testNow, transactions, nil, nil, offers)
	require.NotNil(t, rec)
	assert.Equal(t, "Рестораны", rec.TopCategory)
}
