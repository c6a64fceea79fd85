// internal/engine/cashback_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibank-aggregator/internal/domain"
)

func testAccounts() []domain.Account {
	return []domain.Account{
		{ID: "a1", Name: "ABank Black", BankName: "ABank", Balance: 28340.70, Type: domain.AccountDebit},
		{ID: "a2", Name: "SBank Карта", BankName: "SBank", Balance: 41200.90, Type: domain.AccountDebit},
		{ID: "a3", Name: "Fly Airlines", BankName: "ABank", Balance: -25000, Type: domain.AccountCredit},
		{ID: "a4", Name: "Сейф", BankName: "VBank", Balance: 540100, Type: domain.AccountSavings},
	}
}

func testCashbackTable() []domain.CashbackCategory {
	return []domain.CashbackCategory{
		{BankName: "ABank", Categories: map[string]float64{"Рестораны": 5, "АЗС": 3, "Подписки": 10}},
		{BankName: "SBank", Categories: map[string]float64{"Рестораны": 1, "Супермаркеты": 2}},
	}
}

func TestBestAccountForCategory(t *testing.T) {
	accounts := testAccounts()
	table := testCashbackTable()

	// Банк A дает 5%, банк S — 1%: выбираем счет банка A.
	best := BestAccountForCategory(accounts, []string{"a1", "a2"}, table, "Рестораны")
	require.NotNil(t, best.Account)
	assert.Equal(t, "a1", best.Account.ID)
	assert.Equal(t, 5.0, best.Rate)
}

func TestBestAccountForCategoryRespectsIncludedSet(t *testing.T) {
	accounts := testAccounts()
	table := testCashbackTable()

	// Счет банка A выключен из оптимизации — побеждает SBank.
	best := BestAccountForCategory(accounts, []string{"a2"}, table, "Рестораны")
	require.NotNil(t, best.Account)
	assert.Equal(t, "a2", best.Account.ID)
	assert.Equal(t, 1.0, best.Rate)

	// Пустой набор — карты нет вообще.
	best = BestAccountForCategory(accounts, []string{}, table, "Рестораны")
	assert.Nil(t, best.Account)
	assert.Equal(t, 0.0, best.Rate)

	// nil — участвуют все счета.
	best = BestAccountForCategory(accounts, nil, table, "Рестораны")
	require.NotNil(t, best.Account)
	assert.Equal(t, "a1", best.Account.ID)
}

func TestBestAccountForCategoryUnknownCategory(t *testing.T) {
	accounts := testAccounts()
	table := testCashbackTable()

	// Неизвестная категория — ставка 0, но карта считается найденной;
	// трактовку нуля выбирает вызывающая сторона.
	best := BestAccountForCategory(accounts, []string{"a1", "a2"}, table, "Кино")
	require.NotNil(t, best.Account)
	assert.Equal(t, "a1", best.Account.ID)
	assert.Equal(t, 0.0, best.Rate)
}

func TestBestAccountForCategoryFirstMaxWins(t *testing.T) {
	accounts := []domain.Account{
		{ID: "x1", BankName: "Bank1", Type: domain.AccountDebit},
		{ID: "x2", BankName: "Bank2", Type: domain.AccountDebit},
	}
	table := []domain.CashbackCategory{
		{BankName: "Bank1", Categories: map[string]float64{"Такси": 5}},
		{BankName: "Bank2", Categories: map[string]float64{"Такси": 5}},
	}

	best := BestAccountForCategory(accounts, nil, table, "Такси")
	require.NotNil(t, best.Account)
	assert.Equal(t, "x1", best.Account.ID)
}

func TestBestAccountForCategoryMonotonicity(t *testing.T) {
	accounts := testAccounts()
	table := testCashbackTable()

	before := BestAccountForCategory(accounts, []string{"a1", "a2"}, table, "Рестораны")

	// Увеличение ставки участвующего счета не уменьшает результат.
	table[1].Categories["Рестораны"] = 7
	after := BestAccountForCategory(accounts, []string{"a1", "a2"}, table, "Рестораны")
	assert.GreaterOrEqual(t, after.Rate, before.Rate)
	assert.Equal(t, "a2", after.Account.ID)
}

func TestBestAccountForCategoryEmptyInputs(t *testing.T) {
	best := BestAccountForCategory(nil, nil, nil, "Рестораны")
	assert.Nil(t, best.Account)
	assert.Equal(t, 0.0, best.Rate)
}

func TestBestAccountForCategoryDoesNotMutateInputs(t *testing.T) {
	accounts := testAccounts()
	table := testCashbackTable()

	best := BestAccountForCategory(accounts, nil, table, "Рестораны")
	require.NotNil(t, best.Account)

	// Результат — копия, изменение не трогает исходный срез.
	best.Account.Balance = -1
	assert.Equal(t, 28340.70, accounts[0].Balance)
}
