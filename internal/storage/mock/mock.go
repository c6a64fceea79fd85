// internal/storage/mock/mock.go
package mock

import (
	"context"
	"time"

	"multibank-aggregator/internal/domain"
)

// Source — демонстрационный источник данных. Живого подключения к
// банкам нет: снимок каждый раз собирается заново из фиксированного
// набора, поэтому копия всегда глубокая. Задержка имитирует сетевой
// вызов агрегатора.
type Source struct {
	delay time.Duration
	now   func() time.Time
}

func NewSource(delay time.Duration) *Source {
	return &Source{delay: delay, now: time.Now}
}

// NewSourceAt фиксирует «текущее» время снимка. Используется в тестах,
// чтобы относительные даты транзакций были воспроизводимыми.
func NewSourceAt(delay time.Duration, now func() time.Time) *Source {
	return &Source{delay: delay, now: now}
}

func (s *Source) FetchFinancialData(ctx context.Context) (*domain.FinancialData, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return buildSnapshot(s.now()), nil
}

// Идентификаторы счетов из демо-набора.
const (
	AccABankDebit   = "acc_abank_debit"
	AccSBankDebit   = "acc_sbank_debit"
	AccABankDebit2  = "acc_abank_debit_2"
	AccABankCredit  = "acc_abank_credit"
	AccVBankSavings = "acc_vbank_savings"
	AccSBankSavings = "acc_sbank_savings"
)

func daysAgo(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(time.RFC3339)
}

func daysAhead(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(time.RFC3339)
}

// buildSnapshot собирает демо-данные. Значения совпадают с витринным
// набором «Мультибанка»: баланс основного счета специально занижен,
// чтобы показывать нехватку средств при крупной покупке.
func buildSnapshot(now time.Time) *domain.FinancialData {
	accounts := []domain.Account{
		{ID: AccABankDebit, Name: "ABank Black", BankName: "ABank", Last4: "1111", Balance: 28340.70, Type: domain.AccountDebit, BrandColor: "#EF3124"},
		{ID: AccSBankDebit, Name: "SBank Карта", BankName: "SBank", Last4: "2222", Balance: 41200.90, Type: domain.AccountDebit, BrandColor: "#228B22"},
		{ID: AccABankDebit2, Name: "A-Карта", BankName: "ABank", Last4: "7777", Balance: 15800.00, Type: domain.AccountDebit, BrandColor: "#EF3124"},
		{ID: AccABankCredit, Name: "Fly Airlines", BankName: "ABank", Last4: "3333", Balance: -25000.00, Type: domain.AccountCredit, BrandColor: "#00BFFF"},
		{ID: AccVBankSavings, Name: "Сейф", BankName: "VBank", Last4: "4444", Balance: 540100.00, Type: domain.AccountSavings, BrandColor: "#0033A0"},
		{ID: AccSBankSavings, Name: "Накопительный", BankName: "SBank", Last4: "5555", Balance: 210000.00, Type: domain.AccountSavings, BrandColor: "#005522"},
	}

	netWorth := 0.0
	for _, acc := range accounts {
		netWorth += acc.Balance
	}

	return &domain.FinancialData{
		NetWorth: netWorth,
		Accounts: accounts,
		Transactions: []domain.Transaction{
			{ID: "t1", Date: daysAgo(now, 1), Description: "Зарплата", Amount: 120000, Type: domain.TransactionIncome, Category: "Зарплата"},
			{ID: "t2", Date: daysAgo(now, 2), Description: "Perekrestok", Amount: -3450.50, Type: domain.TransactionExpense, Category: "Супермаркеты"},
			{ID: "t3", Date: daysAgo(now, 2), Description: "Yandex.Go", Amount: -450.00, Type: domain.TransactionExpense, Category: "Такси"},
			{ID: "t4", Date: daysAgo(now, 3), Description: "Yandex.Plus", Amount: -299.00, Type: domain.TransactionExpense, Category: "Подписки"},
			{ID: "t5", Date: daysAgo(now, 4), Description: "Ресторан \"Огонек\"", Amount: -5600.00, Type: domain.TransactionExpense, Category: "Рестораны"},
			{ID: "t6", Date: daysAgo(now, 5), Description: "Lukoil", Amount: -2500.00, Type: domain.TransactionExpense, Category: "АЗС"},
			{ID: "t7", Date: daysAgo(now, 6), Description: "Ozon.ru", Amount: -7800.00, Type: domain.TransactionExpense, Category: "Покупки"},
			{ID: "t8", Date: daysAgo(now, 7), Description: "Перевод от Ивана", Amount: 5000, Type: domain.TransactionIncome, Category: "Переводы"},
			{ID: "t9", Date: daysAgo(now, 10), Description: "Aeroflot", Amount: -15300, Type: domain.TransactionExpense, Category: "Путешествия"},
			{ID: "t10", Date: daysAgo(now, 12), Description: "Pyaterochka", Amount: -1234.20, Type: domain.TransactionExpense, Category: "Супермаркеты"},
			{ID: "t11", Date: daysAgo(now, 8), Description: "KinoPoisk", Amount: -299.00, Type: domain.TransactionExpense, Category: "Подписки"},
			{ID: "t12", Date: daysAgo(now, 15), Description: "Yandex.Go", Amount: -560.00, Type: domain.TransactionExpense, Category: "Такси"},
			{ID: "t13", Date: daysAgo(now, 18), Description: "Litres.ru", Amount: -499.00, Type: domain.TransactionExpense, Category: "Книги"},
			{ID: "t14", Date: daysAgo(now, 20), Description: "SberMarket", Amount: -4200.00, Type: domain.TransactionExpense, Category: "Доставка"},
			{ID: "t15", Date: daysAgo(now, 22), Description: "VK Music", Amount: -169.00, Type: domain.TransactionExpense, Category: "Подписки"},
			{ID: "t16", Date: daysAgo(now, 9), Description: "Ресторан \"White Rabbit\"", Amount: -12500.00, Type: domain.TransactionExpense, Category: "Рестораны"},
			{ID: "t17", Date: daysAgo(now, 16), Description: "Кафе \"Шоколадница\"", Amount: -1200.00, Type: domain.TransactionExpense, Category: "Рестораны"},
		},
		Goals: []domain.FinancialGoal{
			{ID: "g1", Name: "Отпуск в Таиланде", CurrentAmount: 210000, TargetAmount: 350000},
			{ID: "g2", Name: "Новый ноутбук", CurrentAmount: 45000, TargetAmount: 150000},
		},
		NightSafe: domain.NightSafeData{
			Enabled:            true,
			IncludedAccountIDs: []string{AccABankDebit, AccSBankDebit, AccABankDebit2},
			TargetAccountID:    AccVBankSavings,
			Stats:              domain.NightSafeStats{Yesterday: 120.54, Month: 3450.12, Total: 15230.88},
		},
		SmartPay: domain.SmartPayData{
			Enabled:            true,
			IncludedAccountIDs: []string{AccABankDebit, AccSBankDebit, AccABankDebit2, AccABankCredit},
		},
		CashbackCategories: []domain.CashbackCategory{
			{BankName: "ABank", Categories: map[string]float64{"Рестораны": 5, "АЗС": 3, "Путешествия": 2, "Супермаркеты": 3, "Подписки": 10, "Книги": 5, "Такси": 5}},
			{BankName: "SBank", Categories: map[string]float64{"Супермаркеты": 2, "Рестораны": 1, "АЗС": 1, "Доставка": 5}},
		},
		SpecialOffers: []domain.SpecialOffer{
			{ID: "so1", PartnerName: "Ozon", BankName: "ABank", Description: "Кэшбэк 10% на все покупки электроники в приложении Ozon", ExpiryDate: daysAhead(now, 15), BrandColor: "#4f46e5"},
			{ID: "so2", PartnerName: "M.Video", BankName: "SBank", Description: "Скидка 2000₽ при покупке от 20000₽ по SBank Карте", ExpiryDate: daysAhead(now, 10), BrandColor: "#ef4444"},
		},
		ExchangeRates: []domain.ExchangeRate{
			{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.5, Sell: 92.8, Promotion: "Лучший курс в приложении"},
			{BankName: "SBank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 89.9, Sell: 94.1},
			{BankName: "VBank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.1, Sell: 93.5},
			// Второе предложение того же банка — промо-курсы не схлопываются.
			{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyUSD, Buy: 90.2, Sell: 93.8},
			{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyEUR, Buy: 98.2, Sell: 101.5},
			{BankName: "SBank", From: domain.CurrencyRUB, To: domain.CurrencyEUR, Buy: 97.8, Sell: 102.8},
			{BankName: "VBank", From: domain.CurrencyRUB, To: domain.CurrencyEUR, Buy: 98.0, Sell: 100.9, Promotion: "Выгодный курс на ЕВРО"},
			{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyCNY, Buy: 12.5, Sell: 13.1},
			{BankName: "SBank", From: domain.CurrencyRUB, To: domain.CurrencyCNY, Buy: 12.3, Sell: 13.5},
			{BankName: "ABank", From: domain.CurrencyRUB, To: domain.CurrencyCNY, Buy: 12.4, Sell: 12.8, Promotion: "Лучший курс на Юань"},
		},
		Subscriptions: []domain.Subscription{
			{ID: "sub1", Name: "Yandex.Plus", Amount: 299, BillingCycle: domain.BillingMonthly, NextPaymentDate: daysAhead(now, 2), LinkedAccountID: AccABankDebit, Status: domain.SubscriptionActive},
			{ID: "sub2", Name: "IVI", Amount: 399, BillingCycle: domain.BillingMonthly, NextPaymentDate: now.Format(time.RFC3339), LinkedAccountID: AccSBankDebit, Status: domain.SubscriptionActive},
			{ID: "sub3", Name: "VK Music", Amount: 169, BillingCycle: domain.BillingMonthly, NextPaymentDate: daysAhead(now, 20), LinkedAccountID: AccSBankDebit, Status: domain.SubscriptionBlocked},
			{ID: "sub4", Name: "Ozon Premium", Amount: 1999, BillingCycle: domain.BillingYearly, NextPaymentDate: now.AddDate(0, 5, 0).Format(time.RFC3339), LinkedAccountID: AccABankDebit2, Status: domain.SubscriptionActive},
			{ID: "sub5", Name: "ABank Pro", Amount: 199, BillingCycle: domain.BillingMonthly, NextPaymentDate: daysAhead(now, 15), LinkedAccountID: AccABankDebit, Status: domain.SubscriptionActive},
		},
		Loans: []domain.Loan{
			{ID: "loan1", Name: "Автокредит", BankName: "SBank", RemainingAmount: 850000, InterestRate: 8.5, MonthlyPayment: 25000, NextPaymentDate: daysAhead(now, 12), LinkedAccountID: AccSBankDebit},
			{ID: "loan2", Name: "Ипотека", BankName: "VBank", RemainingAmount: 4500000, InterestRate: 9.2, MonthlyPayment: 42000, NextPaymentDate: daysAhead(now, 18), LinkedAccountID: AccABankDebit},
			{ID: "loan3", Name: "Потребительский", BankName: "ABank", RemainingAmount: 250000, InterestRate: 15.0, MonthlyPayment: 10000, NextPaymentDate: daysAhead(now, 5), LinkedAccountID: AccABankDebit2},
		},
		RefinancingOffers: []domain.RefinancingOffer{
			{ID: "ref1", BankName: "ABank", NewInterestRate: 8.5, Description: "Лучшее предложение по рефинансированию ипотеки", MaxAmount: 10000000, BrandColor: "#EF3124"},
			{ID: "ref2", BankName: "SBank", NewInterestRate: 12.5, Description: "Рефинансируйте потребительские кредиты", MaxAmount: 500000, BrandColor: "#228B22"},
			{ID: "ref3", BankName: "VBank", NewInterestRate: 9.9, Description: "Рефинансируйте автокредит по сниженной ставке", MaxAmount: 1500000, BrandColor: "#0033A0"},
		},
		MarketplaceSubscriptions: []domain.MarketplaceSubscription{
			{ID: "ms1", Name: "Яндекс Плюс", Cost: 299, BillingCycle: domain.BillingMonthly, Benefits: []string{"Кинопоиск", "Яндекс.Музыка", "Баллы Плюса"}, RelatedMerchants: []string{"Yandex.Go", "KinoPoisk"}, CashbackCategory: "Подписки"},
			{ID: "ms2", Name: "Ozon Premium", Cost: 199, BillingCycle: domain.BillingMonthly, Benefits: []string{"Бесплатная доставка", "Ранний доступ к распродажам"}, RelatedMerchants: []string{"Ozon.ru"}, CashbackCategory: "Покупки"},
			{ID: "ms3", Name: "SberPrime", Cost: 199, BillingCycle: domain.BillingMonthly, Benefits: []string{"Okko", "СберЗвук", "Скидки на доставку"}, RelatedMerchants: []string{"SberMarket"}, CashbackCategory: "Подписки"},
			{ID: "ms4", Name: "Litres", Cost: 399, BillingCycle: domain.BillingMonthly, Benefits: []string{"Доступ к каталогу", "Скидка на новинки"}, RelatedMerchants: []string{"Litres.ru"}, CashbackCategory: "Книги"},
		},
		TrustIssues: []domain.TrustIssue{
			{
				ID: "ti1", BankName: "SBank", AccountID: AccSBankSavings,
				Type: domain.IssueLowInterest, Severity: domain.SeverityHigh,
				Title:          "Низкая ставка по накопительному счету",
				Description:    "Ваш «Накопительный» счет в SBank имеет ставку 7% годовых. В то же время, ваш счет «Сейф» в VBank предлагает 12%. Вы упускаете потенциальный доход.",
				Recommendation: "Рассмотрите возможность перевода средств со счета в SBank на счет в VBank, чтобы получать больший доход на остаток.",
			},
			{
				ID: "ti2", BankName: "ABank", AccountID: AccABankDebit,
				Type: domain.IssueHiddenFee, Severity: domain.SeverityMedium,
				Title:          "Риск комиссии за переводы",
				Description:    "По вашей карте ABank Black переводы сверх 50 000 ₽/мес облагаются комиссией 1.5%. В этом месяце вы уже перевели 45 200 ₽.",
				Recommendation: "Для следующих крупных переводов используйте SBank Карту, где лимит выше, чтобы избежать комиссии.",
			},
			{
				ID: "ti3", BankName: "ABank", AccountID: AccABankCredit,
				Type: domain.IssueUnusedPerk, Severity: domain.SeverityLow,
				Title:          "Неиспользуемая льгота: Страховка",
				Description:    "Мы заметили покупку авиабилетов. Ваша кредитная карта «Fly Airlines» включает бесплатную туристическую страховку для поездок за рубеж.",
				Recommendation: "Не забудьте активировать полис перед следующей поездкой в приложении ABank, чтобы не платить за страховку отдельно.",
			},
			{
				ID: "ti4", BankName: "ABank",
				Type: domain.IssueNegativeFeedback, Severity: domain.SeverityMedium,
				Title:          "Отзывы о работе поддержки",
				Description:    "Анализ отзывов в сети за последний месяц показывает, что некоторые клиенты ABank сталкивались с трудностями при закрытии кредитных карт.",
				Recommendation: "Если планируете подобные операции, будьте готовы к возможным задержкам и сохраняйте все документы и переписку с банком.",
			},
		},
		RecommendedCardOffers: []domain.RecommendedCardOffer{
			{
				ID: "rec_card_1", Name: "ABank Premium", BankName: "ABank", BrandColor: "#333333",
				Benefits: []string{"Повышенный кэшбэк в ресторанах", "Бесплатная страховка в путешествиях", "Консьерж-сервис 24/7"},
				IsCredit: false,
				CashbackRates: map[string]float64{"Рестораны": 10, "Такси": 7, "Супермаркеты": 2},
			},
			{
				ID: "rec_card_2", Name: "SBank Travel", BankName: "SBank", BrandColor: "#FFD700",
				Benefits: []string{"Мили за все покупки", "Доступ в бизнес-залы аэропортов"},
				IsCredit: true,
				CashbackRates: map[string]float64{"Путешествия": 5, "АЗС": 3},
			},
		},
	}
}
