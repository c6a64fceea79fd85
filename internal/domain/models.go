// internal/domain/models.go
package domain

// Тип счета определяет приоритет при умном списании:
// дебетовые счета списываются раньше накопительных,
// кредитные никогда не используются как источник средств.
type AccountType string

const (
	AccountDebit   AccountType = "debit"
	AccountCredit  AccountType = "credit"
	AccountSavings AccountType = "savings"
)

type Account struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	BankName   string      `json:"bankName"`
	Last4      string      `json:"last4"`
	Balance    float64     `json:"balance"` // отрицательный для кредитных карт
	Type       AccountType `json:"type"`
	BrandColor string      `json:"brandColor"`
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction — операция по счету. Расходы хранятся с отрицательной
// суммой, при агрегации берется модуль.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO 8601
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
}

// CashbackCategory — категории кэшбэка одного банка.
// Отсутствующая категория означает 0%.
type CashbackCategory struct {
	BankName   string             `json:"bankName"`
	Categories map[string]float64 `json:"categories"`
}

type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCNY Currency = "CNY"
)

// ExchangeRate — котировка банка по валютной паре. У одного банка
// может быть несколько котировок на пару (промо-предложения).
type ExchangeRate struct {
	BankName  string   `json:"bankName"`
	From      Currency `json:"from"`
	To        Currency `json:"to"`
	Buy       float64  `json:"buy"`  // банк покупает валюту у клиента
	Sell      float64  `json:"sell"` // банк продает валюту клиенту
	Promotion string   `json:"promotion,omitempty"`
}

type SpecialOffer struct {
	ID          string `json:"id"`
	PartnerName string `json:"partnerName"`
	BankName    string `json:"bankName"`
	Description string `json:"description"`
	ExpiryDate  string `json:"expiryDate"`
	BrandColor  string `json:"brandColor"`
}

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionBlocked SubscriptionStatus = "blocked"
)

// Subscription — обнаруженный регулярный платеж. Статус переключается
// только в рамках сессии, в банк ничего не уходит.
type Subscription struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Amount          float64            `json:"amount"`
	BillingCycle    BillingCycle       `json:"billingCycle"`
	NextPaymentDate string             `json:"nextPaymentDate"`
	LinkedAccountID string             `json:"linkedAccountId"`
	Status          SubscriptionStatus `json:"status"`
}

type Loan struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BankName        string  `json:"bankName"`
	RemainingAmount float64 `json:"remainingAmount"`
	InterestRate    float64 `json:"interestRate"` // годовая ставка, %
	MonthlyPayment  float64 `json:"monthlyPayment"`
	NextPaymentDate string  `json:"nextPaymentDate"`
	LinkedAccountID string  `json:"linkedAccountId"`
}

type RefinancingOffer struct {
	ID              string  `json:"id"`
	BankName        string  `json:"bankName"`
	NewInterestRate float64 `json:"newInterestRate"`
	Description     string  `json:"description"`
	MaxAmount       float64 `json:"maxAmount"`
	BrandColor      string  `json:"brandColor"`
}

// MarketplaceSubscription — пакетная подписка из маркетплейса.
// RelatedMerchants — строки-описания транзакций, по которым
// определяется, что пользователь уже пользуется сервисом.
type MarketplaceSubscription struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	LogoURL          string       `json:"logoUrl"`
	Cost             float64      `json:"cost"`
	BillingCycle     BillingCycle `json:"billingCycle"`
	Benefits         []string     `json:"benefits"`
	RelatedMerchants []string     `json:"relatedMerchants"`
	CashbackCategory string       `json:"cashbackCategory"`
}

type RecommendedCardOffer struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	BankName      string             `json:"bankName"`
	BrandColor    string             `json:"brandColor"`
	Benefits      []string           `json:"benefits"`
	IsCredit      bool               `json:"isCredit"`
	CashbackRates map[string]float64 `json:"cashbackRates"`
}

type TrustIssueType string

const (
	IssueHiddenFee        TrustIssueType = "hidden_fee"
	IssueLowInterest      TrustIssueType = "low_interest"
	IssueUnusedPerk       TrustIssueType = "unused_perk"
	IssueNegativeFeedback TrustIssueType = "negative_feedback"
	IssueRateDiscrepancy  TrustIssueType = "rate_discrepancy"
)

// Severity — упорядоченный уровень риска.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank возвращает позицию уровня при сортировке: high < medium < low.
// Неизвестный уровень уходит в конец списка.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

type TrustIssue struct {
	ID             string         `json:"id"`
	BankName       string         `json:"bankName"`
	AccountID      string         `json:"accountId,omitempty"`
	Type           TrustIssueType `json:"type"`
	Severity       Severity       `json:"severity"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Recommendation string         `json:"recommendation"`
}

type FinancialGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetAmount  float64 `json:"targetAmount"`
}

type NightSafeStats struct {
	Yesterday float64 `json:"yesterday"`
	Month     float64 `json:"month"`
	Total     float64 `json:"total"`
}

// NightSafeData — настройки ночного перевода свободных остатков
// на накопительный счет.
type NightSafeData struct {
	Enabled            bool           `json:"enabled"`
	IncludedAccountIDs []string       `json:"includedAccountIds"`
	TargetAccountID    string         `json:"targetAccountId"`
	Stats              NightSafeStats `json:"stats"`
}

type SmartPayData struct {
	Enabled            bool     `json:"enabled"`
	IncludedAccountIDs []string `json:"includedAccountIds"`
}

// FinancialData — полный снимок данных пользователя. Снимок неизменяем:
// источник каждый раз отдает свежую глубокую копию, анализаторы его
// не модифицируют.
type FinancialData struct {
	NetWorth                 float64                   `json:"netWorth"`
	Accounts                 []Account                 `json:"accounts"`
	Transactions             []Transaction             `json:"transactions"`
	Goals                    []FinancialGoal           `json:"goals"`
	NightSafe                NightSafeData             `json:"nightSafe"`
	SmartPay                 SmartPayData              `json:"smartPay"`
	CashbackCategories       []CashbackCategory        `json:"cashbackCategories"`
	SpecialOffers            []SpecialOffer            `json:"specialOffers"`
	ExchangeRates            []ExchangeRate            `json:"exchangeRates"`
	Subscriptions            []Subscription            `json:"subscriptions"`
	Loans                    []Loan                    `json:"loans"`
	RefinancingOffers        []RefinancingOffer        `json:"refinancingOffers"`
	MarketplaceSubscriptions []MarketplaceSubscription `json:"marketplaceSubscriptions"`
	TrustIssues              []TrustIssue              `json:"trustIssues"`
	RecommendedCardOffers    []RecommendedCardOffer    `json:"recommendedCardOffers"`
}
