// internal/engine/debiting.go
package engine

import (
	"sort"

	"multibank-aggregator/internal/domain"
)

// WithdrawalStep — шаг плана списания с пояснением для пользователя.
type WithdrawalStep struct {
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	AccountBank string  `json:"accountBank"`
	BrandColor  string  `json:"brandColor"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
}

// DebitingPlan — результат планировщика умного списания.
// FullyCovered показывает, что шаги плана покрывают сумму целиком;
// если средств не хватает даже по всем счетам, остаток остается
// непокрытым и FullyCovered равен false.
type DebitingPlan struct {
	Sufficient   bool             `json:"sufficient"`
	Shortfall    float64          `json:"shortfall,omitempty"`
	FullyCovered bool             `json:"fullyCovered"`
	Steps        []WithdrawalStep `json:"steps,omitempty"`
}

const (
	reasonPrimary = "Использовать весь доступный баланс с основного счета."
	reasonDebit   = "Покрыть остаток с другого дебетового счета, чтобы не трогать накопления."
	reasonSavings = "Использовать средства с накопительного счета."
)

func sourcePriority(t domain.AccountType) int {
	switch t {
	case domain.AccountDebit:
		return 1
	case domain.AccountSavings:
		return 2
	default:
		return 99
	}
}

// PlanDebiting строит план оплаты покупки на amount с основного счета
// primaryID. Если баланса хватает — план не нужен. Иначе первым шагом
// снимается весь остаток основного счета, затем недостача закрывается
// с остальных счетов: сначала дебетовые, потом накопительные,
// кредитные не участвуют. Сортировка стабильная, при равном приоритете
// сохраняется исходный порядок счетов. Возвращает nil, если основной
// счет не найден.
func PlanDebiting(accounts []domain.Account, primaryID string, amount float64) *DebitingPlan {
	amount = sanitizeAmount(amount)

	var primary *domain.Account
	for i := range accounts {
		if accounts[i].ID == primaryID {
			primary = &accounts[i]
			break
		}
	}
	if primary == nil {
		return nil
	}

	if primary.Balance >= amount {
		return &DebitingPlan{Sufficient: true, FullyCovered: true}
	}

	shortfall := amount - primary.Balance
	var steps []WithdrawalStep
	// Нулевой или отрицательный остаток основного счета шагом не становится.
	if primary.Balance > 0 {
		steps = append(steps, WithdrawalStep{
			AccountID:   primary.ID,
			AccountName: primary.Name,
			AccountBank: primary.BankName,
			BrandColor:  primary.BrandColor,
			Amount:      primary.Balance,
			Reason:      reasonPrimary,
		})
	}

	sources := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.ID != primaryID && acc.Type != domain.AccountCredit {
			sources = append(sources, acc)
		}
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sourcePriority(sources[i].Type) < sourcePriority(sources[j].Type)
	})

	remaining := shortfall
	for _, acc := range sources {
		if remaining <= 0 {
			break
		}
		take := acc.Balance
		if take > remaining {
			take = remaining
		}
		if take <= 0 {
			continue
		}
		reason := reasonSavings
		if acc.Type == domain.AccountDebit {
			reason = reasonDebit
		}
		steps = append(steps, WithdrawalStep{
			AccountID:   acc.ID,
			AccountName: acc.Name,
			AccountBank: acc.BankName,
			BrandColor:  acc.BrandColor,
			Amount:      take,
			Reason:      reason,
		})
		remaining -= take
	}

	return &DebitingPlan{
		Sufficient:   false,
		Shortfall:    shortfall,
		FullyCovered: remaining <= 0,
		Steps:        steps,
	}
}

// PlanLoanPayment применяет планировщик списания к ежемесячному
// платежу по кредиту со счета, привязанного к кредиту.
func PlanLoanPayment(accounts []domain.Account, loan domain.Loan) *DebitingPlan {
	return PlanDebiting(accounts, loan.LinkedAccountID, loan.MonthlyPayment)
}
