// internal/engine/refinance.go
package engine

import "multibank-aggregator/internal/domain"

// MatchedOffer — кредит и подходящее предложение рефинансирования.
// MonthlySaving — линейная оценка: payment − payment × (new/old),
// без пересчета графика аннуитета.
type MatchedOffer struct {
	Loan          domain.Loan             `json:"loan"`
	Offer         domain.RefinancingOffer `json:"offer"`
	MonthlySaving float64                 `json:"monthlySaving"`
}

// MatchRefinancing перебирает все пары кредит×предложение и оставляет
// те, где предложение из другого банка, ставка строго ниже текущей и
// остаток долга не превышает лимит предложения. Один кредит может
// попасть в несколько пар; порядок — по кредитам, внутри — по
// предложениям.
func MatchRefinancing(loans []domain.Loan, offers []domain.RefinancingOffer) []MatchedOffer {
	matches := make([]MatchedOffer, 0)
	for _, loan := range loans {
		for _, offer := range offers {
			if offer.BankName == loan.BankName {
				continue
			}
			if offer.NewInterestRate >= loan.InterestRate {
				continue
			}
			if loan.RemainingAmount > offer.MaxAmount {
				continue
			}
			saving := loan.MonthlyPayment - loan.MonthlyPayment*(offer.NewInterestRate/loan.InterestRate)
			matches = append(matches, MatchedOffer{Loan: loan, Offer: offer, MonthlySaving: saving})
		}
	}
	return matches
}
