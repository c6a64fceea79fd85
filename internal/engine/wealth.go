// internal/engine/wealth.go
package engine

import "multibank-aggregator/internal/domain"

// NetWorth — сумма остатков по всем счетам, включая отрицательные
// балансы кредитных карт.
func NetWorth(accounts []domain.Account) float64 {
	total := 0.0
	for _, acc := range accounts {
		total += acc.Balance
	}
	return total
}

// SweepPotential считает, сколько «Ночной сейф» может перевести на
// накопительный счет: сумма положительных остатков включенных счетов,
// кроме самого целевого счета и кредитных карт.
func SweepPotential(accounts []domain.Account, includedIDs []string, targetID string) float64 {
	included := make(map[string]struct{}, len(includedIDs))
	for _, id := range includedIDs {
		included[id] = struct{}{}
	}

	total := 0.0
	for _, acc := range accounts {
		if _, ok := included[acc.ID]; !ok {
			continue
		}
		if acc.ID == targetID || acc.Type == domain.AccountCredit {
			continue
		}
		if acc.Balance > 0 {
			total += acc.Balance
		}
	}
	return total
}
