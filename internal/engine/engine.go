// internal/engine/engine.go

// Пакет engine содержит рекомендательные алгоритмы «Мультибанка».
// Все функции чистые: работают над готовым снимком FinancialData,
// не изменяют входные данные и при одинаковых аргументах возвращают
// одинаковый результат. Пустые коллекции на входе — не ошибка.
package engine

import "math"

// sanitizeAmount приводит пользовательскую сумму к безопасному виду:
// NaN, бесконечность и отрицательные значения считаются нулем.
func sanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}
