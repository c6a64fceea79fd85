// internal/storage/storage.go
package storage

import (
	"context"

	"multibank-aggregator/internal/domain"
)

// FinancialDataSource отдает полный снимок агрегированных данных.
// Каждый вызов возвращает независимую копию: изменения результата
// не влияют на последующие выборки.
type FinancialDataSource interface {
	FetchFinancialData(ctx context.Context) (*domain.FinancialData, error)
}
