// internal/engine/trust.go
package engine

import (
	"sort"

	"multibank-aggregator/internal/domain"
)

// SortTrustIssues возвращает замечания, упорядоченные по уровню риска:
// сначала высокий, затем средний и низкий. Исходный срез не меняется,
// при равном уровне сохраняется исходный порядок.
func SortTrustIssues(issues []domain.TrustIssue) []domain.TrustIssue {
	sorted := make([]domain.TrustIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})
	return sorted
}
