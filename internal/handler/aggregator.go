// internal/handler/aggregator.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"multibank-aggregator/internal/storage"
)

type AggregatorHandler struct {
	source storage.FinancialDataSource
}

func NewAggregatorHandler(source storage.FinancialDataSource) *AggregatorHandler {
	return &AggregatorHandler{source: source}
}

// Dashboard godoc
// @Summary Get the full aggregated financial snapshot
// @Description Returns the complete FinancialData document for the dashboard
// @Tags aggregator
// @Produce json
// @Success 200 {object} domain.FinancialData
// @Failure 500 {object} map[string]string
// @Router /api/v1/aggregator/dashboard [get]
func (h *AggregatorHandler) Dashboard(c *gin.Context) {
	data, err := h.source.FetchFinancialData(c.Request.Context())
	if err != nil {
		slog.Error("Dashboard fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, data)
}
