// internal/handler/consent.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"multibank-aggregator/internal/consent"
)

type ConsentHandler struct {
	service *consent.Service
}

func NewConsentHandler(service *consent.Service) *ConsentHandler {
	return &ConsentHandler{service: service}
}

// CreateConsent godoc
// @Summary Create a data-access consent for a bank
// @Description Simulated consent flow; resolves after a fixed delay
// @Tags consent
// @Accept json
// @Produce json
// @Param request body ConsentRequest true "Bank identifier"
// @Success 200 {object} consent.Result
// @Failure 400 {object} map[string]string
// @Router /api/v1/consents [post]
func (h *ConsentHandler) CreateConsent(c *gin.Context) {
	var req ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CreateConsent(c.Request.Context(), req.BankID)
	if err != nil {
		slog.Error("CreateConsent failed", "error", err, "bank_id", req.BankID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

type ConsentRequest struct {
	BankID string `json:"bankId" validate:"required,notblank"`
}
