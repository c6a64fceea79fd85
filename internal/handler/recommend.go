// internal/handler/recommend.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"multibank-aggregator/internal/domain"
	"multibank-aggregator/internal/engine"
	"multibank-aggregator/internal/storage"

	val "multibank-aggregator/internal/validator"
)

type RecommendationHandler struct {
	source     storage.FinancialDataSource
	savingRate float64
}

func NewRecommendationHandler(source storage.FinancialDataSource, savingRate float64) *RecommendationHandler {
	return &RecommendationHandler{source: source, savingRate: savingRate}
}

func (h *RecommendationHandler) fetch(c *gin.Context) *domain.FinancialData {
	data, err := h.source.FetchFinancialData(c.Request.Context())
	if err != nil {
		slog.Error("Snapshot fetch failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return nil
	}
	return data
}

// BestCard godoc
// @Summary Pick the account with the best cashback for a category
// @Tags smart-pay
// @Accept json
// @Produce json
// @Param request body BestCardRequest true "Category and included accounts"
// @Success 200 {object} engine.BestCard
// @Failure 400 {object} map[string]string
// @Router /api/v1/smart-pay/best-card [post]
func (h *RecommendationHandler) BestCard(c *gin.Context) {
	var req BestCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := h.fetch(c)
	if data == nil {
		return
	}

	// Если клиент не прислал свой набор счетов, берем настройки
	// «Умной оплаты» из снимка.
	included := req.IncludedAccountIDs
	if included == nil {
		included = data.SmartPay.IncludedAccountIDs
	}

	best := engine.BestAccountForCategory(data.Accounts, included, data.CashbackCategories, req.Category)
	c.JSON(http.StatusOK, best)
}

// DebitingPlan godoc
// @Summary Build a multi-account withdrawal plan for a purchase
// @Tags smart-debiting
// @Accept json
// @Produce json
// @Param request body DebitingPlanRequest true "Purchase amount and primary account"
// @Success 200 {object} engine.DebitingPlan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/smart-debiting/plan [post]
func (h *RecommendationHandler) DebitingPlan(c *gin.Context) {
	var req DebitingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := h.fetch(c)
	if data == nil {
		return
	}

	plan := engine.PlanDebiting(data.Accounts, req.PrimaryAccountID, req.Amount)
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CardRecommendation godoc
// @Summary Recommend a new card offer based on recent spending
// @Tags cards
// @Produce json
// @Success 200 {object} engine.CardRecommendation
// @Success 204 "No recommendation"
// @Router /api/v1/cards/recommendation [get]
func (h *RecommendationHandler) CardRecommendation(c *gin.Context) {
	data := h.fetch(c)
	if data == nil {
		return
	}

	rec := engine.RecommendCard(time.Now(), data.Transactions, data.Accounts, data.CashbackCategories, data.RecommendedCardOffers)
	if rec == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// MarketplaceRecommendations godoc
// @Summary Recommend marketplace subscriptions that would pay off
// @Tags marketplace
// @Produce json
// @Success 200 {array} engine.SubscriptionRecommendation
// @Router /api/v1/marketplace/recommendations [get]
func (h *RecommendationHandler) MarketplaceRecommendations(c *gin.Context) {
	data := h.fetch(c)
	if data == nil {
		return
	}

	recs := engine.RecommendSubscriptions(time.Now(), data.Transactions, data.Accounts, data.CashbackCategories, data.MarketplaceSubscriptions, h.savingRate)
	c.JSON(http.StatusOK, recs)
}

// CompareRates godoc
// @Summary Rank bank exchange rates for a currency purchase
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Amount and currency pair"
// @Success 200 {array} engine.RateOption
// @Failure 400 {object} map[string]string
// @Router /api/v1/exchange/compare [post]
func (h *RecommendationHandler) CompareRates(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := h.fetch(c)
	if data == nil {
		return
	}

	options := engine.CompareRates(data.ExchangeRates, req.Amount, domain.Currency(req.From), domain.Currency(req.To))
	c.JSON(http.StatusOK, options)
}

// RefinancingMatches godoc
// @Summary Match active loans against refinancing offers
// @Tags loans
// @Produce json
// @Success 200 {array} engine.MatchedOffer
// @Router /api/v1/loans/refinancing [get]
func (h *RecommendationHandler) RefinancingMatches(c *gin.Context) {
	data := h.fetch(c)
	if data == nil {
		return
	}

	matches := engine.MatchRefinancing(data.Loans, data.RefinancingOffers)
	c.JSON(http.StatusOK, matches)
}

// LoanPaymentPlan godoc
// @Summary Build a withdrawal plan for a loan's monthly payment
// @Tags loans
// @Accept json
// @Produce json
// @Param request body LoanPaymentRequest true "Loan identifier"
// @Success 200 {object} engine.DebitingPlan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/loans/payment-plan [post]
func (h *RecommendationHandler) LoanPaymentPlan(c *gin.Context) {
	var req LoanPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := h.fetch(c)
	if data == nil {
		return
	}

	var loan *domain.Loan
	for i := range data.Loans {
		if data.Loans[i].ID == req.LoanID {
			loan = &data.Loans[i]
			break
		}
	}
	if loan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		return
	}

	plan := engine.PlanLoanPayment(data.Accounts, *loan)
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Linked account not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// TrustIssues godoc
// @Summary List trust-platform findings ordered by severity
// @Tags trust
// @Produce json
// @Success 200 {array} domain.TrustIssue
// @Router /api/v1/trust-platform/issues [get]
func (h *RecommendationHandler) TrustIssues(c *gin.Context) {
	data := h.fetch(c)
	if data == nil {
		return
	}
	c.JSON(http.StatusOK, engine.SortTrustIssues(data.TrustIssues))
}

// ToggleSubscription godoc
// @Summary Flip a detected subscription between active and blocked
// @Description Demo-only: the change lives in the response, nothing is persisted
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body ToggleSubscriptionRequest true "Subscription identifier"
// @Success 200 {object} domain.Subscription
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/subscriptions/toggle [post]
func (h *RecommendationHandler) ToggleSubscription(c *gin.Context) {
	var req ToggleSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := h.fetch(c)
	if data == nil {
		return
	}

	for _, sub := range data.Subscriptions {
		if sub.ID != req.SubscriptionID {
			continue
		}
		// Переключаем локальную копию; снимок неизменяем, в банк
		// ничего не отправляется.
		if sub.Status == domain.SubscriptionActive {
			sub.Status = domain.SubscriptionBlocked
		} else {
			sub.Status = domain.SubscriptionActive
		}
		c.JSON(http.StatusOK, sub)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
}

// === DTO ===

type BestCardRequest struct {
	Category string `json:"category" validate:"required,notblank"`
	// nil — использовать настройки «Умной оплаты» из снимка;
	// пустой список — ни один счет не участвует.
	IncludedAccountIDs []string `json:"includedAccountIds"`
}

type DebitingPlanRequest struct {
	PrimaryAccountID string `json:"primaryAccountId" validate:"required,notblank"`
	// Некорректная сумма не отклоняется, а трактуется как ноль.
	Amount float64 `json:"amount"`
}

type ExchangeRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from" validate:"required,currencycode"`
	To     string  `json:"to" validate:"required,currencycode"`
}

type LoanPaymentRequest struct {
	LoanID string `json:"loanId" validate:"required,notblank"`
}

type ToggleSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId" validate:"required,notblank"`
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "currencycode":
		return fmt.Sprintf("%s must be a 3-letter currency code", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
