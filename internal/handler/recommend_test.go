// internal/handler/recommend_test.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multibank-aggregator/internal/domain"
	"multibank-aggregator/internal/engine"
	"multibank-aggregator/internal/storage"
	"multibank-aggregator/internal/storage/mock"
)

// failingSource имитирует недоступный источник данных.
type failingSource struct{}

func (failingSource) FetchFinancialData(ctx context.Context) (*domain.FinancialData, error) {
	return nil, errors.New("источник недоступен")
}

func newTestRouter(src storage.FinancialDataSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRecommendationHandler(src, engine.DefaultMarketplaceSavingRate)

	r := gin.New()
	r.POST("/smart-pay/best-card", h.BestCard)
	r.POST("/smart-debiting/plan", h.DebitingPlan)
	r.GET("/cards/recommendation", h.CardRecommendation)
	r.GET("/marketplace/recommendations", h.MarketplaceRecommendations)
	r.POST("/exchange/compare", h.CompareRates)
	r.GET("/loans/refinancing", h.RefinancingMatches)
	r.POST("/loans/payment-plan", h.LoanPaymentPlan)
	r.GET("/trust-platform/issues", h.TrustIssues)
	r.POST("/subscriptions/toggle", h.ToggleSubscription)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBestCardEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/smart-pay/best-card", `{"category":"Рестораны"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var best engine.BestCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &best))
	require.NotNil(t, best.Account)
	// В «Ресторанах» ABank дает 5%, SBank всего 1%.
	assert.Equal(t, "ABank", best.Account.BankName)
	assert.InDelta(t, 5, best.Rate, 1e-9)
}

func TestBestCardEndpointExplicitAccounts(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/smart-pay/best-card",
		`{"category":"Рестораны","includedAccountIds":["`+mock.AccSBankDebit+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var best engine.BestCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &best))
	require.NotNil(t, best.Account)
	assert.Equal(t, mock.AccSBankDebit, best.Account.ID)
	assert.InDelta(t, 1, best.Rate, 1e-9)
}

func TestBestCardEndpointValidation(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/smart-pay/best-card", `{"category":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/smart-pay/best-card", `{category`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebitingPlanEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/smart-debiting/plan",
		`{"primaryAccountId":"`+mock.AccABankDebit+`","amount":250000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var plan engine.DebitingPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.False(t, plan.Sufficient)
	assert.InDelta(t, 221659.30, plan.Shortfall, 0.01)
	require.NotEmpty(t, plan.Steps)
	assert.Equal(t, mock.AccABankDebit, plan.Steps[0].AccountID)
}

func TestDebitingPlanEndpointUnknownAccount(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/smart-debiting/plan",
		`{"primaryAccountId":"acc_missing","amount":100}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardRecommendationEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodGet, "/cards/recommendation", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rec engine.CardRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	// Главная категория трат в снимке — рестораны, оффер ABank Premium дает 10%.
	assert.Equal(t, "Рестораны", rec.TopCategory)
	assert.Greater(t, rec.PotentialSaving, 100.0)
}

func TestExchangeCompareEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/exchange/compare",
		`{"amount":100000,"from":"RUB","to":"USD"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var options []engine.RateOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	require.Len(t, options, 4)
	// Лучший курс продажи доллара в снимке — 92.8.
	assert.InDelta(t, 92.8, options[0].Sell, 1e-9)
	assert.InDelta(t, 100000/92.8, options[0].Result, 1e-6)
	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i].Result, options[i-1].Result)
	}
}

func TestExchangeCompareEndpointValidation(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/exchange/compare",
		`{"amount":100,"from":"rub","to":"USD"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefinancingEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodGet, "/loans/refinancing", "")
	require.Equal(t, http.StatusOK, w.Code)

	var matches []engine.MatchedOffer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.NotEqual(t, m.Loan.BankName, m.Offer.BankName)
		assert.Less(t, m.Offer.NewInterestRate, m.Loan.InterestRate)
	}
}

func TestLoanPaymentPlanEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	// Платеж по автокредиту покрывается балансом привязанного счета.
	w := doJSON(r, http.MethodPost, "/loans/payment-plan", `{"loanId":"loan1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var plan engine.DebitingPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.True(t, plan.Sufficient)
	assert.Empty(t, plan.Steps)

	// Ипотечный платеж больше остатка — нужен план с добором средств.
	w = doJSON(r, http.MethodPost, "/loans/payment-plan", `{"loanId":"loan2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.False(t, plan.Sufficient)
	require.NotEmpty(t, plan.Steps)
	assert.Equal(t, mock.AccABankDebit, plan.Steps[0].AccountID)
	assert.True(t, plan.FullyCovered)

	w = doJSON(r, http.MethodPost, "/loans/payment-plan", `{"loanId":"loan99"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrustIssuesEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodGet, "/trust-platform/issues", "")
	require.Equal(t, http.StatusOK, w.Code)

	var issues []domain.TrustIssue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issues))
	require.Len(t, issues, 4)
	// high раньше medium, medium раньше low; равные — в исходном порядке.
	assert.Equal(t, []string{"ti1", "ti2", "ti4", "ti3"},
		[]string{issues[0].ID, issues[1].ID, issues[2].ID, issues[3].ID})
}

func TestToggleSubscriptionEndpoint(t *testing.T) {
	r := newTestRouter(mock.NewSource(0))

	w := doJSON(r, http.MethodPost, "/subscriptions/toggle", `{"subscriptionId":"sub1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sub domain.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, domain.SubscriptionBlocked, sub.Status)

	// Снимок неизменяем: повторное переключение стартует с исходного статуса.
	w = doJSON(r, http.MethodPost, "/subscriptions/toggle", `{"subscriptionId":"sub1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, domain.SubscriptionBlocked, sub.Status)

	w = doJSON(r, http.MethodPost, "/subscriptions/toggle", `{"subscriptionId":"sub3"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, domain.SubscriptionActive, sub.Status)

	w = doJSON(r, http.MethodPost, "/subscriptions/toggle", `{"subscriptionId":"sub99"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSourceFailure(t *testing.T) {
	r := newTestRouter(failingSource{})

	w := doJSON(r, http.MethodGet, "/trust-platform/issues", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(r, http.MethodPost, "/smart-pay/best-card", `{"category":"АЗС"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
