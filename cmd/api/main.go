// cmd/api/main.go
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"multibank-aggregator/internal/auth"
	"multibank-aggregator/internal/config"
	"multibank-aggregator/internal/consent"
	"multibank-aggregator/internal/handler"
	"multibank-aggregator/internal/middleware"
	"multibank-aggregator/internal/storage/mock"
)

func main() {
	_ = godotenv.Load()

	// Настройка логгера
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug, // в проде → slog.LevelInfo
	}))
	slog.SetDefault(logger) // делаем глобальным

	cfg := config.MustLoad()

	// Демо-источник: живого подключения к банкам нет, снимок собирается
	// в памяти с имитацией сетевой задержки.
	source := mock.NewSource(cfg.SnapshotDelay)
	consentService := consent.NewService(cfg.ConsentDelay, cfg.OptimisticConsent)

	// JWT
	tokenService := auth.NewTokenService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Gin
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/v1/login", func(c *gin.Context) {
		var req struct {
			Login    string `json:"login" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "login and password required"})
			return
		}
		if !tokenService.CheckCredentials(req.Login, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := tokenService.GenerateToken(req.Login)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	aggregatorHandler := handler.NewAggregatorHandler(source)
	recommendationHandler := handler.NewRecommendationHandler(source, cfg.MarketplaceSavingRate)
	consentHandler := handler.NewConsentHandler(consentService)

	// Роуты
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/aggregator/dashboard", aggregatorHandler.Dashboard)
		v1.POST("/consents", consentHandler.CreateConsent)
		v1.POST("/smart-pay/best-card", recommendationHandler.BestCard)
		v1.POST("/smart-debiting/plan", recommendationHandler.DebitingPlan)
		v1.GET("/cards/recommendation", recommendationHandler.CardRecommendation)
		v1.GET("/marketplace/recommendations", recommendationHandler.MarketplaceRecommendations)
		v1.POST("/exchange/compare", recommendationHandler.CompareRates)
		v1.GET("/loans/refinancing", recommendationHandler.RefinancingMatches)
		v1.POST("/loans/payment-plan", recommendationHandler.LoanPaymentPlan)
		v1.GET("/trust-platform/issues", recommendationHandler.TrustIssues)
		v1.POST("/subscriptions/toggle", recommendationHandler.ToggleSubscription)
	}

	// Запуск сервера
	slog.Info("🚀 Сервер запущен", "addr", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("Сервер завершил работу с ошибкой", "error", err)
	}
}
