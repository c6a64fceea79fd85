// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort   string
	JWTSecret    string
	JWTExpiresIn time.Duration

	// Демо-учетка: логин по шаблону demo<цифры> и общий пароль.
	DemoPassword string

	// Имитация сети: задержка выдачи снимка и оформления согласия.
	SnapshotDelay time.Duration
	ConsentDelay  time.Duration

	// «Всегда оптимистичное» подключение банка. Для демо включено,
	// при интеграции с реальным бэкендом выключается.
	OptimisticConsent bool

	// Доля трат, засчитываемая как выгода пакетной подписки.
	MarketplaceSavingRate float64
}

func MustLoad() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-super-secret-jwt-key-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if expiresInStr := os.Getenv("JWT_EXPIRES_IN"); expiresInStr != "" {
		if d, err := time.ParseDuration(expiresInStr); err == nil {
			jwtExpiresIn = d
		}
	}

	demoPassword := os.Getenv("DEMO_PASSWORD")
	if demoPassword == "" {
		demoPassword = "multibank"
	}

	snapshotDelay := 500 * time.Millisecond
	if s := os.Getenv("SNAPSHOT_DELAY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			snapshotDelay = d
		}
	}

	consentDelay := 1500 * time.Millisecond
	if s := os.Getenv("CONSENT_DELAY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			consentDelay = d
		}
	}

	optimisticConsent := true
	if s := os.Getenv("CONSENT_OPTIMISTIC"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			optimisticConsent = b
		}
	}

	savingRate := 0.10
	if s := os.Getenv("MARKETPLACE_SAVING_RATE"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f <= 1 {
			savingRate = f
		}
	}

	return Config{
		ServerPort:            ":" + port,
		JWTSecret:             jwtSecret,
		JWTExpiresIn:          jwtExpiresIn,
		DemoPassword:          demoPassword,
		SnapshotDelay:         snapshotDelay,
		ConsentDelay:          consentDelay,
		OptimisticConsent:     optimisticConsent,
		MarketplaceSavingRate: savingRate,
	}
}
