// internal/auth/jwt.go
package auth

import (
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"multibank-aggregator/internal/config"
)

// Демо-логины: demo, demo1, demo42 и т.п.
var loginPattern = regexp.MustCompile(`^demo\d*$`)

type TokenService struct {
	secretKey    []byte
	expiresIn    time.Duration
	demoPassword string
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey:    []byte(cfg.JWTSecret),
		expiresIn:    cfg.JWTExpiresIn,
		demoPassword: cfg.DemoPassword,
	}
}

// Проверка демо-учетки: логин по шаблону плюс общий пароль.
// Реального бэкенда аутентификации в демо нет.
func (s *TokenService) CheckCredentials(login, password string) bool {
	return loginPattern.MatchString(login) && password == s.demoPassword
}

// Генерация токена
func (s *TokenService) GenerateToken(login string) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.MapClaims{
		"login": login,
		"exp":   expTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err == nil {
		slog.Info("JWT generated", "login", login, "expires_at", expTime.Format("2006-01-02 15:04:05"))
	}
	return tokenStr, err
}

// Парсинг токена
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if login, ok := claims["login"].(string); ok && login != "" {
			slog.Debug("JWT parsed successfully", "login", login)
			return login, nil
		}
	}
	return "", errors.New("invalid token claims")
}
