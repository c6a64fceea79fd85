// internal/consent/consent.go
package consent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Result struct {
	ConsentID string `json:"consentId"`
	BankID    string `json:"bankId"`
	Status    Status `json:"status"`
}

// Service имитирует оформление согласия на доступ к данным банка.
// В оптимистичном режиме подключение всегда завершается успехом после
// задержки — пользователь демо не должен застрять на ошибке. Режим
// управляется конфигом, а не зашит намертво: при подключении реального
// бэкенда его выключают.
type Service struct {
	delay      time.Duration
	optimistic bool
	knownBanks map[string]struct{}
}

func NewService(delay time.Duration, optimistic bool) *Service {
	known := map[string]struct{}{
		"abank": {},
		"sbank": {},
		"vbank": {},
	}
	return &Service{delay: delay, optimistic: optimistic, knownBanks: known}
}

// CreateConsent возвращает согласие после фиксированной задержки.
// В строгом режиме незнакомый банк получает отказ; в оптимистичном —
// любой запрос одобряется.
func (s *Service) CreateConsent(ctx context.Context, bankID string) (Result, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	result := Result{
		ConsentID: uuid.NewString(),
		BankID:    bankID,
		Status:    StatusApproved,
	}
	if !s.optimistic {
		if _, ok := s.knownBanks[bankID]; !ok {
			result.Status = StatusRejected
		}
	}

	slog.Info("Consent created", "bank_id", bankID, "consent_id", result.ConsentID, "status", result.Status)
	return result, nil
}
