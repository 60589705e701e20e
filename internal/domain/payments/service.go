package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/platform/money"
	ports "pet-adoption/internal/ports/payments"

	"github.com/google/uuid"
)

const DefaultCurrency = "usd"

var (
	ErrInvalidPrice = errors.New("invalid price")
	ErrUnavailable  = errors.New("payments not configured")
)

type Service struct {
	processor ports.Processor
	currency  string
	newKey    func() string
}

// NewService acepta processor nil: en ese caso CreateIntent devuelve ErrUnavailable.
func NewService(processor ports.Processor, currency string) *Service {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Service{
		processor: processor,
		currency:  currency,
		newKey:    uuid.NewString,
	}
}

// CreateIntent valida y convierte price (decimal) antes de llamar al procesador.
// Menos de un centavo => ErrInvalidPrice, sin llamada externa.
func (s *Service) CreateIntent(ctx context.Context, price float64) (ports.Intent, error) {
	cents, err := money.ToCents(price)
	if err != nil || cents < 1 {
		return ports.Intent{}, ErrInvalidPrice
	}
	if s.processor == nil {
		return ports.Intent{}, ErrUnavailable
	}

	intent, err := s.processor.CreateIntent(ctx, ports.IntentInput{
		AmountCents:    cents,
		Currency:       s.currency,
		IdempotencyKey: s.newKey(),
	})
	if err != nil {
		return ports.Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return intent, nil
}
