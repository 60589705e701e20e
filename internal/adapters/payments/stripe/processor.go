// Package stripe implementa payments.Processor sobre la API de Stripe.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ports "pet-adoption/internal/ports/payments"

	stripeapi "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

var ErrKeyRequired = errors.New("stripe: secret key is required")

type Processor struct {
	api *client.API
}

// New usa httpClient para todas las llamadas (timeout y logging vienen de ahí).
func New(secretKey string, httpClient *http.Client) (*Processor, error) {
	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		return nil, ErrKeyRequired
	}
	return newWithBackends(secretKey, stripeapi.NewBackends(httpClient)), nil
}

func newWithBackends(secretKey string, backends *stripeapi.Backends) *Processor {
	return &Processor{api: client.New(secretKey, backends)}
}

func (p *Processor) CreateIntent(ctx context.Context, in ports.IntentInput) (ports.Intent, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(in.AmountCents),
		Currency: stripeapi.String(in.Currency),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeapi.Bool(true),
		},
	}
	params.Context = ctx
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var serr *stripeapi.Error
		if errors.As(err, &serr) {
			return ports.Intent{}, fmt.Errorf("stripe: %s (status=%d): %w", serr.Code, serr.HTTPStatusCode, err)
		}
		return ports.Intent{}, fmt.Errorf("stripe: %w", err)
	}
	return ports.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
