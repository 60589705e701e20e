package payments

import "context"

// IntentInput: monto en unidades menores (centavos).
type IntentInput struct {
	AmountCents    int64
	Currency       string
	IdempotencyKey string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// Processor crea payment intents en el procesador externo.
type Processor interface {
	CreateIntent(ctx context.Context, in IntentInput) (Intent, error)
}
