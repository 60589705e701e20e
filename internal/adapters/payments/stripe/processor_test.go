package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ports "pet-adoption/internal/ports/payments"

	stripeapi "github.com/stripe/stripe-go/v81"
)

func newTestProcessor(t *testing.T, h http.HandlerFunc) *Processor {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
		URL:               stripeapi.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripeapi.Int64(0),
	})
	return newWithBackends("sk_test_123", &stripeapi.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestProcessor_CreateIntent(t *testing.T) {
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "key-1" {
			t.Errorf("expected idempotency key, got %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		if r.PostForm.Get("amount") != "1999" || r.PostForm.Get("currency") != "usd" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		if r.PostForm.Get("automatic_payment_methods[enabled]") != "true" {
			t.Errorf("automatic payment methods not enabled: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := p.CreateIntent(context.Background(), ports.IntentInput{
		AmountCents:    1999,
		Currency:       "usd",
		IdempotencyKey: "key-1",
	})
	if err != nil {
		t.Fatalf("CreateIntent returned error: %v", err)
	}
	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret_abc" {
		t.Fatalf("unexpected intent %#v", intent)
	}
}

func TestProcessor_CreateIntentError(t *testing.T) {
	p := newTestProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"declined"}}`))
	})

	_, err := p.CreateIntent(context.Background(), ports.IntentInput{AmountCents: 500, Currency: "usd"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "card_declined") {
		t.Fatalf("expected card_declined in %q", err.Error())
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New("  ", http.DefaultClient); !errors.Is(err, ErrKeyRequired) {
		t.Fatalf("expected ErrKeyRequired, got %v", err)
	}
}
