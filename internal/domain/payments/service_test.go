package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/auth"
	ports "pet-adoption/internal/ports/payments"

	"github.com/go-chi/chi/v5"
)

type fakeProcessor struct {
	calls []ports.IntentInput
	err   error
}

func (f *fakeProcessor) CreateIntent(_ context.Context, in ports.IntentInput) (ports.Intent, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return ports.Intent{}, f.err
	}
	return ports.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
}

func TestService_CreateIntentConvertsToCents(t *testing.T) {
	proc := &fakeProcessor{}
	svc := NewService(proc, "USD")
	svc.newKey = func() string { return "key-1" }

	intent, err := svc.CreateIntent(context.Background(), 12.346)
	if err != nil {
		t.Fatalf("CreateIntent returned error: %v", err)
	}
	if intent.ClientSecret != "pi_1_secret" {
		t.Fatalf("unexpected intent %#v", intent)
	}
	if len(proc.calls) != 1 {
		t.Fatalf("expected 1 processor call, got %d", len(proc.calls))
	}
	got := proc.calls[0]
	if got.AmountCents != 1235 || got.Currency != "usd" || got.IdempotencyKey != "key-1" {
		t.Fatalf("unexpected processor input %#v", got)
	}
}

func TestService_CreateIntentRejectsTinyAmounts(t *testing.T) {
	proc := &fakeProcessor{}
	svc := NewService(proc, "")

	for _, price := range []float64{0, 0.004, -3} {
		if _, err := svc.CreateIntent(context.Background(), price); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("price %v: expected ErrInvalidPrice, got %v", price, err)
		}
	}
	if len(proc.calls) != 0 {
		t.Fatalf("processor must not be called, got %d calls", len(proc.calls))
	}
}

func TestService_CreateIntentWithoutProcessor(t *testing.T) {
	svc := NewService(nil, "usd")
	if _, err := svc.CreateIntent(context.Background(), 5); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithClaims(req.Context(), auth.Claims{Email: "ana@example.com"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	RegisterRoutes(r, svc, nil)
	return r
}

func TestCreateIntentHandler(t *testing.T) {
	proc := &fakeProcessor{}
	h := newTestRouter(NewService(proc, "usd"))

	cases := []struct {
		body   string
		status int
	}{
		{`{"price": "19.99"}`, http.StatusOK},
		{`{"price": 5}`, http.StatusOK},
		{`{}`, http.StatusBadRequest},
		{`{"price": "abc"}`, http.StatusBadRequest},
		{`{"price": 0}`, http.StatusBadRequest},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != c.status {
			t.Fatalf("body %s: expected %d, got %d (%s)", c.body, c.status, rr.Code, rr.Body.String())
		}
		if c.status == http.StatusOK && !strings.Contains(rr.Body.String(), `"clientSecret":"pi_1_secret"`) {
			t.Fatalf("missing clientSecret in %s", rr.Body.String())
		}
	}
	if len(proc.calls) != 2 {
		t.Fatalf("expected 2 processor calls, got %d", len(proc.calls))
	}
	if proc.calls[0].AmountCents != 1999 {
		t.Fatalf("expected 1999 cents, got %d", proc.calls[0].AmountCents)
	}
}

func TestCreateIntentHandler_ProcessorFailure(t *testing.T) {
	h := newTestRouter(NewService(&fakeProcessor{err: errors.New("card_declined")}, "usd"))

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price": 10}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}
