package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/adapters/auth/jwtsession"
	"pet-adoption/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T, opts CookieOptions) (http.Handler, *jwtsession.Manager) {
	t.Helper()
	mgr, err := jwtsession.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("jwtsession.New: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, mgr, opts)
	return r, mgr
}

func findCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	return nil
}

func TestIssueToken_SetsVerifiableCookie(t *testing.T) {
	h, mgr := newTestRouter(t, CookieOptions{MaxAge: time.Hour})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"ana@example.com","name":"Ana"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}

	c := findCookie(rr)
	if c == nil {
		t.Fatal("token cookie not set")
	}
	if !c.HttpOnly || c.Secure || c.SameSite != http.SameSiteStrictMode || c.MaxAge != 3600 {
		t.Fatalf("unexpected cookie attributes %#v", c)
	}

	claims, err := mgr.Verify(context.Background(), c.Value)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Email != "ana@example.com" || claims.Name != "Ana" {
		t.Fatalf("unexpected claims %#v", claims)
	}
}

func TestIssueToken_ProductionCookie(t *testing.T) {
	h, _ := newTestRouter(t, CookieOptions{Secure: true, MaxAge: time.Hour})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"ana@example.com"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	c := findCookie(rr)
	if c == nil || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Fatalf("expected Secure + SameSite=None cookie, got %#v", c)
	}
}

func TestIssueToken_RequiresEmail(t *testing.T) {
	h, _ := newTestRouter(t, CookieOptions{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"  "}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if findCookie(rr) != nil {
		t.Fatal("cookie must not be set")
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newTestRouter(t, CookieOptions{MaxAge: time.Hour})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	c := findCookie(rr)
	if c == nil || c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %#v", c)
	}
}
