package httpclient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-adoption/internal/platform/logger"
)

func TestClient_LogsOutboundRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})
	c := New(time.Second, log)

	resp, err := c.Get(srv.URL + "/v1/payment_intents")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["path"] != "/v1/payment_intents" {
		t.Fatalf("unexpected log entry %#v", entry)
	}
	if entry["status"] != float64(http.StatusServiceUnavailable) {
		t.Fatalf("expected status 503, got %#v", entry["status"])
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New(0, nil)
	if c.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", c.Timeout)
	}
}
