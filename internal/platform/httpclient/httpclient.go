// Package httpclient arma el *http.Client que usan los adapters salientes
// (procesador de pagos). Loguea cada llamada sin headers ni body.
package httpclient

import (
	"net/http"
	"time"

	"pet-adoption/internal/platform/logger"
)

const (
	DefaultTimeout = 10 * time.Second
)

// New crea un *http.Client con timeout y logging sobre http.DefaultTransport.
func New(timeout time.Duration, log logger.Logger) *http.Client {
	return NewWithTransport(timeout, nil, log)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper, log logger.Logger) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	if log == nil {
		log = logger.Nop()
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &loggingTransport{
			next: tr,
			log:  log,
			now:  time.Now,
		},
	}
}

type loggingTransport struct {
	next http.RoundTripper
	log  logger.Logger
	now  func() time.Time
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := t.now()
	resp, err := t.next.RoundTrip(req)

	fields := logger.Fields{
		"method":      req.Method,
		"host":        req.URL.Host,
		"path":        req.URL.Path,
		"duration_ms": t.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err
		t.log.Warn("outbound request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	if resp.StatusCode >= 500 {
		t.log.Warn("outbound request", fields)
	} else {
		t.log.Debug("outbound request", fields)
	}
	return resp, nil
}
