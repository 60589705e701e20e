// Package jwtsession firma y valida los tokens de sesión (HS256) que viajan en
// la cookie "token".
package jwtsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"

	jwt "github.com/golang-jwt/jwt/v5"
)

const DefaultLifetime = 365 * 24 * time.Hour

var (
	ErrSecretRequired = errors.New("jwtsession: secret is required")
	ErrTokenEmpty     = errors.New("jwtsession: token is empty")
	ErrTokenInvalid   = errors.New("jwtsession: token invalid")
)

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Manager implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func New(secret string, lifetime time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretRequired
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Manager{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

func (m *Manager) Lifetime() time.Duration { return m.lifetime }

func (m *Manager) Issue(c auth.Claims) (string, error) {
	email := auth.NormalizeEmail(c.Email)
	if email == "" {
		return "", errors.New("jwtsession: email claim required")
	}

	now := m.now()
	claims := sessionClaims{
		Email: email,
		Name:  strings.TrimSpace(c.Name),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida firma y expiración de forma síncrona.
func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	email := auth.NormalizeEmail(claims.Email)
	if email == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing email", ErrTokenInvalid)
	}
	return auth.Claims{Email: email, Name: claims.Name}, nil
}
