package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption/internal/platform/httpx"
)

// Roles guardados en el registro de usuario.
const (
	AdminRole = "admin"
	UserRole  = "user"
)

// RoleLookup resuelve el rol guardado de un usuario por email.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// RequireAuth corta con 401 si AuthContext no dejó claims.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole consulta el rol en el store en cada request (sin cache).
// Sin registro o rol distinto => 403. Asume RequireAuth antes.
func RequireRole(lookup RoleLookup, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}
			if !HasRole(r.Context(), lookup, claims.Email, role) {
				httpx.WriteError(w, http.StatusForbidden, "forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(lookup RoleLookup) func(http.Handler) http.Handler {
	return RequireRole(lookup, AdminRole)
}

func RequireUser(lookup RoleLookup) func(http.Handler) http.Handler {
	return RequireRole(lookup, UserRole)
}

func HasRole(ctx context.Context, lookup RoleLookup, email, role string) bool {
	if lookup == nil {
		return false
	}
	got, err := lookup.RoleOf(ctx, email)
	if err != nil {
		return false
	}
	return got == role
}

// OwnerOrAdmin: owner bypass; si no, exige rol admin en el store.
func OwnerOrAdmin(ctx context.Context, lookup RoleLookup, ownerEmail string) bool {
	claims, ok := GetClaims(ctx)
	if !ok {
		return false
	}
	if SameEmail(claims.Email, ownerEmail) {
		return true
	}
	return HasRole(ctx, lookup, claims.Email, AdminRole)
}

func SameEmail(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}
