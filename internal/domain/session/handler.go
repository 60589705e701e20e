// Package session emite y limpia la cookie de sesión.
package session

import (
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// CookieOptions: en producción Secure + SameSite=None (front en otro dominio),
// si no SameSite=Strict.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

func (o CookieOptions) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	}
	if o.Secure {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

func RegisterRoutes(r chi.Router, issuer auth.TokenIssuer, opts CookieOptions) {
	r.Post("/jwt", issueTokenHandler(issuer, opts))
	r.Get("/logout", logoutHandler(opts))
}

type issueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// issueTokenHandler godoc
// @Summary Iniciar sesión
// @Description Firma un token para el email y lo deja en la cookie HTTP-only "token".
// @Tags session
// @Accept json
// @Produce json
// @Param payload body issueTokenRequest true "Identidad"
// @Success 200 {object} successResponse
// @Failure 400 {object} object "email requerido"
// @Router /jwt [post]
func issueTokenHandler(issuer auth.TokenIssuer, opts CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if issuer == nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "session signing not configured")
			return
		}

		var req issueTokenRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			httpx.WriteError(w, http.StatusBadRequest, "email is required")
			return
		}

		token, err := issuer.Issue(auth.Claims{Email: email, Name: strings.TrimSpace(req.Name)})
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		http.SetCookie(w, opts.cookie(token, int(opts.MaxAge.Seconds())))
		httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags session
// @Produce json
// @Success 200 {object} successResponse
// @Router /logout [get]
func logoutHandler(opts CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, opts.cookie("", -1))
		httpx.WriteJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
