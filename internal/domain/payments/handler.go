package payments

import (
	"errors"
	"net/http"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/money"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireAuth).Post("/create-payment-intent", createIntentHandler(svc, log))
}

type createIntentRequest struct {
	Price *money.Amount `json:"price" swaggertype:"number"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// createIntentHandler godoc
// @Summary Crear payment intent
// @Description price en moneda decimal (número o string). Se convierte a centavos redondeando.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body createIntentRequest true "Precio"
// @Success 200 {object} createIntentResponse
// @Failure 400 {object} object "invalid price"
// @Failure 401 {object} object "unauthorized access"
// @Failure 502 {object} object "payment processor error"
// @Failure 503 {object} object "payments not configured"
// @Router /create-payment-intent [post]
func createIntentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req createIntentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil || req.Price == nil {
			httpx.WriteError(w, http.StatusBadRequest, ErrInvalidPrice.Error())
			return
		}

		intent, err := svc.CreateIntent(r.Context(), float64(*req.Price))
		switch {
		case err == nil:
			httpx.WriteJSON(w, http.StatusOK, createIntentResponse{ClientSecret: intent.ClientSecret})
		case errors.Is(err, ErrInvalidPrice):
			httpx.WriteError(w, http.StatusBadRequest, ErrInvalidPrice.Error())
		case errors.Is(err, ErrUnavailable):
			httpx.WriteError(w, http.StatusServiceUnavailable, ErrUnavailable.Error())
		default:
			log.Error("payment intent failed", logger.Fields{"error": err})
			httpx.WriteError(w, http.StatusBadGateway, "payment processor error")
		}
	}
}
