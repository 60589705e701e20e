package donations

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/money"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes reemplaza /user-donate, /donateeeee y /my-donate/*.
func RegisterRoutes(r chi.Router, svc *Service, campaignsReader CampaignReader, roles middleware.RoleLookup) {
	r.With(middleware.RequireAuth).Post("/donations", createDonationHandler(svc))
	r.With(middleware.RequireAuth).Delete("/donations/{donationID}", deleteDonationHandler(svc, roles))
	r.With(middleware.RequireAuth).Get("/users/{email}/donations", listDonorDonationsHandler(svc, roles))
	r.With(middleware.RequireAuth).Get("/donation-campaigns/{campaignID}/donations", campaignDonationsHandler(svc, campaignsReader, roles))
}

type createDonationRequest struct {
	CampaignID      string       `json:"campaign_id"`
	DonorName       string       `json:"donor_name"`
	Amount          money.Amount `json:"amount"`
	PaymentIntentID string       `json:"payment_intent_id"`
}

type donationResponse struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id"`
	DonorEmail      string    `json:"donor_email"`
	DonorName       string    `json:"donor_name,omitempty"`
	Amount          float64   `json:"amount"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type campaignDonationsResponse struct {
	Donations []donationResponse `json:"donations"`
	Total     float64            `json:"total"`
}

// createDonationHandler godoc
// @Summary Registrar donación
// @Description El donante es el email del token. La campaña debe existir, no estar pausada ni vencida.
// @Tags donations
// @Accept json
// @Produce json
// @Param payload body createDonationRequest true "Donación"
// @Success 201 {object} donationResponse
// @Failure 400 {object} object "invalid json / amount inválido"
// @Failure 404 {object} object "Donation not found"
// @Failure 409 {object} object "campaign is not accepting donations"
// @Router /donations [post]
func createDonationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createDonationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		name := req.DonorName
		if name == "" {
			name = claims.Name
		}

		d, err := svc.Create(r.Context(), claims.Email, CreateInput{
			CampaignID:      req.CampaignID,
			DonorName:       name,
			Amount:          float64(req.Amount),
			PaymentIntentID: req.PaymentIntentID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toDonationResponse(d))
	}
}

func deleteDonationHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "donationID")
		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, d.DonorEmail) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listDonorDonationsHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if !middleware.OwnerOrAdmin(r.Context(), roles, email) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}
		items, err := svc.ListByDonor(r.Context(), email)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDonationResponses(items))
	}
}

// campaignDonationsHandler: sólo el dueño de la campaña o un admin ven quién donó.
func campaignDonationsHandler(svc *Service, campaignsReader CampaignReader, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := campaignsReader.GetByID(r.Context(), chi.URLParam(r, "campaignID"))
		if err != nil {
			if errors.Is(err, campaigns.ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "Donation not found")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, c.OwnerEmail) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		items, total, err := svc.CampaignSummary(r.Context(), c.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, campaignDonationsResponse{
			Donations: toDonationResponses(items),
			Total:     money.FromCents(total),
		})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCampaignNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Donation not found")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Donation record not found")
	case errors.Is(err, ErrCampaignClosed):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toDonationResponses(items []Donation) []donationResponse {
	out := make([]donationResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDonationResponse(d))
	}
	return out
}

func toDonationResponse(d Donation) donationResponse {
	return donationResponse{
		ID:              d.ID,
		CampaignID:      d.CampaignID,
		DonorEmail:      d.DonorEmail,
		DonorName:       d.DonorName,
		Amount:          money.FromCents(d.AmountCents),
		PaymentIntentID: d.PaymentIntentID,
		CreatedAt:       d.CreatedAt,
	}
}
