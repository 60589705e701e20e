package campaigns

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/money"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes consolida /donation-campaigns, /donationsss, /donation-cam y
// compañía en un solo recurso.
func RegisterRoutes(r chi.Router, svc *Service, roles middleware.RoleLookup) {
	r.With(middleware.RequireAuth).Post("/donation-campaigns", createCampaignHandler(svc))
	r.Get("/donation-campaigns", listCampaignsHandler(svc))
	r.Get("/donation-campaigns/{campaignID}", getCampaignHandler(svc))
	r.With(middleware.RequireAuth).Put("/donation-campaigns/{campaignID}", updateCampaignHandler(svc, roles))
	r.With(middleware.RequireAuth).Post("/donation-campaigns/{campaignID}/pause", togglePauseHandler(svc, roles))
	r.With(middleware.RequireAuth).Delete("/donation-campaigns/{campaignID}", deleteCampaignHandler(svc, roles))

	r.With(middleware.RequireAuth).Get("/users/{email}/donation-campaigns", listOwnerCampaignsHandler(svc, roles))
}

type createCampaignRequest struct {
	PetName           string       `json:"pet_name"`
	PetPicture        string       `json:"pet_picture"`
	MaxDonationAmount money.Amount `json:"max_donation_amount"` // número o string
	LastDate          string       `json:"last_date"` // YYYY-MM-DD
	ShortDescription  string       `json:"short_description"`
	LongDescription   string       `json:"long_description"`
}

type updateCampaignRequest struct {
	PetName           *string       `json:"pet_name"`
	PetPicture        *string       `json:"pet_picture"`
	MaxDonationAmount *money.Amount `json:"max_donation_amount"`
	LastDate          *string       `json:"last_date"`
	ShortDescription  *string       `json:"short_description"`
	LongDescription   *string       `json:"long_description"`
}

type campaignResponse struct {
	ID                string    `json:"id"`
	OwnerEmail        string    `json:"owner_email"`
	PetName           string    `json:"pet_name"`
	PetPicture        string    `json:"pet_picture"`
	MaxDonationAmount float64   `json:"max_donation_amount"`
	LastDate          string    `json:"last_date,omitempty"`
	ShortDescription  string    `json:"short_description"`
	LongDescription   string    `json:"long_description"`
	Paused            bool      `json:"paused"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type pauseResponse struct {
	Success bool   `json:"success"`
	Paused  bool   `json:"paused"`
	Message string `json:"message,omitempty"`
}

// createCampaignHandler godoc
// @Summary Crear campaña de donación
// @Tags donation-campaigns
// @Accept json
// @Produce json
// @Param payload body createCampaignRequest true "Campaña"
// @Success 201 {object} campaignResponse
// @Failure 400 {object} object "invalid json / last_date debe ser YYYY-MM-DD"
// @Failure 401 {object} object "unauthorized access"
// @Router /donation-campaigns [post]
func createCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createCampaignRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := svc.Create(r.Context(), claims.Email, CreateInput{
			PetName:          req.PetName,
			PetPicture:       req.PetPicture,
			MaxAmount:        float64(req.MaxDonationAmount),
			LastDate:         req.LastDate,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toCampaignResponse(c))
	}
}

func listCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		writeList(w, items, err)
	}
}

func getCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "campaignID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

func updateCampaignHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "campaignID")
		current, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, current.OwnerEmail) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		var req updateCampaignRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := svc.Update(r.Context(), id, UpdateInput{
			PetName:          req.PetName,
			PetPicture:       req.PetPicture,
			MaxAmount:        floatPtr(req.MaxDonationAmount),
			LastDate:         req.LastDate,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

func togglePauseHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "campaignID")
		current, err := svc.GetByID(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, pauseResponse{Success: false, Message: "Donation not found"})
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, current.OwnerEmail) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		paused, err := svc.TogglePaused(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, pauseResponse{Success: false, Message: "Donation not found"})
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, pauseResponse{Success: true, Paused: paused})
	}
}

func deleteCampaignHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "campaignID")
		current, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, current.OwnerEmail) {
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

func listOwnerCampaignsHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if !middleware.OwnerOrAdmin(r.Context(), roles, email) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}
		items, err := svc.ListByOwner(r.Context(), email)
		writeList(w, items, err)
	}
}

func writeList(w http.ResponseWriter, items []Campaign, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCampaignResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Donation not found")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func floatPtr(a *money.Amount) *float64 {
	if a == nil {
		return nil
	}
	v := float64(*a)
	return &v
}

func toCampaignResponse(c Campaign) campaignResponse {
	out := campaignResponse{
		ID:                c.ID,
		OwnerEmail:        c.OwnerEmail,
		PetName:           c.PetName,
		PetPicture:        c.PetPicture,
		MaxDonationAmount: money.FromCents(c.TargetCents),
		ShortDescription:  c.ShortDescription,
		LongDescription:   c.LongDescription,
		Paused:            c.Paused,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.LastDate != nil {
		out.LastDate = c.LastDate.Format(dateLayout)
	}
	return out
}
