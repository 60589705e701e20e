package adoptions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, roles middleware.RoleLookup) {
	// Sólo cuentas con rol user pueden pedir una adopción (reemplaza /adoptting)
	r.With(middleware.RequireAuth, middleware.RequireUser(roles)).Post("/adoption-requests", submitRequestHandler(svc))

	r.With(middleware.RequireAuth).Get("/users/{email}/adoption-requests", listOwnerRequestsHandler(svc, roles))

	// Dueño de la mascota o admin
	r.With(middleware.RequireAuth).Post("/adoption-requests/{requestID}/accept", acceptRequestHandler(svc, roles))
	r.With(middleware.RequireAuth).Post("/adoption-requests/{requestID}/reject", rejectRequestHandler(svc, roles))
}

type submitRequest struct {
	PetID   string `json:"pet_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type requestResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"pet_id"`
	RequesterEmail string    `json:"requester_email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}

type decisionResponse struct {
	Success bool            `json:"success"`
	Request requestResponse `json:"request"`
}

// submitRequestHandler godoc
// @Summary Solicitar adopción
// @Description Inserta la solicitud y pasa la mascota a requested en una sola operación.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body submitRequest true "Solicitud"
// @Success 201 {object} requestResponse
// @Failure 400 {object} object "invalid json / pet_id requerido"
// @Failure 403 {object} object "forbidden access"
// @Failure 404 {object} object "Pet not found"
// @Failure 409 {object} object "pet already adopted"
// @Router /adoption-requests [post]
func submitRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req submitRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		name := req.Name
		if name == "" {
			name = claims.Name
		}

		out, err := svc.Submit(r.Context(), claims.Email, SubmitInput{
			PetID:   req.PetID,
			Name:    name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toRequestResponse(out))
	}
}

func listOwnerRequestsHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if !middleware.OwnerOrAdmin(r.Context(), roles, email) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		items, err := svc.ListForOwner(r.Context(), email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]requestResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toRequestResponse(it))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// acceptRequestHandler godoc
// @Summary Aceptar solicitud
// @Description La mascota queda adopted y se borran todas sus solicitudes.
// @Tags adoptions
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} decisionResponse
// @Failure 403 {object} object "forbidden access"
// @Failure 404 {object} object "Request not found"
// @Router /adoption-requests/{requestID}/accept [post]
func acceptRequestHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return decisionHandler(svc, roles, svc.Accept)
}

// rejectRequestHandler godoc
// @Summary Rechazar solicitud
// @Description Borra sólo esta solicitud y la mascota vuelve a not_adopted.
// @Tags adoptions
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} decisionResponse
// @Failure 403 {object} object "forbidden access"
// @Failure 404 {object} object "Request not found"
// @Router /adoption-requests/{requestID}/reject [post]
func rejectRequestHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return decisionHandler(svc, roles, svc.Reject)
}

type decideFunc func(ctx context.Context, id string) (Request, error)

func decisionHandler(svc *Service, roles middleware.RoleLookup, decide decideFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := svc.GetByID(r.Context(), chi.URLParam(r, "requestID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		owner, err := svc.PetOwner(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, owner) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		done, err := decide(r.Context(), req.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, decisionResponse{Success: true, Request: toRequestResponse(done)})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, ErrPetNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Pet not found")
	case errors.Is(err, ErrPetAdopted):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toRequestResponse(r Request) requestResponse {
	return requestResponse{
		ID:             r.ID,
		PetID:          r.PetID,
		RequesterEmail: r.RequesterEmail,
		Name:           r.Name,
		Phone:          r.Phone,
		Address:        r.Address,
		CreatedAt:      r.CreatedAt,
	}
}
