package pets

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, roles middleware.RoleLookup) {
	adminOnly := middleware.RequireRole(roles, middleware.AdminRole)

	r.Route("/pets", func(pr chi.Router) {
		pr.With(middleware.RequireAuth).Post("/", createPetHandler(svc))
		pr.With(middleware.RequireAuth, adminOnly).Get("/", listAllPetsHandler(svc))

		// Catálogo público: reemplaza /notadopted
		pr.Get("/available", listAvailablePetsHandler(svc))

		// Perfil público: reemplaza /pets/:id y /petsss/:id
		pr.Get("/{petID}", getPetHandler(svc))

		// Owner o admin
		pr.With(middleware.RequireAuth).Put("/{petID}", updatePetHandler(svc, roles))
		pr.With(middleware.RequireAuth).Delete("/{petID}", deletePetHandler(svc, roles))

		// Override de estado (admin): reemplaza PUT /all-pets/:id
		pr.With(middleware.RequireAuth, adminOnly).Patch("/{petID}/status", setPetStatusHandler(svc))
	})

	r.With(middleware.RequireAuth).Get("/users/{email}/pets", listOwnerPetsHandler(svc, roles))
}

type createPetRequest struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Category         string `json:"category"`
	Location         string `json:"location"`
	ImageURL         string `json:"image_url"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
}

type updatePetRequest struct {
	Name             *string `json:"name"`
	Age              *int    `json:"age"`
	Category         *string `json:"category"`
	Location         *string `json:"location"`
	ImageURL         *string `json:"image_url"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
}

type setStatusRequest struct {
	Status AdoptionStatus `json:"status" enums:"not_adopted,requested,adopted"`
}

type petResponse struct {
	ID               string         `json:"id"`
	OwnerEmail       string         `json:"owner_email"`
	Name             string         `json:"name"`
	Age              int            `json:"age"`
	Category         string         `json:"category"`
	Location         string         `json:"location"`
	ImageURL         string         `json:"image_url"`
	ShortDescription string         `json:"short_description"`
	LongDescription  string         `json:"long_description"`
	Status           AdoptionStatus `json:"adoption_status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Publicar mascota
// @Description El dueño es siempre el email del token. La mascota nace not_adopted.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} object "invalid json / name requerido"
// @Failure 401 {object} object "unauthorized access"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), claims.Email, CreateInput{
			Name:             req.Name,
			Age:              req.Age,
			Category:         req.Category,
			Location:         req.Location,
			ImageURL:         req.ImageURL,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Ver mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} object "Pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, current.OwnerEmail) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		var req updatePetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		updated, err := svc.Update(r.Context(), petID, UpdateInput{
			Name:             req.Name,
			Age:              req.Age,
			Category:         req.Category,
			Location:         req.Location,
			ImageURL:         req.ImageURL,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		owner, err := svc.OwnerOf(r.Context(), petID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !middleware.OwnerOrAdmin(r.Context(), roles, owner) {
			httpx.WriteError(w, http.StatusForbidden, "forbidden access")
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setPetStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
		status, ok := ParseAdoptionStatus(string(req.Status))
		if req.Status == "" || !ok {
			httpx.WriteError(w, http.StatusBadRequest, "invalid status")
			return
		}

		p, err := svc.SetStatus(r.Context(), chi.URLParam(r, "petID"), status)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func listAllPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		writeList(w, items, err)
	}
}

func listAvailablePetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		writeList(w, items, err)
	}
}

// listOwnerPetsHandler: el propio dueño o un admin.
func listOwnerPetsHandler(svc *Service, roles middleware.RoleLookup) http.HandlerFunc {
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

func writeList(w http.ResponseWriter, items []Pet, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Pet not found")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:               p.ID,
		OwnerEmail:       p.OwnerEmail,
		Name:             p.Name,
		Age:              p.Age,
		Category:         p.Category,
		Location:         p.Location,
		ImageURL:         p.ImageURL,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
