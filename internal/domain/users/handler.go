package users

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	adminOnly := middleware.RequireRole(svc, string(RoleAdmin))

	r.With(middleware.RequireAuth).Put("/user", saveUserHandler(svc))
	r.Get("/user/{email}", getUserHandler(svc))

	// Rutas planas: otros módulos cuelgan /users/{email}/... del mismo router.
	r.With(middleware.RequireAuth, adminOnly).Get("/users", listUsersHandler(svc))
	r.With(middleware.RequireAuth, adminOnly).Put("/users/{email}/role", setRoleHandler(svc))
}

// saveUserRequest: role no se acepta desde el cliente.
type saveUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Status   string `json:"status"`
}

type setRoleRequest struct {
	Role Role `json:"role" enums:"user,admin"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      Role      `json:"role"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// saveUserHandler godoc
// @Summary Guardar usuario
// @Description Alta idempotente por email. Si ya existe, sólo se actualiza status cuando llega "Requested".
// @Tags users
// @Accept json
// @Produce json
// @Param payload body saveUserRequest true "Perfil"
// @Success 200 {object} userResponse
// @Failure 401 {object} object "unauthorized access"
// @Failure 403 {object} object "email distinto al del token"
// @Router /user [put]
func saveUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req saveUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Save(r.Context(), claims.Email, SaveInput{
			Email:    req.Email,
			Name:     req.Name,
			PhotoURL: req.PhotoURL,
			Status:   req.Status,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// setRoleHandler godoc
// @Summary Cambiar rol de usuario
// @Description Sólo admin. Reemplaza al viejo PUT /admin/{id}, que no tenía gate y hacía upsert.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "Email del usuario"
// @Param payload body setRoleRequest true "Nuevo rol"
// @Success 200 {object} userResponse
// @Failure 400 {object} object "rol inválido"
// @Failure 403 {object} object "forbidden access"
// @Failure 404 {object} object "User not found"
// @Router /users/{email}/role [put]
func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRoleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.SetRole(r.Context(), chi.URLParam(r, "email"), req.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden access")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
