package router

import (
	"net/http"
	"time"

	_ "pet-adoption/docs"
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/payments"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/session"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
	paymentsport "pet-adoption/internal/ports/payments"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Store lo cumplen los adapters memory, mongo y postgres.
type Store interface {
	Users() users.Repository
	Pets() pets.Repository
	Campaigns() campaigns.Repository
	Adoptions() adoptions.Repository
	Donations() donations.Repository
}

type Options struct {
	// nil => modo dev (X-Debug-User-Email)
	TokenVerifier auth.AuthVerifier
	TokenIssuer   auth.TokenIssuer
	// Vida de la cookie de sesión; con Secure=true además SameSite=None.
	SessionTTL   time.Duration
	SecureCookie bool

	// nil => in-memory
	Store Store

	// nil => /create-payment-intent responde 503
	Payments        paymentsport.Processor
	PaymentCurrency string

	CORSOrigins []string
	Logger      logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(opts.TokenVerifier))
	// después de AuthContext para poder loguear el usuario
	r.Use(middleware.RequestLog(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Hello from Server.."))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(store.Users())
	petsSvc := pets.NewService(store.Pets())
	campaignsSvc := campaigns.NewService(store.Campaigns())
	adoptionsSvc := adoptions.NewService(store.Adoptions(), petsSvc)
	donationsSvc := donations.NewService(store.Donations(), campaignsSvc)
	paymentsSvc := payments.NewService(opts.Payments, opts.PaymentCurrency)

	// Rutas por módulo; el Role Gate consulta usersSvc en cada request.
	session.RegisterRoutes(r, opts.TokenIssuer, session.CookieOptions{
		Secure: opts.SecureCookie,
		MaxAge: opts.SessionTTL,
	})
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc, usersSvc)
	campaigns.RegisterRoutes(r, campaignsSvc, usersSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc, usersSvc)
	donations.RegisterRoutes(r, donationsSvc, campaignsSvc, usersSvc)
	payments.RegisterRoutes(r, paymentsSvc, log)

	return r
}
