// @title Pet Adoption API
// @version 1.0
// @description Adopción de mascotas y campañas de donación.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/jwtsession"
	"pet-adoption/internal/adapters/payments/stripe"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", logger.Fields{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", logger.Fields{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := router.Options{
		Store:           store,
		SessionTTL:      cfg.TokenTTL,
		SecureCookie:    cfg.IsProduction(),
		PaymentCurrency: cfg.PaymentCurrency,
		CORSOrigins:     cfg.CORSOrigins,
		Logger:          log,
	}

	// Sin secret (sólo fuera de producción) => modo dev con X-Debug-User-Email.
	if cfg.AccessTokenSecret != "" {
		mgr, err := jwtsession.New(cfg.AccessTokenSecret, cfg.TokenTTL)
		if err != nil {
			return err
		}
		opts.TokenVerifier = mgr
		opts.TokenIssuer = mgr
	} else {
		log.Warn("ACCESS_TOKEN_SECRET not set: dev auth via header", logger.Fields{"header": "X-Debug-User-Email"})
	}

	if cfg.StripeSecretKey != "" {
		proc, err := stripe.New(cfg.StripeSecretKey, httpclient.New(cfg.PaymentTimeout, log.With(logger.Fields{"component": "stripe"})))
		if err != nil {
			return err
		}
		opts.Payments = proc
	} else {
		log.Warn("STRIPE_SECRET_KEY not set: payment intents disabled", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr, "env": cfg.Env()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
