package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	emailadapter "click2card/internal/adapters/email"
	httpadapter "click2card/internal/adapters/http"
	razorpayadapter "click2card/internal/adapters/razorpay"
	sheetsadapter "click2card/internal/adapters/sheets"
	"click2card/internal/config"
	"click2card/internal/logging"
	"click2card/internal/services/fulfillment"
	"click2card/internal/services/pdfgen"
	"click2card/internal/services/webhook"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Wire adapters to services (ports).
	gateway := razorpayadapter.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	store := sheetsadapter.New(cfg.SheetsWebhookURL, cfg.OutboundTimeout)
	sender := emailadapter.New(cfg.ResendAPIKey, cfg.ResendFromEmail)
	composer := pdfgen.New()

	orders := fulfillment.New(cfg.RazorpayKeySecret, store, sender, composer, logger)
	webhooks := webhook.New(cfg.RazorpayWebhookSecret, logger)

	srv := httpadapter.New(gateway, orders, webhooks, composer, cfg, logger)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}
}
