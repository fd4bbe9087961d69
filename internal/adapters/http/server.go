package httpadapter

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"click2card/internal/config"
	"click2card/internal/ports"
	"click2card/internal/services/fulfillment"
	"click2card/internal/services/pdfgen"
	"click2card/internal/services/webhook"
)

// Server wires the JSON API over the injected services.
type Server struct {
	gateway  ports.OrderGateway
	orders   *fulfillment.Service
	webhooks *webhook.Processor
	composer *pdfgen.Composer
	cfg      config.Config
	logger   *slog.Logger
}

func New(gateway ports.OrderGateway, orders *fulfillment.Service, webhooks *webhook.Processor, composer *pdfgen.Composer, cfg config.Config, logger *slog.Logger) *Server {
	return &Server{
		gateway:  gateway,
		orders:   orders,
		webhooks: webhooks,
		composer: composer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Routes returns a chi.Router mounting all handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/create-order", s.handleCreateOrder)
		r.Post("/verify-payment", s.handleVerifyPayment)
		r.Post("/generate-card", s.handleGenerateCard)
		r.Post("/razorpay-webhook", s.handleWebhook)
		if s.cfg.Env == "development" {
			// Paymentless preview of the composed PDF for template work.
			r.Post("/test-generate", s.handleTestGenerate)
		}
	})
	return r
}
