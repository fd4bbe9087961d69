package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"click2card/internal/domain"
	"click2card/internal/services/fulfillment"
	"click2card/internal/services/pdfgen"
	"click2card/internal/services/qr"
	"click2card/internal/services/signature"
	"click2card/internal/services/vcard"
	"click2card/internal/services/webhook"
)

// cardPayload is the wire shape of a submitted card.
type cardPayload struct {
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email"`
	City         string `json:"city,omitempty"`
	Website      string `json:"website,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	GoogleMaps   string `json:"googleMaps,omitempty"`
	TemplateID   string `json:"templateId"`
	PhotoDataURL string `json:"photoDataUrl,omitempty"`
}

func (p cardPayload) toDomain() domain.BusinessCard {
	return domain.BusinessCard{
		FullName:     p.FullName,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		WhatsApp:     p.WhatsApp,
		Email:        p.Email,
		City:         p.City,
		Website:      p.Website,
		Instagram:    p.Instagram,
		GoogleMaps:   p.GoogleMaps,
		TemplateID:   p.TemplateID,
		PhotoDataURL: p.PhotoDataURL,
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount != s.cfg.CardPrice {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid amount, must be %d", s.cfg.CardPrice))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.OutboundTimeout)
	defer cancel()

	order, err := s.gateway.CreateOrder(ctx, req.Amount)
	if err != nil {
		s.logger.Error("order creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Signature string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		writeError(w, http.StatusBadRequest, "missing required payment details")
		return
	}

	if !signature.VerifyPayment(req.OrderID, req.PaymentID, req.Signature, s.cfg.RazorpayKeySecret) {
		s.logger.Warn("payment verification failed",
			"orderId", req.OrderID, "paymentId", req.PaymentID)
		writeError(w, http.StatusBadRequest, "payment verification failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "payment verified successfully",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

func (s *Server) handleGenerateCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID   string      `json:"orderId"`
		PaymentID string      `json:"paymentId"`
		Signature string      `json:"signature"`
		CardData  cardPayload `json:"cardData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		writeError(w, http.StatusBadRequest, "missing required payment details")
		return
	}
	card := req.CardData.toDomain()
	if err := card.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.OutboundTimeout)
	defer cancel()

	proof := domain.PaymentProof{OrderID: req.OrderID, PaymentID: req.PaymentID, Signature: req.Signature}
	result, err := s.orders.Fulfill(ctx, proof, card)
	if err != nil {
		s.writeFulfillmentError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Order received! Check your email for confirmation. Your business card will be delivered within 24 hours.",
		"paymentId": result.PaymentID,
		"email":     result.Email,
	})
}

// writeFulfillmentError maps the orchestrator's error taxonomy to statuses.
// The persistence message embeds the payment id: the customer was charged,
// so support needs a handle to reconcile the unrecorded order.
func (s *Server) writeFulfillmentError(w http.ResponseWriter, err error) {
	var perr *fulfillment.PersistenceError
	var genErr *pdfgen.GenerationError
	switch {
	case errors.Is(err, fulfillment.ErrSignatureMismatch):
		writeError(w, http.StatusBadRequest, "invalid payment signature")
	case errors.As(err, &perr):
		writeError(w, http.StatusInternalServerError,
			"Failed to save your order. Please contact support with your payment ID: "+perr.PaymentID)
	case errors.As(err, &genErr):
		writeError(w, http.StatusInternalServerError, "failed to generate your card, please contact support")
	default:
		writeError(w, http.StatusInternalServerError, "failed to process your order, please contact support")
	}
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	sig := r.Header.Get("X-Razorpay-Signature")
	if sig == "" {
		writeError(w, http.StatusBadRequest, "no signature found")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}

	if err := s.webhooks.Process(r.Context(), body, sig); err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			s.logger.Warn("webhook signature rejected")
			writeError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
		s.logger.Error("webhook processing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "webhook processing failed")
		return
	}
	// Always acknowledge verified events, recognized or not: a non-2xx
	// would make the provider retry.
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTestGenerate(w http.ResponseWriter, r *http.Request) {
	var req cardPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	card := req.toDomain()
	if err := card.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vcf := vcard.Encode(card)
	qrPNG, err := qr.Encode(vcf)
	if err != nil {
		s.logger.Error("test generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate test card")
		return
	}
	pdfBytes, err := s.composer.Compose(card, qrPNG)
	if err != nil {
		s.logger.Error("test generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate test card")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
