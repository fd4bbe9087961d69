package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"click2card/internal/domain"
	"click2card/internal/ports"
	"click2card/internal/services/pdfgen"
	"click2card/internal/services/qr"
	"click2card/internal/services/signature"
	"click2card/internal/services/vcard"
)

// State tracks an order's progress through the pipeline. Transitions are
// linear; REJECTED and DELIVERY_FAILED are the only branches.
type State string

const (
	StateReceived       State = "RECEIVED"
	StateRejected       State = "REJECTED"
	StateVerified       State = "VERIFIED"
	StatePersisted      State = "PERSISTED"
	StateComposed       State = "COMPOSED"
	StateDelivered      State = "DELIVERED"
	StateDeliveryFailed State = "DELIVERY_FAILED"
)

// ErrSignatureMismatch rejects an order whose payment proof fails HMAC
// verification. Surfaced to the caller as a client-side rejection.
var ErrSignatureMismatch = errors.New("invalid payment signature")

// PersistenceError is fatal: an order the system of record did not accept
// must not be reported as a success, even though the payment went through.
// The payment id travels with the error so support can reconcile manually.
type PersistenceError struct {
	PaymentID string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist order for payment %s: %v", e.PaymentID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Service runs verified orders through persistence, artifact generation and
// delivery. All collaborators are injected; the service holds no per-order
// state and is safe for concurrent use.
type Service struct {
	secret   string
	store    ports.OrderStore
	delivery ports.Delivery
	composer *pdfgen.Composer
	logger   *slog.Logger
}

func New(secret string, store ports.OrderStore, delivery ports.Delivery, composer *pdfgen.Composer, logger *slog.Logger) *Service {
	return &Service{secret: secret, store: store, delivery: delivery, composer: composer, logger: logger}
}

// Result reports a completed fulfillment. Delivered is false when the email
// step failed; the order still counts as successful.
type Result struct {
	PaymentID string
	Email     string
	Delivered bool
}

// Fulfill runs one order through the pipeline. Verification and persistence
// failures abort the order. A delivery failure is absorbed after logging:
// payment and persistence already succeeded, and manual follow-up beats
// reporting a recorded order as failed. Exactly one persistence write and at
// most one delivery attempt happen per call; nothing is retried.
//
// Proofs are not tracked for replay: submitting the same valid proof twice
// fulfils twice. Deduplication would need an order store this system
// deliberately does not have.
func (s *Service) Fulfill(ctx context.Context, proof domain.PaymentProof, card domain.BusinessCard) (Result, error) {
	state := StateReceived
	advance := func(next State) {
		s.logger.Debug("fulfillment transition",
			"from", string(state), "to", string(next),
			"orderId", proof.OrderID, "paymentId", proof.PaymentID)
		state = next
	}

	if !signature.VerifyPayment(proof.OrderID, proof.PaymentID, proof.Signature, s.secret) {
		advance(StateRejected)
		s.logger.Warn("payment signature rejected",
			"orderId", proof.OrderID, "paymentId", proof.PaymentID)
		return Result{}, ErrSignatureMismatch
	}
	advance(StateVerified)

	if err := s.store.SaveOrder(ctx, card, proof.PaymentID); err != nil {
		s.logger.Error("order persistence failed",
			"paymentId", proof.PaymentID, "error", err)
		return Result{}, &PersistenceError{PaymentID: proof.PaymentID, Err: err}
	}
	advance(StatePersisted)

	bundle, err := s.composeBundle(card)
	if err != nil {
		s.logger.Error("artifact generation failed",
			"paymentId", proof.PaymentID, "error", err)
		return Result{}, err
	}
	advance(StateComposed)

	result := Result{PaymentID: proof.PaymentID, Email: card.Email, Delivered: true}
	if err := s.delivery.SendBundle(ctx, card, bundle); err != nil {
		advance(StateDeliveryFailed)
		result.Delivered = false
		s.logger.Error("bundle delivery failed, order still successful",
			"paymentId", proof.PaymentID, "email", card.Email, "error", err)
		return result, nil
	}
	advance(StateDelivered)
	s.logger.Info("order fulfilled",
		"paymentId", proof.PaymentID, "email", card.Email)
	return result, nil
}

// composeBundle builds the three artifacts in sequence. The QR payload is
// the vCard text itself, so a scanned code imports the identical contact
// record without network access.
func (s *Service) composeBundle(card domain.BusinessCard) (domain.Bundle, error) {
	vcf := vcard.Encode(card)
	qrPNG, err := qr.Encode(vcf)
	if err != nil {
		return domain.Bundle{}, &pdfgen.GenerationError{Err: err}
	}
	pdfBytes, err := s.composer.Compose(card, qrPNG)
	if err != nil {
		return domain.Bundle{}, err
	}
	return domain.Bundle{PDF: pdfBytes, QR: qrPNG, VCF: []byte(vcf)}, nil
}
