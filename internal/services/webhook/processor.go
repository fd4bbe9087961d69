package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"click2card/internal/services/signature"
)

// Provider event types this processor recognizes.
const (
	EventPaymentAuthorized = "payment.authorized"
	EventPaymentCaptured   = "payment.captured"
	EventPaymentFailed     = "payment.failed"
	EventOrderPaid         = "order.paid"
)

// ErrInvalidSignature rejects a webhook whose body signature does not verify.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Processor verifies and dispatches asynchronous provider notifications. It
// shares no state with the synchronous fulfillment path and may run
// concurrently with it for the same underlying payment; the handlers are
// hooks that currently only log.
type Processor struct {
	secret string
	logger *slog.Logger
}

func New(secret string, logger *slog.Logger) *Processor {
	return &Processor{secret: secret, logger: logger}
}

// Process checks the whole-body signature, then dispatches on the event
// type. Unknown event types are logged and ignored rather than failed, so
// the provider does not retry them.
func (p *Processor) Process(ctx context.Context, body []byte, sig string) error {
	if !signature.VerifyWebhook(body, sig, p.secret) {
		return ErrInvalidSignature
	}
	var ev event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("parse webhook body: %w", err)
	}

	switch ev.Event {
	case EventPaymentAuthorized:
		p.logger.Info("payment authorized", "paymentId", paymentID(ev.Payload))
	case EventPaymentCaptured:
		p.logger.Info("payment captured", "paymentId", paymentID(ev.Payload))
	case EventPaymentFailed:
		p.logger.Info("payment failed", "paymentId", paymentID(ev.Payload))
	case EventOrderPaid:
		p.logger.Info("order paid", "orderId", orderID(ev.Payload))
	default:
		p.logger.Info("unhandled webhook event", "event", ev.Event)
	}
	return nil
}

// paymentID digs the payment entity id out of the notification payload.
func paymentID(payload json.RawMessage) string {
	var v struct {
		Payment struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"payment"`
	}
	_ = json.Unmarshal(payload, &v)
	return v.Payment.Entity.ID
}

func orderID(payload json.RawMessage) string {
	var v struct {
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	}
	_ = json.Unmarshal(payload, &v)
	return v.Order.Entity.ID
}
