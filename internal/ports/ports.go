package ports

import (
	"context"

	"click2card/internal/domain"
)

// OrderGateway creates provider-side payment orders.
type OrderGateway interface {
	CreateOrder(ctx context.Context, amountRupees int64) (domain.PaymentOrder, error)
}

// OrderStore records a paid order with the external system of record.
// Callers treat a failure here as fatal for the order.
type OrderStore interface {
	SaveOrder(ctx context.Context, card domain.BusinessCard, paymentID string) error
}

// Delivery sends the finished artifact bundle to the customer. Best effort;
// a failure does not undo the order.
type Delivery interface {
	SendBundle(ctx context.Context, card domain.BusinessCard, bundle domain.Bundle) error
}
