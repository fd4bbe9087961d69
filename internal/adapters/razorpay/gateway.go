package razorpay

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"

	"click2card/internal/domain"
)

const currency = "INR"

// Gateway creates provider orders. The client is built once at construction
// and injected where needed, instead of a lazily initialized singleton.
type Gateway struct {
	create func(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

func New(keyID, keySecret string) *Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	return &Gateway{create: client.Order.Create}
}

// CreateOrder opens a provider order for the given rupee amount. The
// provider counts in paise, hence the conversion. The call runs under the
// caller's ctx deadline; when the deadline fires first the in-flight
// provider request is abandoned and the deadline error is returned.
// Business-rule validation of the amount happens at the HTTP boundary; a
// provider failure surfaces as a generic create error with no retry.
func (g *Gateway) CreateOrder(ctx context.Context, amountRupees int64) (domain.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amountRupees * 100,
		"currency": currency,
		"receipt":  "rcpt_" + uuid.NewString(),
	}

	type result struct {
		order map[string]interface{}
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		order, err := g.create(data, nil)
		ch <- result{order: order, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.PaymentOrder{}, fmt.Errorf("create payment order: %w", ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return domain.PaymentOrder{}, fmt.Errorf("create payment order: %w", res.err)
		}
		return domain.PaymentOrder{
			ID:       stringField(res.order, "id"),
			Amount:   amountField(res.order, "amount"),
			Currency: stringField(res.order, "currency"),
		}, nil
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func amountField(m map[string]interface{}, key string) int64 {
	switch n := m[key].(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
