package markko

import (
	"context"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// CheckoutsService wraps the checkout flow endpoints. The three steps
// (details, shipping, payment) are submitted in order against the
// calling user's cart.
type CheckoutsService struct {
	client *Client
}

// Details submits the buyer details step.
func (s *CheckoutsService) Details(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/checkout/details", data, oauth)
}

// Shipping submits the shipping selection step.
func (s *CheckoutsService) Shipping(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/checkout/shipping", data, oauth)
}

// Payment submits the payment step, completing the checkout.
func (s *CheckoutsService) Payment(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/checkout/payment", data, oauth)
}

// CreatePaymentIntent creates a gateway payment intent for the cart.
func (s *CheckoutsService) CreatePaymentIntent(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/gateway/stripe/customers/payment-intent", data, oauth)
}
