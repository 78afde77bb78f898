package markko

import (
	"context"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// PaymentMethodsService wraps the Stripe gateway customer endpoints.
type PaymentMethodsService struct {
	client *Client
}

// StripeKey returns the publishable Stripe API key for the tenant.
func (s *PaymentMethodsService) StripeKey(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/settings/gateway/stripe/keys", nil, oauth)
}

// SetupIntent creates a setup intent for saving a payment method.
func (s *PaymentMethodsService) SetupIntent(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/gateway/stripe/customers/setup-intent", data, oauth)
}

// List returns the customer's saved payment methods.
func (s *PaymentMethodsService) List(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/settings/gateway/stripe/customers/payment-methods/list", nil, oauth)
}

// Add saves a new payment method.
func (s *PaymentMethodsService) Add(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/gateway/stripe/customers/payment-methods/add", data, oauth)
}

// Delete removes a saved payment method.
func (s *PaymentMethodsService) Delete(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/gateway/stripe/customers/payment-methods/delete", data, oauth)
}

// SetDefault updates the default payment method.
func (s *PaymentMethodsService) SetDefault(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/gateway/stripe/customers/payment-methods/update-default", data, oauth)
}
