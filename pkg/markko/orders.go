package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// OrdersService wraps the order endpoints, scoped to the calling
// customer.
type OrdersService struct {
	client *Client
}

// List returns the customer's orders.
func (s *OrdersService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/orders/customer", opts.values(), oauth)
}

// ListBookings returns the customer's booking orders.
func (s *OrdersService) ListBookings(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/booking-calendar/bookings", opts.values(), oauth)
}

// Get returns a single order by ID.
func (s *OrdersService) Get(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/orders/%d", id), nil, oauth)
}

// GetByNumber returns a customer's order by its order number.
func (s *OrdersService) GetByNumber(ctx context.Context, number string, oauth *auth.TokenRecord) (*Envelope, error) {
	path := "/api/v1/orders/customer/number/" + url.PathEscape(number)
	return s.client.get(ctx, path, nil, oauth)
}

// DownloadInvoice fetches the invoice document for an order.
func (s *OrdersService) DownloadInvoice(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/invoices/%d/download", id), nil, oauth)
}
