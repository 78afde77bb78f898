package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// ShippingsService wraps the shipping zone and shipping service
// endpoints.
type ShippingsService struct {
	client *Client
}

// CountriesByRegion returns countries grouped by shipping region.
func (s *ShippingsService) CountriesByRegion(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/reference-values/countries-by-region", nil, oauth)
}

// Zones returns shipping zones.
func (s *ShippingsService) Zones(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/shipping/zones", opts.values(), oauth)
}

// Zone returns a single shipping zone by ID.
func (s *ShippingsService) Zone(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/shipping/zones/%d", id), opts.values(), oauth)
}

// CreateService creates a shipping service.
func (s *ShippingsService) CreateService(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/shipping/services", data, oauth)
}

// UpdateService updates a shipping service.
func (s *ShippingsService) UpdateService(ctx context.Context, id int, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/shipping/services/%d", id), data, oauth)
}

// DeleteService removes a shipping service.
func (s *ShippingsService) DeleteService(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/shipping/services/%d", id), nil, oauth)
}
