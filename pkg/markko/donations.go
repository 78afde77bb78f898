package markko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// DonationsService wraps the donation endpoints. These are app-scoped
// upstream, so the service takes no per-call token.
type DonationsService struct {
	client *Client
}

// List returns donations.
func (s *DonationsService) List(ctx context.Context, opts ListOptions) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/donations", opts.values(), nil)
}

// GetByNumber returns a donation by its reference number.
func (s *DonationsService) GetByNumber(ctx context.Context, number string) (*Envelope, error) {
	path := "/api/v1/donations/number/" + url.PathEscape(number)
	return s.client.get(ctx, path, nil, nil)
}

// Save processes a donation payment for a charity. Unlike the other
// services it unwraps the inner data object, matching the upstream
// contract for this endpoint.
func (s *DonationsService) Save(ctx context.Context, charityID string, data any) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/v1/charities/%s/donate", url.PathEscape(charityID))
	env, err := s.client.post(ctx, path, data, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
