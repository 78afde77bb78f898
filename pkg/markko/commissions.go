package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// CommissionsService wraps the commission group settings endpoints.
type CommissionsService struct {
	client *Client
}

// List returns commission groups.
func (s *CommissionsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/settings/commission-groups", opts.values(), oauth)
}

// Get returns a commission group by ID.
func (s *CommissionsService) Get(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/settings/commission-groups/%d", id), opts.values(), oauth)
}

// Create creates a commission group.
func (s *CommissionsService) Create(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/settings/commission-groups", data, oauth)
}

// Update updates a commission group.
func (s *CommissionsService) Update(ctx context.Context, id int, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/settings/commission-groups/%d", id), data, oauth)
}

// Delete removes a commission group.
func (s *CommissionsService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/settings/commission-groups/%d", id), nil, oauth)
}
