package markko

import (
	"context"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// SpecificationsService wraps the product specification endpoints.
type SpecificationsService struct {
	client *Client
}

// List returns specifications.
func (s *SpecificationsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/specifications", opts.values(), oauth)
}

// GetByCode returns a specification by its code.
func (s *SpecificationsService) GetByCode(ctx context.Context, code string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/specifications/code/"+url.PathEscape(code), opts.values(), oauth)
}

// SpecificationGroupsService wraps the specification group endpoints.
type SpecificationGroupsService struct {
	client *Client
}

// List returns specification groups.
func (s *SpecificationGroupsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/specification-groups", opts.values(), oauth)
}

// Get returns a specification group by ID.
func (s *SpecificationGroupsService) Get(ctx context.Context, id string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/specification-groups/"+url.PathEscape(id), opts.values(), oauth)
}
