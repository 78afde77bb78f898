package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// CharitiesService wraps the charity endpoints.
type CharitiesService struct {
	client *Client
}

// List returns charities.
func (s *CharitiesService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/charities", opts.values(), oauth)
}

// Get returns a single charity by ID.
func (s *CharitiesService) Get(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/charities/%d", id), opts.values(), oauth)
}

// GetBySlug returns a single charity by slug.
func (s *CharitiesService) GetBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/charities/slug/"+url.PathEscape(slug), opts.values(), oauth)
}

// Register registers a new charity.
func (s *CharitiesService) Register(ctx context.Context, charity any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/charities/register", charity, oauth)
}

// IsNameUnique checks whether a charity name is still available.
func (s *CharitiesService) IsNameUnique(ctx context.Context, name string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("name", name)
	return s.client.get(ctx, "/api/v1/charities/is-name-unique", v, oauth)
}
