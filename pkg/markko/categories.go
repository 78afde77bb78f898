package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// CategoriesService wraps the product category endpoints.
type CategoriesService struct {
	client *Client
}

// List returns categories.
func (s *CategoriesService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/categories", opts.values(), oauth)
}

// ListNested returns the category tree.
func (s *CategoriesService) ListNested(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/categories/nested", opts.values(), oauth)
}

// Get returns a single category by ID.
func (s *CategoriesService) Get(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/categories/%d", id), opts.values(), oauth)
}

// GetBySlug returns a single category by slug.
func (s *CategoriesService) GetBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/categories/slug/"+url.PathEscape(slug), opts.values(), oauth)
}
