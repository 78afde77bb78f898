package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// VendorsService wraps the vendor endpoints.
type VendorsService struct {
	client *Client
}

// List returns vendors.
func (s *VendorsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/vendors", opts.values(), oauth)
}

// ListByPostcode returns vendors near the given postcode.
func (s *VendorsService) ListByPostcode(ctx context.Context, postcode string, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	path := "/api/v1/vendors/postcode/" + url.PathEscape(postcode)
	return s.client.get(ctx, path, opts.values(), oauth)
}

// Get returns a single vendor by ID.
func (s *VendorsService) Get(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/vendors/%d", id), opts.values(), oauth)
}

// GetBySlug returns a single vendor by slug.
func (s *VendorsService) GetBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/vendors/slug/"+url.PathEscape(slug), opts.values(), oauth)
}

// Register registers a new vendor.
func (s *VendorsService) Register(ctx context.Context, vendor any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/vendors/register", vendor, oauth)
}

// Update updates a vendor.
func (s *VendorsService) Update(ctx context.Context, id int, vendor any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/vendors/%d", id), vendor, oauth)
}

// Delete deletes a vendor.
func (s *VendorsService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/vendors/%d", id), nil, oauth)
}

// Follow subscribes the current user to a vendor.
func (s *VendorsService) Follow(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/vendors/%d/follow", id), nil, oauth)
}

// Unfollow unsubscribes the current user from a vendor.
func (s *VendorsService) Unfollow(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/vendors/%d/unfollow", id), nil, oauth)
}

// IsStoreNameUnique checks whether a store name is still available.
func (s *VendorsService) IsStoreNameUnique(ctx context.Context, name string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("name", name)
	return s.client.get(ctx, "/api/v1/vendors/is-store-name-unique", v, oauth)
}
