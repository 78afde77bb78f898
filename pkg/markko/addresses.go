package markko

import (
	"context"
	"net/url"
	"strconv"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// AddressesService wraps the address book and postcode lookup
// endpoints.
type AddressesService struct {
	client *Client
}

// NearbyOptions filter the nearby-model search.
type NearbyOptions struct {
	Postcode string
	Model    string
	Radius   int
}

func (o NearbyOptions) values() url.Values {
	v := url.Values{}
	if o.Postcode != "" {
		v.Set("postcode", o.Postcode)
	}
	if o.Model != "" {
		v.Set("model", o.Model)
	}
	if o.Radius > 0 {
		v.Set("radius", strconv.Itoa(o.Radius))
	}
	return v
}

// Create adds an address to the current user's address book.
func (s *AddressesService) Create(ctx context.Context, address any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/address", address, oauth)
}

// Update updates an address.
func (s *AddressesService) Update(ctx context.Context, id string, address any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/address/"+url.PathEscape(id), address, oauth)
}

// Delete removes an address.
func (s *AddressesService) Delete(ctx context.Context, id string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, "/api/v1/address/"+url.PathEscape(id), nil, oauth)
}

// SetDefault marks an address as the default.
func (s *AddressesService) SetDefault(ctx context.Context, id string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/address/"+url.PathEscape(id)+"/make-default", nil, oauth)
}

// FindByPostcode returns addresses for a postcode.
func (s *AddressesService) FindByPostcode(ctx context.Context, postcode string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("postcode", postcode)
	return s.client.get(ctx, "/api/v1/postcode/lookup", v, oauth)
}

// Lookup resolves a free-text address search.
func (s *AddressesService) Lookup(ctx context.Context, search string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("search", search)
	return s.client.get(ctx, "/api/v1/postcode/lookup", v, oauth)
}

// Nearby returns models of the given type near a postcode.
func (s *AddressesService) Nearby(ctx context.Context, opts NearbyOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/postcode/nearby", opts.values(), oauth)
}
