package markko

import (
	"context"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// AttributesService wraps the product attribute endpoints.
type AttributesService struct {
	client *Client
}

// List returns attributes.
func (s *AttributesService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/attributes", opts.values(), oauth)
}

// TagsService wraps the tag endpoints.
type TagsService struct {
	client *Client
}

// List returns tags.
func (s *TagsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/tags", opts.values(), oauth)
}

// CurrenciesService wraps the currency settings endpoints.
type CurrenciesService struct {
	client *Client
}

// List returns the tenant's currencies.
func (s *CurrenciesService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/settings/currencies", opts.values(), oauth)
}

// ReferenceValuesService wraps the reference value lookup endpoints.
type ReferenceValuesService struct {
	client *Client
}

// Lookup returns reference values for a category, e.g. "county".
func (s *ReferenceValuesService) Lookup(ctx context.Context, category string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("category", category)
	return s.client.get(ctx, "/api/v1/reference-values/lookup", v, oauth)
}

// CountriesByRegion returns countries grouped by region.
func (s *ReferenceValuesService) CountriesByRegion(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/reference-values/countries-by-region", nil, oauth)
}

// ContactsService wraps the contact form endpoints.
type ContactsService struct {
	client *Client
}

// Submit sends the marketplace contact form.
func (s *ContactsService) Submit(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/contact-form", data, oauth)
}

// SubmitToVendor sends the contact-seller form.
func (s *ContactsService) SubmitToVendor(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/contact-seller-form", data, oauth)
}

// SubmitServiceForm sends the contact-service form.
func (s *ContactsService) SubmitServiceForm(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/contact-service-form", data, oauth)
}
