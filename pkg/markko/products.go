package markko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// ProductsService wraps the product catalogue endpoints.
type ProductsService struct {
	client *Client
}

// ProductFilterOptions are the advanced filter parameters. The upstream
// filter endpoint expects the page size under "mpe_paginate".
type ProductFilterOptions struct {
	ListOptions
	CategoryID int
	VendorID   int
	PriceMin   string
	PriceMax   string
}

func (o ProductFilterOptions) values() url.Values {
	v := o.ListOptions.values()
	// The filter endpoint names its page-size parameter differently.
	if p := v.Get("paginate"); p != "" {
		v.Del("paginate")
		v.Set("mpe_paginate", p)
	}
	if o.CategoryID > 0 {
		v.Set("category_id", strconv.Itoa(o.CategoryID))
	}
	if o.VendorID > 0 {
		v.Set("vendor_id", strconv.Itoa(o.VendorID))
	}
	if o.PriceMin != "" {
		v.Set("price_min", o.PriceMin)
	}
	if o.PriceMax != "" {
		v.Set("price_max", o.PriceMax)
	}
	return v
}

// List returns products across all vendors.
func (s *ProductsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/products", opts.values(), oauth)
}

// ListFiltered returns products matching advanced filter criteria.
func (s *ProductsService) ListFiltered(ctx context.Context, opts ProductFilterOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/products/filter", opts.values(), oauth)
}

// Latest returns the most recently added products. A non-positive count
// defaults to 3.
func (s *ProductsService) Latest(ctx context.Context, count int, oauth *auth.TokenRecord) (*Envelope, error) {
	if count <= 0 {
		count = 3
	}
	opts := ListOptions{Sort: "created_at,desc", Paginate: count, Page: 1}
	return s.client.get(ctx, "/api/v1/products", opts.values(), oauth)
}

// Count returns the total number of products across all vendors.
func (s *ProductsService) Count(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("sort", "created_at,desc")
	return s.client.get(ctx, "/api/v1/products/count", v, oauth)
}

// Get returns a single product by vendor and product slug.
func (s *ProductsService) Get(ctx context.Context, vendorSlug, productSlug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/vendor/%s/product/%s", url.PathEscape(vendorSlug), url.PathEscape(productSlug))
	return s.client.get(ctx, path, opts.values(), oauth)
}

// GetByID returns a single product by ID.
func (s *ProductsService) GetByID(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/products/%d", id), opts.values(), oauth)
}

// GetBySlug returns a single product by slug.
func (s *ProductsService) GetBySlug(ctx context.Context, slug string, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/products/slug/"+url.PathEscape(slug), opts.values(), oauth)
}

// Create creates a product. The body is marketplace-defined; pass a
// map or struct matching the upstream product shape.
func (s *ProductsService) Create(ctx context.Context, product any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/products", product, oauth)
}

// Update updates an existing product.
func (s *ProductsService) Update(ctx context.Context, id int, product any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d", id), product, oauth)
}

// Delete deletes a product.
func (s *ProductsService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/products/%d", id), nil, oauth)
}

// DeleteMany deletes multiple products by ID.
func (s *ProductsService) DeleteMany(ctx context.Context, ids []int, oauth *auth.TokenRecord) (*Envelope, error) {
	body := map[string][]int{"product_ids": ids}
	return s.client.del(ctx, "/api/v1/products/", body, oauth)
}

// Approve approves a product.
func (s *ProductsService) Approve(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/approve", id), struct{}{}, oauth)
}

// ApproveAll approves all products matching params.
func (s *ProductsService) ApproveAll(ctx context.Context, params any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/products/approve", params, oauth)
}

// Reject rejects a product.
func (s *ProductsService) Reject(ctx context.Context, id int, params any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/reject", id), params, oauth)
}

// RejectAll rejects all products matching params.
func (s *ProductsService) RejectAll(ctx context.Context, params any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/products/reject", params, oauth)
}

// Variants lists the variants of a product.
func (s *ProductsService) Variants(ctx context.Context, productID int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/product/%d/variants", productID), nil, oauth)
}

// VariantLookup resolves a variant by its option code, e.g. "1.4-2.12".
func (s *ProductsService) VariantLookup(ctx context.Context, productID int, code string, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/product/%d/variants/lookup/%s", productID, url.PathEscape(code))
	return s.client.get(ctx, path, nil, oauth)
}

// SaveVariant creates or updates a product variant.
func (s *ProductsService) SaveVariant(ctx context.Context, productID, variantID int, variant any, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/product/%d/variants/%d", productID, variantID)
	return s.client.patch(ctx, path, variant, oauth)
}

// Options lists the options of a product with their values.
func (s *ProductsService) Options(ctx context.Context, productID int, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("with", "values")
	return s.client.get(ctx, fmt.Sprintf("/api/v1/product/%d/options", productID), v, oauth)
}

// AddUpSell attaches an up-sell product.
func (s *ProductsService) AddUpSell(ctx context.Context, productID, upsellID int, upsell any, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/products/%d/up-sells/%d/add", productID, upsellID)
	return s.client.post(ctx, path, upsell, oauth)
}

// AddCrossSell attaches a cross-sell product with its discount.
func (s *ProductsService) AddCrossSell(ctx context.Context, productID, upsellID int, upsell any, discount float64, isPercent bool, oauth *auth.TokenRecord) (*Envelope, error) {
	body := map[string]any{
		"upsell":     upsell,
		"discount":   discount,
		"is_percent": isPercent,
	}
	path := fmt.Sprintf("/api/v1/products/%d/cross-sells/%d/add", productID, upsellID)
	return s.client.post(ctx, path, body, oauth)
}

// RemoveUpSell detaches an up-sell product.
func (s *ProductsService) RemoveUpSell(ctx context.Context, productID, upsellID int, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/products/%d/up-sells/%d/remove", productID, upsellID)
	return s.client.del(ctx, path, nil, oauth)
}

// RemoveCrossSell detaches a cross-sell product.
func (s *ProductsService) RemoveCrossSell(ctx context.Context, productID, upsellID int, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/products/%d/cross-sells/%d/remove", productID, upsellID)
	return s.client.del(ctx, path, nil, oauth)
}

// ReorderUpSells reorders the up-sell list.
func (s *ProductsService) ReorderUpSells(ctx context.Context, productID int, orderedIDs []int, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/products/%d/up-sells/reorder", productID)
	return s.client.patch(ctx, path, orderedIDs, oauth)
}

// ReorderCrossSells reorders the cross-sell list.
func (s *ProductsService) ReorderCrossSells(ctx context.Context, productID int, orderedIDs []int, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/products/%d/cross-sells/reorder", productID)
	return s.client.patch(ctx, path, orderedIDs, oauth)
}

// EnableUpSells enables up-sells for a product.
func (s *ProductsService) EnableUpSells(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/up-sells/enable", id), struct{}{}, oauth)
}

// DisableUpSells disables up-sells for a product.
func (s *ProductsService) DisableUpSells(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/up-sells/disable", id), struct{}{}, oauth)
}

// EnableCrossSells enables cross-sells for a product.
func (s *ProductsService) EnableCrossSells(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/cross-sells/enable", id), struct{}{}, oauth)
}

// DisableCrossSells disables cross-sells for a product.
func (s *ProductsService) DisableCrossSells(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/products/%d/cross-sells/disable", id), struct{}{}, oauth)
}

// SyncToGoogleMarketplace pushes the catalogue to the Google integration.
func (s *ProductsService) SyncToGoogleMarketplace(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/integrations/google/push", nil, oauth)
}
