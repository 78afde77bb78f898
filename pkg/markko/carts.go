package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// CartsService wraps the shopping-cart endpoints. The upstream cart is
// keyed to the calling user, so most methods are used with a per-call
// token.
type CartsService struct {
	client *Client
}

// CartItemParams identify a product line in the cart.
type CartItemParams struct {
	ProductID int `json:"product_id"`
	VariantID int `json:"variant_id,omitempty"`
	Quantity  int `json:"quantity,omitempty"`
}

// Get returns the current cart.
func (s *CartsService) Get(ctx context.Context, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/cart", opts.values(), oauth)
}

// GetByID returns a specific cart by its identifier.
func (s *CartsService) GetByID(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/cart/%d", id), opts.values(), oauth)
}

// Add adds a product to the cart.
func (s *CartsService) Add(ctx context.Context, params CartItemParams, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/cart/add/%d", params.ProductID)
	return s.client.post(ctx, path, params, oauth)
}

// UpdateQuantity changes the quantity of a cart line.
func (s *CartsService) UpdateQuantity(ctx context.Context, params CartItemParams, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/cart/update-quantity/%d", params.ProductID)
	return s.client.patch(ctx, path, params, oauth)
}

// Remove removes a product from the cart.
func (s *CartsService) Remove(ctx context.Context, params CartItemParams, oauth *auth.TokenRecord) (*Envelope, error) {
	path := fmt.Sprintf("/api/v1/cart/remove/%d", params.ProductID)
	return s.client.del(ctx, path, params, oauth)
}

// Delete clears the whole cart.
func (s *CartsService) Delete(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, "/api/v1/cart", nil, oauth)
}

// ApplyCoupon applies a coupon code to the cart.
func (s *CartsService) ApplyCoupon(ctx context.Context, code string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/cart/apply-coupon/"+url.PathEscape(code), nil, oauth)
}

// ListPromotions returns promotions that are active today: valid_from
// on or before and expiry on or after the current date.
func (s *CartsService) ListPromotions(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	today := s.client.nowFunc().UTC().Format("2006-01-02")
	v := opts.values()
	v.Set("valid_from", today+",<=")
	v.Set("expiry", today+",>=")
	v.Set("active", "1")
	return s.client.get(ctx, "/api/v1/promotions", v, oauth)
}

// ApplyPromotion applies a promotion to the cart.
func (s *CartsService) ApplyPromotion(ctx context.Context, promotionID int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/cart/apply-promotion/%d", promotionID), nil, oauth)
}

// Share creates a shareable code for the cart.
func (s *CartsService) Share(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/cart/share", nil, oauth)
}

// GetShared loads a cart shared under the given code.
func (s *CartsService) GetShared(ctx context.Context, code string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/cart/share/"+url.PathEscape(code), nil, oauth)
}

// EmailShareCode emails the cart share code to the given address.
func (s *CartsService) EmailShareCode(ctx context.Context, email string, oauth *auth.TokenRecord) (*Envelope, error) {
	body := map[string]string{"email": email}
	return s.client.post(ctx, "/api/v1/cart/share", body, oauth)
}

// MarkAsGift flags the cart as a gift order.
func (s *CartsService) MarkAsGift(ctx context.Context, isGift bool, oauth *auth.TokenRecord) (*Envelope, error) {
	body := map[string]bool{"is_gift": isGift}
	return s.client.patch(ctx, "/api/v1/cart/is-gift/", body, oauth)
}
