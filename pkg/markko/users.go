package markko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// UsersService wraps the customer account endpoints, including the
// wishlist.
type UsersService struct {
	client *Client
}

// Get returns the user identified by the per-call token.
func (s *UsersService) Get(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/user", nil, oauth)
}

// Register creates a new customer account.
func (s *UsersService) Register(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/customers/register", data, oauth)
}

// UpdateProfile updates the current user's profile.
func (s *UsersService) UpdateProfile(ctx context.Context, data any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/customers", data, oauth)
}

// Delete removes the current user's account.
func (s *UsersService) Delete(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, "/api/v1/customers", nil, oauth)
}

// EmailExistsInTeam checks whether a user with the email already exists
// in the tenant.
func (s *UsersService) EmailExistsInTeam(ctx context.Context, email string, oauth *auth.TokenRecord) (*Envelope, error) {
	v := url.Values{}
	v.Set("email", email)
	return s.client.get(ctx, "/api/v1/tenants/has-user-with-email", v, oauth)
}

// Wishlist returns the current user's wishlist.
func (s *UsersService) Wishlist(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/wishlist", nil, oauth)
}

// WishlistAdd adds a product to the wishlist.
func (s *UsersService) WishlistAdd(ctx context.Context, productID int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/wishlist/add/%d", productID), nil, oauth)
}

// WishlistRemove removes a product from the wishlist.
func (s *UsersService) WishlistRemove(ctx context.Context, productID int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/wishlist/remove/%d", productID), nil, oauth)
}
