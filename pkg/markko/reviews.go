package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// ReviewsService wraps the product review endpoints.
type ReviewsService struct {
	client *Client
}

// List returns reviews.
func (s *ReviewsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/reviews", opts.values(), oauth)
}

// Create submits a review.
func (s *ReviewsService) Create(ctx context.Context, review any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/reviews", review, oauth)
}

// Update edits an existing review.
func (s *ReviewsService) Update(ctx context.Context, id int, review any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/reviews/%d", id), review, oauth)
}

// Delete removes a review.
func (s *ReviewsService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/reviews/%d", id), nil, oauth)
}
