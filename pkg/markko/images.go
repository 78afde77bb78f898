package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// ImagesService wraps the image endpoints.
type ImagesService struct {
	client *Client
}

// List returns the caller's images.
func (s *ImagesService) List(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/images", nil, oauth)
}

// Get returns image metadata by ID.
func (s *ImagesService) Get(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/images/%d", id), nil, oauth)
}

// Delete removes an image.
func (s *ImagesService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/images/%d", id), nil, oauth)
}

// DeleteMany removes multiple images by ID.
func (s *ImagesService) DeleteMany(ctx context.Context, ids []int, oauth *auth.TokenRecord) (*Envelope, error) {
	body := map[string][]int{"image_ids": ids}
	return s.client.del(ctx, "/api/v1/images", body, oauth)
}
