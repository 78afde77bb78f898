package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// FilesService wraps the file attachment endpoints.
type FilesService struct {
	client *Client
}

// List returns the caller's files.
func (s *FilesService) List(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/files", nil, oauth)
}

// Get returns file metadata by ID.
func (s *FilesService) Get(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/files/%d", id), nil, oauth)
}

// Register records an uploaded file against its model.
func (s *FilesService) Register(ctx context.Context, payload any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/files/register", payload, oauth)
}

// Update updates file metadata.
func (s *FilesService) Update(ctx context.Context, id int, payload any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/files/%d", id), payload, oauth)
}

// Delete removes a file.
func (s *FilesService) Delete(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.del(ctx, fmt.Sprintf("/api/v1/files/%d", id), nil, oauth)
}

// Download fetches the file content reference.
func (s *FilesService) Download(ctx context.Context, id int, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/files/%d/download", id), nil, oauth)
}
