package markko

import (
	"context"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// AuthService handles end-user authentication.
type AuthService struct {
	client *Client
}

// Login performs the resource-owner password grant for the given user.
// The returned record is not cached by the client; the caller's session
// storage owns its lifecycle and may pass it back per call.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.TokenRecord, error) {
	return s.client.source.Login(ctx, email, password)
}

// SendEmailVerificationLink re-sends the verification email for the
// user identified by the per-call token.
func (s *AuthService) SendEmailVerificationLink(ctx context.Context, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/auth/email/verification-notification/", nil, oauth)
}
