package markko

import (
	"context"
	"net/url"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// MessagesService wraps the buyer-seller messaging endpoints. Channels
// are identified by opaque string IDs.
type MessagesService struct {
	client *Client
}

// MessagePage selects a page of channel history.
type MessagePage struct {
	Page     int
	Paginate int
}

// Channels returns the current user's message channels.
func (s *MessagesService) Channels(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/messaging", opts.values(), oauth)
}

// Channel marks a channel as viewed and returns it.
func (s *MessagesService) Channel(ctx context.Context, channelID string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/messaging/view/"+url.PathEscape(channelID), nil, oauth)
}

// Messages returns a page of messages for a channel.
func (s *MessagesService) Messages(ctx context.Context, channelID string, page MessagePage, oauth *auth.TokenRecord) (*Envelope, error) {
	opts := ListOptions{Page: page.Page, Paginate: page.Paginate}
	path := "/api/v1/messaging/" + url.PathEscape(channelID) + "/messages"
	return s.client.get(ctx, path, opts.values(), oauth)
}

// Send posts a message to a channel.
func (s *MessagesService) Send(ctx context.Context, channelID, body string, oauth *auth.TokenRecord) (*Envelope, error) {
	payload := map[string]string{"message": body}
	path := "/api/v1/messaging/" + url.PathEscape(channelID) + "/messages"
	return s.client.post(ctx, path, payload, oauth)
}

// Close closes a channel.
func (s *MessagesService) Close(ctx context.Context, channelID string, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, "/api/v1/messaging/close/"+url.PathEscape(channelID), nil, oauth)
}
