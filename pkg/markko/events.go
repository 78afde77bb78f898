package markko

import (
	"context"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// EventsService wraps the vendor event endpoints.
type EventsService struct {
	client *Client
}

// List returns events.
func (s *EventsService) List(ctx context.Context, opts ListOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, "/api/v1/events", opts.values(), oauth)
}

// Get returns a single event by ID.
func (s *EventsService) Get(ctx context.Context, id int, opts GetOptions, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/events/%d", id), opts.values(), oauth)
}

// Save creates an event.
func (s *EventsService) Save(ctx context.Context, event any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.post(ctx, "/api/v1/events", event, oauth)
}

// Cancel cancels an event.
func (s *EventsService) Cancel(ctx context.Context, id int, params any, oauth *auth.TokenRecord) (*Envelope, error) {
	return s.client.patch(ctx, fmt.Sprintf("/api/v1/events/%d/cancel", id), params, oauth)
}
