package dupr

import "context"

// Event endpoint paths.
const (
	PathEventSearch   = "/event/{version}/search"
	PathEvent         = "/event/{version}/{eventId}"
	PathEventRegister = "/event/{version}/{eventId}/register"
)

// EventsAPI finds events and registers for them.
type EventsAPI struct {
	client *Client
}

// SearchEvents searches events by name, club and status.
func (a *EventsAPI) SearchEvents(ctx context.Context, search EventSearch, opts ...CallOption) (Result, error) {
	search.Limit = limitOrDefault(search.Limit)
	return a.client.Post(ctx, PathEventSearch, search, opts...)
}

// GetEvent fetches one event.
func (a *EventsAPI) GetEvent(ctx context.Context, eventID int64, opts ...CallOption) (Result, error) {
	return a.client.Get(ctx, expand(PathEvent, "eventId", itoa64(eventID)), nil, opts...)
}

// RegisterForEvent submits a registration, e.g. the chosen bracket and partner.
func (a *EventsAPI) RegisterForEvent(ctx context.Context, eventID int64, registration any, opts ...CallOption) (Result, error) {
	return a.client.Put(ctx, expand(PathEventRegister, "eventId", itoa64(eventID)), registration, opts...)
}
