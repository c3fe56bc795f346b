// Package event defines all events that can be published by the application.
// Events represent state changes and are consumed by the presentation layer.
package event

// Event is the base interface for all events.
// Events are published by the application layer and consumed by subscribers.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}
