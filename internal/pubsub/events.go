// Package pubsub provides a small generic publish/subscribe broker used to
// observe registry changes without coupling the registry to its observers.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened to the publishing component.
type EventType string

const (
	IngestedEvent EventType = "ingested"
	ResetEvent    EventType = "reset"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
