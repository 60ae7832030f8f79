package eventbus

import (
	"context"

	"github.com/amirasaad/exchange/pkg/domain/events"
)

// HandlerFunc handles a single event. Returned errors are logged by the bus.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus publishes domain events and dispatches them to registered handlers.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}
