// Package app wires services and event handlers into a runnable application.
package app

import (
	"github.com/amirasaad/exchange/pkg/domain/events"
	"github.com/amirasaad/exchange/pkg/handler/conversion"
)

// setupEventBus registers all event handlers with the event bus.
func (a *App) setupEventBus() {
	a.Deps.EventBus.Register(
		events.EventTypeConversionRecorded,
		conversion.HandleRecorded(a.Deps.Logger),
	)
}
