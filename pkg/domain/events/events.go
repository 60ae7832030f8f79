// Package events defines the domain events emitted by the exchange services.
package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies an event on the bus and in serialized envelopes.
type EventType string

const (
	EventTypeConversionRecorded EventType = "Conversion.Recorded"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// ConversionRecorded is emitted after a conversion has been stored in a user's history.
type ConversionRecorded struct {
	ID                  uuid.UUID `json:"id"`
	ConversionID        int64     `json:"conversion_id"`
	UserID              uuid.UUID `json:"user_id"`
	Username            string    `json:"username"`
	OriginCurrency      string    `json:"origin_currency"`
	DestinationCurrency string    `json:"destination_currency"`
	OriginAmount        float64   `json:"origin_amount"`
	DestinationAmount   float64   `json:"destination_amount"`
	Rate                float64   `json:"rate"`
	ConversionTime      time.Time `json:"conversion_time"`
	Timestamp           time.Time `json:"timestamp"`
}

func (e ConversionRecorded) Type() string { return string(EventTypeConversionRecorded) }

// EventTypes builds an empty event for a serialized type name.
var EventTypes = map[EventType]func() Event{
	EventTypeConversionRecorded: func() Event { return &ConversionRecorded{} },
}
