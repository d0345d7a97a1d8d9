package service

import (
	"context"
	"time"
)

// Connection event types.
const (
	EventConnectionRequested = "connection.requested"
	EventConnectionAccepted  = "connection.accepted"
	EventConnectionRejected  = "connection.rejected"
)

// ConnectionEvent is emitted whenever a connection request changes state.
type ConnectionEvent struct {
	RequestID           string    `json:"request_id,omitempty"` // For distributed tracing
	Type                string    `json:"type"`
	ConnectionRequestID string    `json:"connection_request_id"`
	FromUserID          string    `json:"from_user_id"`
	ToUserID            string    `json:"to_user_id"`
	Status              string    `json:"status"`
	ConnectionID        string    `json:"connection_id,omitempty"` // Only on connection.accepted
	OccurredAt          time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConnectionEvent publishes a connection lifecycle event.
	PublishConnectionEvent(ctx context.Context, event *ConnectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
