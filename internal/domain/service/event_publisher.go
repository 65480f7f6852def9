package service

import (
	"context"
	"time"
)

// OutboundNotification is a rendered notification handed to the outbound queue
// for an email or SMS gateway to pick up
type OutboundNotification struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"` // "email" or "phone"
	Address   string    `json:"address"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotification publishes a rendered notification for an external gateway
	PublishNotification(ctx context.Context, event *OutboundNotification) error

	// Close releases any resources held by the publisher
	Close() error
}
