package usecase

import (
	"context"

	"trafficalert/internal/domain/entity"
)

// MessageFormatter renders a traffic message for a notification channel
type MessageFormatter interface {
	// Format is pure; it fails only with ErrFormat on a malformed timestamp.
	Format(message *entity.TrafficMessage) (string, error)
}

// ChannelOutcome is the result of one channel attempt
type ChannelOutcome struct {
	Channel entity.Channel
	Err     error
}

// DeliveryResult collects the per-channel outcomes for one subscriber
type DeliveryResult struct {
	Outcomes []ChannelOutcome
}

// Delivered counts successful channel attempts.
func (r DeliveryResult) Delivered() int {
	delivered := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err == nil {
			delivered++
		}
	}

	return delivered
}

// Failed counts failed channel attempts.
func (r DeliveryResult) Failed() int {
	return len(r.Outcomes) - r.Delivered()
}

// NotificationSender delivers rendered text to every channel of a subscriber
type NotificationSender interface {
	// Deliver attempts every channel; one channel failing never skips another.
	Deliver(ctx context.Context, subscriber *entity.Subscriber, text string) DeliveryResult
}
