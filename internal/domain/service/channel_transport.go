package service

import (
	"context"

	"trafficalert/internal/domain/entity"
)

// ChannelTransport delivers a rendered notification to a single channel address
type ChannelTransport interface {
	// Send delivers text to address. Failures wrap ErrDeliveryFailed.
	Send(ctx context.Context, kind entity.ChannelKind, address, text string) error
}
