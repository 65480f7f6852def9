package service

import (
	"context"

	"trafficalert/internal/domain/entity"
)

// FeedSource defines the interface for the upstream traffic message feed
type FeedSource interface {
	// FetchMessages returns the messages currently active for the area.
	// An empty slice means there are none; any failure wraps ErrFetchFailed instead.
	FetchMessages(ctx context.Context, area string) ([]*entity.TrafficMessage, error)
}
