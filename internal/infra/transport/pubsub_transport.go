package transport

import (
	"context"
	"time"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/errors"

	"github.com/google/uuid"
)

// pubsubTransport hands each notification to the outbound queue for an email/SMS gateway.
type pubsubTransport struct {
	publisher service.EventPublisher
	now       func() time.Time
}

// NewPubSubTransport creates a transport that publishes through publisher.
func NewPubSubTransport(publisher service.EventPublisher) service.ChannelTransport {
	return &pubsubTransport{publisher: publisher, now: time.Now}
}

func (t *pubsubTransport) Send(ctx context.Context, kind entity.ChannelKind, address, text string) error {
	event := &service.OutboundNotification{
		ID:        uuid.NewString(),
		Channel:   string(kind),
		Address:   address,
		Text:      text,
		CreatedAt: t.now().UTC(),
	}

	if err := t.publisher.PublishNotification(ctx, event); err != nil {
		return errors.Wrapf(errors.Mark(err, domainerrors.ErrDeliveryFailed), "publish %s notification", kind)
	}

	return nil
}
