package impl

import (
	"context"
	"log/slog"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/errors"
	"trafficalert/internal/usecase"
)

type notificationSender struct {
	transport service.ChannelTransport
	logger    *slog.Logger
}

// NewNotificationSender creates a sender that fans a text out over every subscriber channel.
func NewNotificationSender(transport service.ChannelTransport, logger *slog.Logger) usecase.NotificationSender {
	return &notificationSender{
		transport: transport,
		logger:    logger.With(slog.String("component", "sender")),
	}
}

func (s *notificationSender) Deliver(ctx context.Context, subscriber *entity.Subscriber, text string) usecase.DeliveryResult {
	channels := subscriber.Channels()
	result := usecase.DeliveryResult{Outcomes: make([]usecase.ChannelOutcome, 0, len(channels))}

	for _, channel := range channels {
		err := s.transport.Send(ctx, channel.Kind, channel.Address, text)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrDeliveryFailed) {
				err = errors.Mark(err, domainerrors.ErrDeliveryFailed)
			}
			s.logger.WarnContext(ctx, "[Dispatch] Channel delivery failed",
				slog.String("subscriber", subscriber.Identity().String()),
				slog.String("channel", string(channel.Kind)),
				slog.Any("error", err),
			)
		}
		result.Outcomes = append(result.Outcomes, usecase.ChannelOutcome{Channel: channel, Err: err})
	}

	return result
}
