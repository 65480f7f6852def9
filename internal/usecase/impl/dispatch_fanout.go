package impl

import (
	"context"
	"log/slog"
	"time"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/errors"
)

// cycleRun is the per-cycle state shared by area workers. Nothing in it is mutated after construction.
type cycleRun struct {
	service    *dispatchService
	cycleStart time.Time
	boundary   time.Time
	stats      *cycleStats
}

// areaFanOut tracks which subscribers of one area were already expired or touched this cycle.
// It is owned by a single area worker.
type areaFanOut struct {
	handled map[string]struct{}
	touched map[string]struct{}
}

// processArea fetches the area feed and fans every new message out, message-major.
func (c *cycleRun) processArea(ctx context.Context, area string, subscribers []*entity.Subscriber) {
	logger := c.service.logger.With(slog.String("area", area))

	messages, err := c.service.feed.FetchMessages(ctx, area)
	if err != nil {
		c.stats.areasSkipped.Add(1)
		if !errors.Is(err, domainerrors.ErrFetchFailed) {
			err = errors.Mark(err, domainerrors.ErrFetchFailed)
		}
		logger.WarnContext(ctx, "[Dispatch] Feed fetch failed, skipping area this cycle",
			slog.Int("subscribers", len(subscribers)),
			slog.Any("error", err),
		)

		return
	}
	c.stats.messagesSeen.Add(int64(len(messages)))

	fanOut := &areaFanOut{
		handled: make(map[string]struct{}, len(subscribers)),
		touched: make(map[string]struct{}, len(subscribers)),
	}

	for _, message := range messages {
		isNew, err := message.IsNewerThan(c.boundary)
		if err != nil {
			c.stats.malformedMessages.Add(1)
			logger.WarnContext(ctx, "[Dispatch] Message timestamp unparsable, treating as not new",
				slog.Int64("message_id", message.ID),
				slog.String("created_date", message.CreatedDate),
				slog.Any("error", err),
			)

			continue
		}
		if !isNew {
			continue
		}

		c.stats.newMessages.Add(1)
		c.fanOut(ctx, logger, fanOut, message, subscribers)
	}
}

// fanOut expires or notifies each subscriber for one new message.
func (c *cycleRun) fanOut(ctx context.Context, logger *slog.Logger, fanOut *areaFanOut, message *entity.TrafficMessage, subscribers []*entity.Subscriber) {
	text, formatErr := c.service.formatter.Format(message)

	for _, subscriber := range subscribers {
		identity := subscriber.Identity()
		key := identity.String()

		if _, done := fanOut.handled[key]; done {
			continue
		}

		if idle := subscriber.IdleSince(c.cycleStart); idle > c.service.expiryThreshold {
			fanOut.handled[key] = struct{}{}
			c.expire(ctx, logger, subscriber, idle)

			continue
		}

		if formatErr != nil {
			c.stats.formatFailures.Add(1)
			logger.WarnContext(ctx, "[Dispatch] Message formatting failed, skipping subscriber",
				slog.Int64("message_id", message.ID),
				slog.String("subscriber", key),
				slog.Any("error", formatErr),
			)

			continue
		}

		result := c.service.sender.Deliver(ctx, subscriber, text)
		c.stats.deliveries.Add(int64(result.Delivered()))
		c.stats.deliveryFailures.Add(int64(result.Failed()))
		if result.Delivered() == 0 {
			continue
		}

		c.stats.notified.Add(1)
		if _, done := fanOut.touched[key]; !done {
			fanOut.touched[key] = struct{}{}
			c.touch(ctx, logger, subscriber)
		}
	}
}

// expire removes a stale subscriber. A failed removal leaves it for the next cycle to re-evaluate.
func (c *cycleRun) expire(ctx context.Context, logger *slog.Logger, subscriber *entity.Subscriber, idle time.Duration) {
	key := subscriber.Identity().String()

	if err := c.service.subscriberRepo.Remove(ctx, subscriber.Identity()); err != nil {
		c.stats.removeFailures.Add(1)
		logger.WarnContext(ctx, "[Dispatch] Failed to remove expired subscriber",
			slog.String("subscriber", key),
			slog.Duration("idle", idle),
			slog.Any("error", errors.Mark(err, domainerrors.ErrRemoveFailed)),
		)

		return
	}

	c.stats.expired.Add(1)
	logger.InfoContext(ctx, "[Dispatch] Expired idle subscriber",
		slog.String("subscriber", key),
		slog.Duration("idle", idle),
	)
}

func (c *cycleRun) touch(ctx context.Context, logger *slog.Logger, subscriber *entity.Subscriber) {
	if err := c.service.subscriberRepo.Touch(ctx, subscriber.Identity(), c.cycleStart); err != nil {
		c.stats.touchFailures.Add(1)
		logger.WarnContext(ctx, "[Dispatch] Failed to advance subscriber last-seen",
			slog.String("subscriber", subscriber.Identity().String()),
			slog.Any("error", errors.Mark(err, domainerrors.ErrTouchFailed)),
		)
	}
}
