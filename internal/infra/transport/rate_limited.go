package transport

import (
	"context"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/errors"

	"golang.org/x/time/rate"
)

// rateLimitedTransport paces sends through a token bucket shared by all callers.
type rateLimitedTransport struct {
	next    service.ChannelTransport
	limiter *rate.Limiter
}

// WithRateLimit wraps next; a non-positive rps returns next unchanged.
func WithRateLimit(next service.ChannelTransport, rps float64, burst int) service.ChannelTransport {
	if rps <= 0 {
		return next
	}

	return &rateLimitedTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), max(burst, 1)),
	}
}

func (t *rateLimitedTransport) Send(ctx context.Context, kind entity.ChannelKind, address, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return errors.Wrap(errors.Mark(err, domainerrors.ErrDeliveryFailed), "rate limiter")
	}

	return t.next.Send(ctx, kind, address, text)
}
