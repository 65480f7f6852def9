package transport

import (
	"log/slog"

	"trafficalert/config"
	"trafficalert/internal/domain/constants"
	"trafficalert/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TransportParams holds dependencies for the ChannelTransport, injected by Fx
type TransportParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	// Only required for the pubsub provider.
	Publisher service.EventPublisher `optional:"true"`
}

// NewChannelTransport picks the transport named by transport.provider and applies rate limiting.
func NewChannelTransport(params TransportParams) (service.ChannelTransport, error) {
	cfg := params.Config.Transport
	logger := params.Logger.With(slog.String("component", "transport"))

	var transport service.ChannelTransport
	switch cfg.Provider {
	case constants.TransportProviderLog:
		transport = NewLogTransport(logger)

	case constants.TransportProviderPubSub:
		if params.Publisher == nil {
			return nil, errors.New("event publisher is required for pubsub transport")
		}
		transport = NewPubSubTransport(params.Publisher)

	default:
		return nil, errors.Errorf("unknown transport provider: %s", cfg.Provider)
	}

	logger.Info("Notification transport ready",
		slog.String("provider", cfg.Provider),
		slog.Float64("rate_per_second", cfg.RatePerSecond),
		slog.Int("burst", cfg.Burst),
	)

	return WithRateLimit(transport, cfg.RatePerSecond, cfg.Burst), nil
}
