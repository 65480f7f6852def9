// Package transport delivers rendered notifications to subscriber channels.
package transport

import (
	"context"
	"log/slog"

	"trafficalert/internal/domain/entity"
	"trafficalert/internal/domain/service"
)

// logTransport writes every notification to the service log instead of a real gateway.
type logTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates the reference transport.
func NewLogTransport(logger *slog.Logger) service.ChannelTransport {
	return &logTransport{logger: logger}
}

func (t *logTransport) Send(ctx context.Context, kind entity.ChannelKind, address, text string) error {
	t.logger.InfoContext(ctx, "sent to channel "+string(kind)+": "+text,
		slog.String("channel", string(kind)),
		slog.String("address", address),
	)

	return nil
}
