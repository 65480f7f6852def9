package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"trafficalert/config"
	"trafficalert/internal/domain/constants"
	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/service"
	mockSvc "trafficalert/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogTransport_Send(t *testing.T) {
	buf := &bytes.Buffer{}
	transport := NewLogTransport(slog.New(slog.NewTextHandler(buf, nil)))

	err := transport.Send(context.Background(), entity.ChannelPhone, "+46701234567", "Queue on E4")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sent to channel phone: Queue on E4")
	assert.Contains(t, buf.String(), "address=+46701234567")
}

func TestPubSubTransport_Send(t *testing.T) {
	ctx := context.Background()
	publisher := mockSvc.NewMockEventPublisher(t)

	var published *service.OutboundNotification
	publisher.EXPECT().PublishNotification(ctx, mock.AnythingOfType("*service.OutboundNotification")).
		Run(func(_ context.Context, event *service.OutboundNotification) {
			published = event
		}).
		Return(nil)

	err := NewPubSubTransport(publisher).Send(ctx, entity.ChannelEmail, "a@example.se", "Queue on E4")

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.NotEmpty(t, published.ID)
	assert.Equal(t, "email", published.Channel)
	assert.Equal(t, "a@example.se", published.Address)
	assert.Equal(t, "Queue on E4", published.Text)
	assert.False(t, published.CreatedAt.IsZero())
}

func TestPubSubTransport_Send_PublishFailure(t *testing.T) {
	ctx := context.Background()
	publisher := mockSvc.NewMockEventPublisher(t)
	cause := errors.New("topic not found")
	publisher.EXPECT().PublishNotification(ctx, mock.Anything).Return(cause)

	err := NewPubSubTransport(publisher).Send(ctx, entity.ChannelEmail, "a@example.se", "Queue on E4")

	assert.ErrorIs(t, err, domainerrors.ErrDeliveryFailed)
	assert.ErrorIs(t, err, cause)
}

func TestWithRateLimit(t *testing.T) {
	t.Run("disabled returns the transport unchanged", func(t *testing.T) {
		next := mockSvc.NewMockChannelTransport(t)

		assert.Same(t, next, WithRateLimit(next, 0, 5))
	})

	t.Run("passes sends through", func(t *testing.T) {
		ctx := context.Background()
		next := mockSvc.NewMockChannelTransport(t)
		next.EXPECT().Send(ctx, entity.ChannelEmail, "a@example.se", "hi").Return(nil).Times(3)

		limited := WithRateLimit(next, 1000, 3)
		for range 3 {
			require.NoError(t, limited.Send(ctx, entity.ChannelEmail, "a@example.se", "hi"))
		}
	})

	t.Run("cancelled context fails without sending", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		next := mockSvc.NewMockChannelTransport(t)

		err := WithRateLimit(next, 1, 1).Send(ctx, entity.ChannelEmail, "a@example.se", "hi")

		assert.ErrorIs(t, err, domainerrors.ErrDeliveryFailed)
		next.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewChannelTransport(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		publisher service.EventPublisher
		wantErr   bool
	}{
		{name: "log", provider: constants.TransportProviderLog},
		{name: "pubsub", provider: constants.TransportProviderPubSub, publisher: mockSvc.NewMockEventPublisher(t)},
		{name: "pubsub without publisher", provider: constants.TransportProviderPubSub, wantErr: true},
		{name: "unknown", provider: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport, err := NewChannelTransport(TransportParams{
				Config:    &config.Config{Transport: &config.TransportConfig{Provider: tt.provider, RatePerSecond: 5, Burst: 1}},
				Logger:    createTestLogger(),
				Publisher: tt.publisher,
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, transport)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, &rateLimitedTransport{}, transport)
		})
	}
}
