package impl

import (
	"context"
	"errors"
	"testing"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	mockSvc "trafficalert/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationSender_Deliver(t *testing.T) {
	tests := []struct {
		name          string
		email         *string
		phone         *string
		setupMock     func(ctx context.Context, transport *mockSvc.MockChannelTransport)
		wantDelivered int
		wantFailed    int
	}{
		{
			name:  "email only",
			email: strPtr("a@example.se"),
			setupMock: func(ctx context.Context, transport *mockSvc.MockChannelTransport) {
				transport.EXPECT().Send(ctx, entity.ChannelEmail, "a@example.se", "hello").Return(nil)
			},
			wantDelivered: 1,
		},
		{
			name:  "phone fails email succeeds",
			email: strPtr("a@example.se"),
			phone: strPtr("+46701234567"),
			setupMock: func(ctx context.Context, transport *mockSvc.MockChannelTransport) {
				transport.EXPECT().Send(ctx, entity.ChannelEmail, "a@example.se", "hello").Return(nil)
				transport.EXPECT().Send(ctx, entity.ChannelPhone, "+46701234567", "hello").
					Return(errors.New("gateway timeout"))
			},
			wantDelivered: 1,
			wantFailed:    1,
		},
		{
			name:  "email failure does not skip phone",
			email: strPtr("a@example.se"),
			phone: strPtr("+46701234567"),
			setupMock: func(ctx context.Context, transport *mockSvc.MockChannelTransport) {
				transport.EXPECT().Send(ctx, entity.ChannelEmail, "a@example.se", "hello").
					Return(errors.New("mailbox full"))
				transport.EXPECT().Send(ctx, entity.ChannelPhone, "+46701234567", "hello").Return(nil)
			},
			wantDelivered: 1,
			wantFailed:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			transport := mockSvc.NewMockChannelTransport(t)
			tt.setupMock(ctx, transport)
			sender := NewNotificationSender(transport, createTestLogger())

			result := sender.Deliver(ctx, &entity.Subscriber{Email: tt.email, Phone: tt.phone}, "hello")

			assert.Equal(t, tt.wantDelivered, result.Delivered())
			assert.Equal(t, tt.wantFailed, result.Failed())
			for _, outcome := range result.Outcomes {
				if outcome.Err != nil {
					assert.ErrorIs(t, outcome.Err, domainerrors.ErrDeliveryFailed)
				}
			}
		})
	}
}

func TestNotificationSender_Deliver_KeepsExistingMark(t *testing.T) {
	ctx := context.Background()
	transport := mockSvc.NewMockChannelTransport(t)
	cause := errors.New("rejected")
	transport.EXPECT().Send(ctx, entity.ChannelPhone, "+46701234567", "hello").Return(cause)
	sender := NewNotificationSender(transport, createTestLogger())

	result := sender.Deliver(ctx, &entity.Subscriber{Phone: strPtr("+46701234567")}, "hello")

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, entity.Channel{Kind: entity.ChannelPhone, Address: "+46701234567"}, result.Outcomes[0].Channel)
	assert.ErrorIs(t, result.Outcomes[0].Err, cause)
	assert.ErrorIs(t, result.Outcomes[0].Err, domainerrors.ErrDeliveryFailed)
}
