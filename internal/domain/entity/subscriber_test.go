package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubscriber_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   *string
		phone   *string
		wantErr bool
	}{
		{name: "email only", email: strPtr("a@example.se")},
		{name: "phone only", phone: strPtr("+46701234567")},
		{name: "both", email: strPtr("a@example.se"), phone: strPtr("+46701234567")},
		{name: "neither", wantErr: true},
		{name: "blank handles", email: strPtr("  "), phone: strPtr(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Subscriber{Email: tt.email, Phone: tt.phone}
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingContact)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubscriber_Channels(t *testing.T) {
	s := &Subscriber{Email: strPtr("a@example.se"), Phone: strPtr("+46701234567")}

	channels := s.Channels()

	require.Len(t, channels, 2)
	assert.Equal(t, Channel{Kind: ChannelEmail, Address: "a@example.se"}, channels[0])
	assert.Equal(t, Channel{Kind: ChannelPhone, Address: "+46701234567"}, channels[1])
}

func TestSubscriberIdentity_String(t *testing.T) {
	assert.Equal(t, "email:a@example.se|phone:123", NewSubscriberIdentity(strPtr("a@example.se"), strPtr("123")).String())
	assert.Equal(t, "phone:123", NewSubscriberIdentity(strPtr(" "), strPtr("123")).String())
	assert.True(t, NewSubscriberIdentity(nil, nil).IsZero())
}

func TestSubscriber_IdleSince(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Subscriber{LastSeenAt: now.Add(-30 * time.Hour)}

	assert.Equal(t, 30*time.Hour, s.IdleSince(now))
}
