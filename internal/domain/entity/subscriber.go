// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is a client that receives traffic notifications for one traffic area.
type Subscriber struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the subscriber.
	Email       *string   `json:"email"`        // Email handle; nil when the subscriber only registered a phone.
	Phone       *string   `json:"phone"`        // Phone handle; nil when the subscriber only registered an email.
	Latitude    int       `json:"latitude"`     // Integer degrees.
	Longitude   int       `json:"longitude"`    // Integer degrees.
	TrafficArea string    `json:"traffic_area"` // Derived from the coordinates at registration or location update.
	LastSeenAt  time.Time `json:"last_seen_at"` // Advanced on registration, touch and successful delivery.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Channel is one outbound address of a subscriber.
type Channel struct {
	Kind    ChannelKind
	Address string
}

// ChannelKind names a notification channel.
type ChannelKind string

const (
	ChannelEmail ChannelKind = "email"
	ChannelPhone ChannelKind = "phone"
)

// SubscriberIdentity is the contact-handle key of a subscriber.
// Store operations keyed by identity match either handle.
type SubscriberIdentity struct {
	Email *string
	Phone *string
}

// NewSubscriberIdentity normalises blank handles to nil.
func NewSubscriberIdentity(email, phone *string) SubscriberIdentity {
	return SubscriberIdentity{Email: normaliseHandle(email), Phone: normaliseHandle(phone)}
}

// IsZero reports whether neither handle is set.
func (id SubscriberIdentity) IsZero() bool {
	return id.Email == nil && id.Phone == nil
}

// String renders a stable key such as "email:a@b.se|phone:+4670".
func (id SubscriberIdentity) String() string {
	parts := make([]string, 0, 2)
	if id.Email != nil {
		parts = append(parts, "email:"+*id.Email)
	}
	if id.Phone != nil {
		parts = append(parts, "phone:"+*id.Phone)
	}

	return strings.Join(parts, "|")
}

// Identity returns the subscriber's contact-handle key.
func (s *Subscriber) Identity() SubscriberIdentity {
	return NewSubscriberIdentity(s.Email, s.Phone)
}

// Validate checks that at least one contact handle is present.
func (s *Subscriber) Validate() error {
	if s.Identity().IsZero() {
		return ErrMissingContact
	}

	return nil
}

// Channels lists the subscriber's configured channels, email first.
func (s *Subscriber) Channels() []Channel {
	id := s.Identity()
	channels := make([]Channel, 0, 2)
	if id.Email != nil {
		channels = append(channels, Channel{Kind: ChannelEmail, Address: *id.Email})
	}
	if id.Phone != nil {
		channels = append(channels, Channel{Kind: ChannelPhone, Address: *id.Phone})
	}

	return channels
}

// IdleSince returns how long the subscriber has been idle at the given instant.
func (s *Subscriber) IdleSince(at time.Time) time.Duration {
	return at.Sub(s.LastSeenAt)
}

func normaliseHandle(handle *string) *string {
	if handle == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*handle)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
