// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"trafficalert/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for subscriber persistence.
var (
	// ErrSubscriberNotFound is returned when no subscriber matches the given identity.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrDuplicateSubscriber is returned when the email or phone is already registered.
	ErrDuplicateSubscriber = errors.New("subscriber already exists")
	// ErrAmbiguousIdentity is returned when the email and phone belong to different subscribers.
	ErrAmbiguousIdentity = errors.New("email and phone belong to different subscribers")
)

// SubscriberRepository defines the interface for subscriber-related database operations.
// Operations keyed by identity match a row whose email or phone equals the corresponding handle.
type SubscriberRepository interface {
	// ListAll returns a full snapshot of every subscriber.
	ListAll(ctx context.Context) ([]*entity.Subscriber, error)

	// Remove deletes the subscriber. A missing identity is a no-op.
	Remove(ctx context.Context, identity entity.SubscriberIdentity) error

	// Create persists a new subscriber.
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// FindByIdentity retrieves the subscriber matching either handle.
	// Handles that match two different rows yield ErrAmbiguousIdentity.
	FindByIdentity(ctx context.Context, identity entity.SubscriberIdentity) (*entity.Subscriber, error)

	// UpdateLocation stores new coordinates together with their derived area and advances last-seen.
	UpdateLocation(ctx context.Context, identity entity.SubscriberIdentity, lat, lon int, area string, seenAt time.Time) error

	// Touch advances last-seen.
	Touch(ctx context.Context, identity entity.SubscriberIdentity, seenAt time.Time) error
}
