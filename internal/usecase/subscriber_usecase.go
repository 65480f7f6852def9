package usecase

import (
	"context"

	"trafficalert/internal/domain/entity"
)

// SubscriberInput carries registration and location update data
type SubscriberInput struct {
	Email     *string
	Phone     *string
	Latitude  int
	Longitude int
}

// ContactInput identifies a subscriber by email and/or phone
type ContactInput struct {
	Email *string
	Phone *string
}

// SubscriberUsecase defines the registration use cases
type SubscriberUsecase interface {
	// Register classifies the coordinates and creates the subscriber.
	Register(ctx context.Context, input *SubscriberInput) (*entity.Subscriber, error)

	// UpdateLocation re-derives the area synchronously and stores it with the new coordinates.
	UpdateLocation(ctx context.Context, input *SubscriberInput) (*entity.Subscriber, error)

	// Unsubscribe removes the subscriber and returns the removed record.
	Unsubscribe(ctx context.Context, input *ContactInput) (*entity.Subscriber, error)
}
