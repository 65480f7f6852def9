package impl

import (
	"context"
	"log/slog"
	"time"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/repository"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/errors"
	"trafficalert/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SubscriberServiceParams holds dependencies for the subscriber service, injected by Fx
type SubscriberServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SubscriberRepo repository.SubscriberRepository
	Classifier     service.GeoClassifier
	Logger         *slog.Logger
}

type subscriberService struct {
	txManager      repository.TransactionManager
	subscriberRepo repository.SubscriberRepository
	classifier     service.GeoClassifier
	logger         *slog.Logger
	now            func() time.Time
}

// NewSubscriberService creates a new subscriber service instance
func NewSubscriberService(params SubscriberServiceParams) usecase.SubscriberUsecase {
	return &subscriberService{
		txManager:      params.TxManager,
		subscriberRepo: params.SubscriberRepo,
		classifier:     params.Classifier,
		logger:         params.Logger.With(slog.String("component", "subscriber")),
		now:            time.Now,
	}
}

// Register derives the traffic area before anything is written, so a subscriber never exists without one.
func (s *subscriberService) Register(ctx context.Context, input *usecase.SubscriberInput) (*entity.Subscriber, error) {
	identity := entity.NewSubscriberIdentity(input.Email, input.Phone)
	if identity.IsZero() {
		return nil, domainerrors.ErrMissingContact
	}

	area, err := s.classify(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscriber ID")
	}

	now := s.now()
	subscriber := &entity.Subscriber{
		ID:          id,
		Email:       identity.Email,
		Phone:       identity.Phone,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		TrafficArea: area,
		LastSeenAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return nil, domainerrors.ErrSubscriberAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create subscriber")
	}

	s.logger.InfoContext(ctx, "Subscriber registered",
		slog.String("subscriber", identity.String()),
		slog.String("area", area),
	)

	return subscriber, nil
}

// UpdateLocation re-derives the area and writes it together with the coordinates.
func (s *subscriberService) UpdateLocation(ctx context.Context, input *usecase.SubscriberInput) (*entity.Subscriber, error) {
	identity := entity.NewSubscriberIdentity(input.Email, input.Phone)
	if identity.IsZero() {
		return nil, domainerrors.ErrMissingContact
	}

	area, err := s.classify(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	var updated *entity.Subscriber
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewSubscriberRepository()

		// Resolves the identity to one row before anything is written.
		if _, err := repo.FindByIdentity(ctx, identity); err != nil {
			return err
		}
		if err := repo.UpdateLocation(ctx, identity, input.Latitude, input.Longitude, area, s.now()); err != nil {
			return err
		}

		subscriber, err := repo.FindByIdentity(ctx, identity)
		if err != nil {
			return err
		}
		updated = subscriber

		return nil
	})
	if err != nil {
		return nil, mapIdentityError(err, "failed to update subscriber location")
	}

	s.logger.InfoContext(ctx, "Subscriber location updated",
		slog.String("subscriber", identity.String()),
		slog.String("area", area),
	)

	return updated, nil
}

// Unsubscribe removes the subscriber and returns the record as it was.
func (s *subscriberService) Unsubscribe(ctx context.Context, input *usecase.ContactInput) (*entity.Subscriber, error) {
	identity := entity.NewSubscriberIdentity(input.Email, input.Phone)
	if identity.IsZero() {
		return nil, domainerrors.ErrMissingContact
	}

	var removed *entity.Subscriber
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewSubscriberRepository()

		subscriber, err := repo.FindByIdentity(ctx, identity)
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, identity); err != nil {
			return err
		}
		removed = subscriber

		return nil
	})
	if err != nil {
		return nil, mapIdentityError(err, "failed to remove subscriber")
	}

	s.logger.InfoContext(ctx, "Subscriber removed", slog.String("subscriber", identity.String()))

	return removed, nil
}

// mapIdentityError turns repository lookup failures into API errors.
func mapIdentityError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrSubscriberNotFound):
		return domainerrors.ErrSubscriberNotFound
	case errors.Is(err, repository.ErrAmbiguousIdentity):
		return domainerrors.ErrIdentityConflict
	default:
		return errors.Wrap(err, message)
	}
}

func (s *subscriberService) classify(ctx context.Context, lat, lon int) (string, error) {
	area, err := s.classifier.Classify(ctx, lat, lon)
	if err == nil {
		return area, nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return "", err
	}

	return "", errors.Wrap(errors.Mark(err, domainerrors.ErrAreaLookupFailed), "failed to classify coordinates")
}
