// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/repository"
	"trafficalert/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

// ListAll returns every subscriber in one read so callers group from a consistent snapshot.
func (repo *subscriberRepository) ListAll(ctx context.Context) ([]*entity.Subscriber, error) {
	var subscriberModels []*model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Order("traffic_area, created_at").
		Find(&subscriberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, toSubscriberDomain(subscriberM))
	}

	return subscribers, nil
}

// Remove deletes the subscriber matching the identity; zero affected rows is not an error.
func (repo *subscriberRepository) Remove(ctx context.Context, identity entity.SubscriberIdentity) error {
	query, args := identityCondition(identity)
	if query == "" {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Delete(&model.SubscriberModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove subscriber")
	}

	return nil
}

// Create persists a new subscriber.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscriber information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	subscriber.ID = subscriberM.ID
	subscriber.CreatedAt = subscriberM.CreatedAt
	subscriber.UpdatedAt = subscriberM.UpdatedAt

	return nil
}

// FindByIdentity retrieves the subscriber matching either handle.
func (repo *subscriberRepository) FindByIdentity(ctx context.Context, identity entity.SubscriberIdentity) (*entity.Subscriber, error) {
	query, args := identityCondition(identity)
	if query == "" {
		return nil, repository.ErrSubscriberNotFound
	}

	// Two rows are enough to tell a unique match from a split one.
	var subscriberMs []model.SubscriberModel
	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Limit(2).
		Find(&subscriberMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriber")
	}

	return resolveIdentityMatch(subscriberMs)
}

// resolveIdentityMatch accepts exactly one row; email and phone pointing at different rows is rejected.
func resolveIdentityMatch(matches []model.SubscriberModel) (*entity.Subscriber, error) {
	switch len(matches) {
	case 0:
		return nil, repository.ErrSubscriberNotFound
	case 1:
		return toSubscriberDomain(&matches[0]), nil
	default:
		return nil, repository.ErrAmbiguousIdentity
	}
}

// UpdateLocation writes the coordinates and their area in one statement so the pair never diverges.
func (repo *subscriberRepository) UpdateLocation(ctx context.Context, identity entity.SubscriberIdentity, lat, lon int, area string, seenAt time.Time) error {
	return repo.updates(ctx, identity, map[string]any{
		"latitude":     lat,
		"longitude":    lon,
		"traffic_area": area,
		"last_seen_at": seenAt,
	}, "failed to update subscriber location")
}

// Touch advances last-seen.
func (repo *subscriberRepository) Touch(ctx context.Context, identity entity.SubscriberIdentity, seenAt time.Time) error {
	return repo.updates(ctx, identity, map[string]any{
		"last_seen_at": seenAt,
	}, "failed to touch subscriber")
}

func (repo *subscriberRepository) updates(ctx context.Context, identity entity.SubscriberIdentity, values map[string]any, failure string) error {
	query, args := identityCondition(identity)
	if query == "" {
		return repository.ErrSubscriberNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where(query, args...).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, failure)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// identityCondition builds "email = ? OR phone = ?" from whichever handles are set.
func identityCondition(identity entity.SubscriberIdentity) (string, []any) {
	switch {
	case identity.Email != nil && identity.Phone != nil:
		return "email = ? OR phone = ?", []any{*identity.Email, *identity.Phone}
	case identity.Email != nil:
		return "email = ?", []any{*identity.Email}
	case identity.Phone != nil:
		return "phone = ?", []any{*identity.Phone}
	default:
		return "", nil
	}
}

// --- Mapper Functions ---

// toSubscriberDomain converts a GORM SubscriberModel to a domain Subscriber entity.
func toSubscriberDomain(data *model.SubscriberModel) *entity.Subscriber {
	if data == nil {
		return nil
	}

	return &entity.Subscriber{
		ID:          data.ID,
		Email:       data.Email,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		TrafficArea: data.TrafficArea,
		LastSeenAt:  data.LastSeenAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSubscriberDomain converts a domain Subscriber entity to a GORM SubscriberModel.
func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	if data == nil {
		return nil
	}

	return &model.SubscriberModel{
		ID:          data.ID,
		Email:       data.Email,
		Phone:       data.Phone,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		TrafficArea: data.TrafficArea,
		LastSeenAt:  data.LastSeenAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
