package postgres

import (
	"context"
	"time"

	"trafficalert/internal/domain/repository"
	"trafficalert/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pollCursorRepository struct {
	db *gorm.DB
}

// NewPollCursorRepository is the constructor for pollCursorRepository.
func NewPollCursorRepository(db *gorm.DB) repository.PollCursorRepository {
	return &pollCursorRepository{db: db}
}

func (repo *pollCursorRepository) Load(ctx context.Context, name string) (time.Time, error) {
	var cursorM model.PollCursorModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&cursorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, repository.ErrCursorNotFound
		}

		return time.Time{}, errors.Wrap(err, "failed to load poll cursor")
	}

	return cursorM.BoundaryAt, nil
}

// Save upserts the boundary for name.
func (repo *pollCursorRepository) Save(ctx context.Context, name string, at time.Time) error {
	cursorM := &model.PollCursorModel{Name: name, BoundaryAt: at}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"boundary_at", "updated_at"}),
		}).
		Create(cursorM).Error; err != nil {
		return errors.Wrap(err, "failed to save poll cursor")
	}

	return nil
}
