package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCursorNotFound is returned when no boundary has been stored yet.
var ErrCursorNotFound = errors.New("poll cursor not found")

// PollCursorRepository persists the dispatch loop's last completed poll boundary.
type PollCursorRepository interface {
	Load(ctx context.Context, name string) (time.Time, error)
	Save(ctx context.Context, name string, at time.Time) error
}
