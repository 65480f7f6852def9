package model

import "time"

// PollCursorModel stores the last completed poll boundary per dispatcher name.
type PollCursorModel struct {
	Name       string    `gorm:"type:varchar(100);primaryKey"`
	BoundaryAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PollCursorModel) TableName() string {
	return "poll_cursors"
}
