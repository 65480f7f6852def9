package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberModel is the GORM-specific struct for the 'subscribers' table.
// Each handle is unique on its own so a registration collides on either one.
type SubscriberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone       *string   `gorm:"type:varchar(32);uniqueIndex"`
	Latitude    int       `gorm:"not null"`
	Longitude   int       `gorm:"not null"`
	TrafficArea string    `gorm:"type:varchar(100);not null;index"`
	LastSeenAt  time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
