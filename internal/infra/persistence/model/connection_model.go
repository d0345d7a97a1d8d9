package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionRequestModel is the GORM-specific struct for the 'connection_requests' table.
// PairKey is the sorted user pair; its unique index allows one request per pair.
type ConnectionRequestModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FromUserID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ToUserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PairKey      string     `gorm:"type:varchar(80);not null;uniqueIndex"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Message      string     `gorm:"type:text"`
	ConnectionID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionRequestModel) TableName() string {
	return "connection_requests"
}
