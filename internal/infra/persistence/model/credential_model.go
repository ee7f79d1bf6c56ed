package model

import (
	"time"

	"github.com/google/uuid"
)

// FCMCredentialModel is the GORM-specific struct for the 'fcm_credentials' table.
// A credential is active while unregistered is NULL.
type FCMCredentialModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParticipantID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token         string     `gorm:"type:varchar(512);not null;index"`
	Unregistered  *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FCMCredentialModel) TableName() string {
	return "fcm_credentials"
}

// PushDisabledEventModel is the GORM-specific struct for the 'push_disabled_events' table.
type PushDisabledEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Count         int       `gorm:"not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PushDisabledEventModel) TableName() string {
	return "push_disabled_events"
}
