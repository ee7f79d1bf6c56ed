package model

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedEventModel is the GORM-specific struct for the 'archived_events' table.
// Rows are append-only; one row records one delivery attempt.
type ArchivedEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;index"`
	SurveyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduleType  string    `gorm:"type:varchar(16);not null"`
	ScheduledTime time.Time `gorm:"not null"`
	AttemptedTime time.Time `gorm:"not null"`
	Status        string    `gorm:"type:text;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArchivedEventModel) TableName() string {
	return "archived_events"
}
