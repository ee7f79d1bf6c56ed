package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledEventModel is the GORM-specific struct for the 'scheduled_events' table.
type ScheduledEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;index"`
	SurveyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduleType  string    `gorm:"type:varchar(16);not null"`
	ScheduledTime time.Time `gorm:"not null;index"`
	CheckinTime   *time.Time
	Deleted       bool `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduledEventModel) TableName() string {
	return "scheduled_events"
}
