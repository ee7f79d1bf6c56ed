package model

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantModel is the GORM-specific struct for the 'participants' table.
type ParticipantModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PatientID        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	StudyID          uuid.UUID `gorm:"type:uuid;not null;index"`
	OSType           string    `gorm:"type:varchar(16);not null"`
	TimezoneName     string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	UnknownTimezone  bool      `gorm:"not null;default:true"`
	UnreachableCount int       `gorm:"not null;default:0"`
	LastCheckin      *time.Time
	Deleted          bool `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParticipantModel) TableName() string {
	return "participants"
}
