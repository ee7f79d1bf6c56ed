package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyModel is the GORM-specific struct for the 'studies' table.
type StudyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	TimezoneName string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	Deleted      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudyModel) TableName() string {
	return "studies"
}
