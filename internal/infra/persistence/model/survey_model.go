package model

import (
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SurveyModel is the GORM-specific struct for the 'surveys' table.
// WeeklyTimings is stored as a JSON column holding the seven weekday buckets.
type SurveyModel struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ObjectID      string               `gorm:"type:varchar(64);not null;uniqueIndex"`
	StudyID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	WeeklyTimings entity.WeeklyTimings `gorm:"type:jsonb;serializer:json"`
	Deleted       bool                 `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SurveyModel) TableName() string {
	return "surveys"
}
