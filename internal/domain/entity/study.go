// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Study represents a research study whose surveys are delivered to enrolled participants.
// Schedules are authored in the study's timezone and evaluated per participant.
type Study struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the study.
	Name         string    `json:"name"`          // Human-readable study name.
	TimezoneName string    `json:"timezone_name"` // IANA timezone the study's schedules are authored in.
	Deleted      bool      `json:"deleted"`       // Soft-delete flag; deleted studies stop all delivery.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}
