package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant OS types as reported at registration.
const (
	OSAndroid = "ANDROID"
	OSIOS     = "IOS"
)

// Participant represents an enrolled study participant and the few fields the
// notification loop reads and writes. Registration lifecycle is managed elsewhere.
type Participant struct {
	ID               uuid.UUID  `json:"id"`                // The Global Unique Identifier (GUID) for the participant.
	PatientID        string     `json:"patient_id"`        // External participant identifier used by the mobile app.
	StudyID          uuid.UUID  `json:"study_id"`          // The ID of the study the participant is enrolled in.
	OSType           string     `json:"os_type"`           // Device OS (OSAndroid or OSIOS); selects the push message shape.
	TimezoneName     string     `json:"timezone_name"`     // IANA timezone reported by the device.
	UnknownTimezone  bool       `json:"unknown_timezone"`  // True when the device never reported a usable timezone.
	UnreachableCount int        `json:"unreachable_count"` // Consecutive failed push attempts; reset on success.
	LastCheckin      *time.Time `json:"last_checkin"`      // Last time the device acknowledged a notification.
	Deleted          bool       `json:"deleted"`           // Soft-delete flag; deleted participants receive nothing.
	CreatedAt        time.Time  `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt        time.Time  `json:"updated_at"`        // Timestamp of the last modification.
}
