package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule types label where a ScheduledEvent came from. Only weekly events
// recur; absolute and relative events fire once.
const (
	ScheduleWeekly   = "weekly"
	ScheduleAbsolute = "absolute"
	ScheduleRelative = "relative"
	// ScheduleManual labels archive rows written by operator-triggered resends.
	ScheduleManual = "manual"
)

// MessageSendSuccess is the archived status recorded for a delivered
// notification. Any other status text is the failure reason.
const MessageSendSuccess = "success"

// ScheduledEvent is one pending delivery of one survey to one participant at
// one scheduled time. Its ID doubles as the checkin identifier handed to the
// device inside the push payload.
type ScheduledEvent struct {
	ID            uuid.UUID  `json:"id"`             // The Global Unique Identifier (GUID) for the event, also the checkin reference.
	ParticipantID uuid.UUID  `json:"participant_id"` // The ID of the participant to notify.
	SurveyID      uuid.UUID  `json:"survey_id"`      // The ID of the survey to deliver.
	ScheduleType  string     `json:"schedule_type"`  // One of ScheduleWeekly, ScheduleAbsolute, ScheduleRelative.
	ScheduledTime time.Time  `json:"scheduled_time"` // Canonical delivery instant, stored in UTC.
	CheckinTime   *time.Time `json:"checkin_time"`   // When the device acknowledged receipt; nil until then.
	Deleted       bool       `json:"deleted"`        // Set once the event reaches a terminal outcome.
	CreatedAt     time.Time  `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time  `json:"updated_at"`     // Timestamp of the last modification.
}

// DueCandidate is one selector row: a pending event joined with the study
// and participant context needed to decide whether it is due right now.
type DueCandidate struct {
	ScheduleID          uuid.UUID // ScheduledEvent ID.
	ScheduledTime       time.Time // Canonical delivery instant (UTC).
	SurveyObjectID      string    // Device-facing survey identifier.
	StudyTimezone       string    // IANA zone the schedule was authored in.
	ParticipantID       uuid.UUID
	PatientID           string // External participant identifier.
	ParticipantTimezone string // IANA zone reported by the device.
	UnknownTimezone     bool   // Device never reported a usable timezone.
	Token               string // Active FCM token, empty when none.
}
