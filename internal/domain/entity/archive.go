package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedEvent is the permanent record of one delivery attempt. One row is
// written per attempt whether it succeeded or failed; the paired
// ScheduledEvent is only retired on success.
type ArchivedEvent struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the archive row.
	ParticipantID uuid.UUID `json:"participant_id"` // The ID of the participant the attempt targeted.
	SurveyID      uuid.UUID `json:"survey_id"`      // The ID of the survey that was (to be) delivered.
	ScheduleType  string    `json:"schedule_type"`  // Schedule type label copied from the source event.
	ScheduledTime time.Time `json:"scheduled_time"` // The canonical time the event was due (UTC).
	AttemptedTime time.Time `json:"attempted_time"` // When the dispatcher made the attempt.
	Status        string    `json:"status"`         // MessageSendSuccess or the failure reason text.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this record was created.
}
