package entity

import (
	"time"

	"github.com/google/uuid"
)

// FCMCredential is one push token issued to a participant's device.
// At most one credential per participant is active (Unregistered == nil) at a
// time; registering a new token unregisters all previous ones.
type FCMCredential struct {
	ID            uuid.UUID  `json:"id"`             // The Global Unique Identifier (GUID) for the credential.
	ParticipantID uuid.UUID  `json:"participant_id"` // The ID of the participant this token belongs to.
	Token         string     `json:"token"`          // The FCM device token notifications are addressed to.
	Unregistered  *time.Time `json:"unregistered"`   // When the token was retired; nil while active.
	CreatedAt     time.Time  `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time  `json:"updated_at"`     // Timestamp of the last modification.
}

// IsActive reports whether the credential may still be used for delivery.
func (c *FCMCredential) IsActive() bool {
	return c != nil && c.Unregistered == nil
}

// PushDisabledEvent is the audit record written when consecutive send failures
// cross the configured threshold and the participant's credential is retired.
type PushDisabledEvent struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the event.
	ParticipantID uuid.UUID `json:"participant_id"` // The ID of the participant whose credential was disabled.
	Count         int       `json:"count"`          // The failure count at the moment of disabling.
	Timestamp     time.Time `json:"timestamp"`      // When the credential was disabled.
}
