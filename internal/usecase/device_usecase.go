package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
)

// SurveyWindow is one survey the device should know about together with its
// projected weekly delivery times.
type SurveyWindow struct {
	SurveyObjectID string               `json:"survey_object_id"`
	WeeklyTimings  entity.WeeklyTimings `json:"weekly_timings"`
}

// DeviceUsecase covers the device-facing operations: push token registration
// and the survey schedule poll.
type DeviceUsecase interface {
	// SetFCMToken registers the device's push token for the participant,
	// retiring every other token they hold and resetting the failure
	// counter. A blank token unregisters all of the participant's tokens.
	SetFCMToken(ctx context.Context, patientID, token string, now time.Time) error

	// AvailableSurveys returns the active surveys of the participant's
	// study, each with its projected weekly window.
	AvailableSurveys(ctx context.Context, patientID string, now time.Time) ([]*SurveyWindow, error)
}
