package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleUsecase manages the lifecycle of scheduled events: weekly
// recurrence, device checkins, window projection, and manual resends.
type ScheduleUsecase interface {
	// AdvanceWeekly creates the participant's next weekly occurrence of the
	// survey after the given time. It is idempotent: an identical live
	// event is never duplicated.
	AdvanceWeekly(ctx context.Context, participantID, surveyID uuid.UUID, after time.Time) error

	// ProjectWeeklyWindow builds the seven weekday buckets of delivery
	// times the device should display, merging the survey's authored
	// weekly timings with one-shot events near now.
	ProjectWeeklyWindow(ctx context.Context, surveyID, participantID uuid.UUID, now time.Time) (entity.WeeklyTimings, error)

	// Checkin records that the device acknowledged the scheduled event and
	// removes it from due consideration.
	Checkin(ctx context.Context, scheduleID uuid.UUID, now time.Time) error

	// Resend pushes one survey to a participant immediately, outside the
	// scheduling machinery, recording the outcome in the archive.
	Resend(ctx context.Context, patientID, surveyObjectID string, now time.Time) error
}
