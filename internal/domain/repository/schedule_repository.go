package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrScheduledEventNotFound is returned when a scheduled event is not found.
var ErrScheduledEventNotFound = errors.New("scheduled event not found")

// ScheduleRepository defines the interface for scheduled and archived event
// database operations.
type ScheduleRepository interface {
	// FindDueCandidates retrieves every pending, checkin-free event whose
	// canonical time falls before the horizon, joined with the study,
	// participant, and active-token context the selector needs. Events of
	// participants without an active token carry an empty Token.
	FindDueCandidates(ctx context.Context, horizon time.Time) ([]*entity.DueCandidate, error)

	// FindByIDs retrieves scheduled events by their IDs, including retired ones.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ScheduledEvent, error)

	// FindWindow retrieves the participant's non-deleted events for one
	// survey with scheduled times in [from, to).
	FindWindow(ctx context.Context, participantID, surveyID uuid.UUID, from, to time.Time) ([]*entity.ScheduledEvent, error)

	// Create persists a new scheduled event.
	Create(ctx context.Context, event *entity.ScheduledEvent) error

	// CreateIfMissing persists the event unless a live event with the same
	// participant, survey, type, and scheduled time already exists.
	// It reports whether a row was created.
	CreateIfMissing(ctx context.Context, event *entity.ScheduledEvent) (bool, error)

	// MarkDeleted retires the given events so they leave due consideration.
	MarkDeleted(ctx context.Context, ids []uuid.UUID) error

	// MarkCheckin stamps the event's checkin time and retires it.
	MarkCheckin(ctx context.Context, id uuid.UUID, now time.Time) error

	// CreateArchivedEvent persists the permanent record of one delivery attempt.
	CreateArchivedEvent(ctx context.Context, archived *entity.ArchivedEvent) error
}
