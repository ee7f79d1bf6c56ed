// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for participant persistence.
var (
	// ErrParticipantNotFound is returned when a participant is not found.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrCredentialNotFound is returned when no push credential matches the lookup.
	ErrCredentialNotFound = errors.New("push credential not found")
)

// ParticipantRepository defines the interface for participant and push
// credential database operations.
type ParticipantRepository interface {
	// FindByID retrieves a participant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)

	// FindByPatientID retrieves a participant by its external patient identifier.
	FindByPatientID(ctx context.Context, patientID string) (*entity.Participant, error)

	// FindByToken retrieves the participant owning the given push token.
	FindByToken(ctx context.Context, token string) (*entity.Participant, error)

	// FindCredentialByToken retrieves the credential row for a token,
	// active or not.
	FindCredentialByToken(ctx context.Context, token string) (*entity.FCMCredential, error)

	// ActiveToken returns the participant's currently active push token,
	// or ErrCredentialNotFound when none is registered.
	ActiveToken(ctx context.Context, participantID uuid.UUID) (string, error)

	// UpsertCredential creates the credential for the token or, if it
	// already exists, clears its unregistered mark.
	UpsertCredential(ctx context.Context, participantID uuid.UUID, token string, now time.Time) error

	// UnregisterToken marks a single token unregistered as of now.
	UnregisterToken(ctx context.Context, token string, now time.Time) error

	// UnregisterOtherTokens marks every active credential of the
	// participant except the given token unregistered.
	UnregisterOtherTokens(ctx context.Context, participantID uuid.UUID, keepToken string, now time.Time) error

	// UnregisterAllTokens marks every active credential of the participant unregistered.
	UnregisterAllTokens(ctx context.Context, participantID uuid.UUID, now time.Time) error

	// UpdateLastCheckin stamps the participant's last notification acknowledgement time.
	UpdateLastCheckin(ctx context.Context, participantID uuid.UUID, now time.Time) error

	// UpdateUnreachableCount sets the participant's consecutive push failure counter.
	UpdateUnreachableCount(ctx context.Context, participantID uuid.UUID, count int) error

	// CreatePushDisabledEvent records that push delivery was disabled for
	// the participant at the given failure count.
	CreatePushDisabledEvent(ctx context.Context, event *entity.PushDisabledEvent) error
}
