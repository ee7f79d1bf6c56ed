package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSurveyNotFound is returned when a survey is not found.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyRepository defines the interface for survey database operations.
type SurveyRepository interface {
	// FindByID retrieves a survey by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error)

	// FindByObjectID retrieves a survey by its device-facing object identifier.
	FindByObjectID(ctx context.Context, objectID string) (*entity.Survey, error)

	// FindActiveByStudy retrieves all non-deleted surveys of a study.
	FindActiveByStudy(ctx context.Context, studyID uuid.UUID) ([]*entity.Survey, error)
}
