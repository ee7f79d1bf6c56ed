package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStudyNotFound is returned when a study is not found.
var ErrStudyNotFound = errors.New("study not found")

// StudyRepository defines the interface for study database operations.
type StudyRepository interface {
	// FindByID retrieves a study by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Study, error)
}
