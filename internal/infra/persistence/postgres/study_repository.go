package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studyRepository implements the repository.StudyRepository interface.
type studyRepository struct {
	db *gorm.DB
}

// NewStudyRepository is the constructor for studyRepository.
func NewStudyRepository(db *gorm.DB) repository.StudyRepository {
	return &studyRepository{
		db: db,
	}
}

// FindByID retrieves a study by its unique ID.
func (repo *studyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Study, error) {
	var studyM model.StudyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&studyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudyNotFound
		}

		return nil, errors.Wrap(err, "failed to find study by ID")
	}

	return toStudyDomain(&studyM), nil
}

// --- Mapper Functions ---

// toStudyDomain converts a GORM StudyModel to a domain Study entity.
func toStudyDomain(data *model.StudyModel) *entity.Study {
	if data == nil {
		return nil
	}

	return &entity.Study{
		ID:           data.ID,
		Name:         data.Name,
		TimezoneName: data.TimezoneName,
		Deleted:      data.Deleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
