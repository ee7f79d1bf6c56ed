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

// surveyRepository implements the repository.SurveyRepository interface.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{
		db: db,
	}
}

// FindByID retrieves a survey by its unique ID.
func (repo *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	var surveyM model.SurveyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, errors.Wrap(err, "failed to find survey by ID")
	}

	return toSurveyDomain(&surveyM), nil
}

// FindByObjectID retrieves a survey by its device-facing object identifier.
func (repo *surveyRepository) FindByObjectID(ctx context.Context, objectID string) (*entity.Survey, error) {
	var surveyM model.SurveyModel

	if err := repo.db.WithContext(ctx).
		Where("object_id = ?", objectID).
		First(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, errors.Wrap(err, "failed to find survey by object ID")
	}

	return toSurveyDomain(&surveyM), nil
}

// FindActiveByStudy retrieves all non-deleted surveys of a study.
func (repo *surveyRepository) FindActiveByStudy(ctx context.Context, studyID uuid.UUID) ([]*entity.Survey, error) {
	var surveyModels []*model.SurveyModel

	if err := repo.db.WithContext(ctx).
		Where("study_id = ? AND deleted = ?", studyID, false).
		Order("created_at ASC").
		Find(&surveyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find surveys by study")
	}

	surveys := make([]*entity.Survey, 0, len(surveyModels))
	for _, surveyM := range surveyModels {
		surveys = append(surveys, toSurveyDomain(surveyM))
	}

	return surveys, nil
}

// --- Mapper Functions ---

// toSurveyDomain converts a GORM SurveyModel to a domain Survey entity.
func toSurveyDomain(data *model.SurveyModel) *entity.Survey {
	if data == nil {
		return nil
	}

	return &entity.Survey{
		ID:            data.ID,
		ObjectID:      data.ObjectID,
		StudyID:       data.StudyID,
		WeeklyTimings: data.WeeklyTimings.Clone(),
		Deleted:       data.Deleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
