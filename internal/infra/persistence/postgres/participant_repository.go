package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// participantRepository implements the repository.ParticipantRepository interface.
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository is the constructor for participantRepository.
func NewParticipantRepository(db *gorm.DB) repository.ParticipantRepository {
	return &participantRepository{
		db: db,
	}
}

// FindByID retrieves a participant by its unique ID.
func (repo *participantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	var participantM model.ParticipantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&participantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParticipantNotFound
		}

		return nil, errors.Wrap(err, "failed to find participant by ID")
	}

	return toParticipantDomain(&participantM), nil
}

// FindByPatientID retrieves a participant by its external patient identifier.
func (repo *participantRepository) FindByPatientID(ctx context.Context, patientID string) (*entity.Participant, error) {
	var participantM model.ParticipantModel

	if err := repo.db.WithContext(ctx).
		Where("patient_id = ? AND deleted = ?", patientID, false).
		First(&participantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParticipantNotFound
		}

		return nil, errors.Wrap(err, "failed to find participant by patient ID")
	}

	return toParticipantDomain(&participantM), nil
}

// FindByToken retrieves the participant owning the given push token.
func (repo *participantRepository) FindByToken(ctx context.Context, token string) (*entity.Participant, error) {
	var participantM model.ParticipantModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN fcm_credentials ON fcm_credentials.participant_id = participants.id").
		Where("fcm_credentials.token = ?", token).
		First(&participantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParticipantNotFound
		}

		return nil, errors.Wrap(err, "failed to find participant by token")
	}

	return toParticipantDomain(&participantM), nil
}

// FindCredentialByToken retrieves the credential row for a token, active or not.
func (repo *participantRepository) FindCredentialByToken(ctx context.Context, token string) (*entity.FCMCredential, error) {
	var credentialM model.FCMCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by token")
	}

	return toCredentialDomain(&credentialM), nil
}

// ActiveToken returns the participant's currently active push token.
func (repo *participantRepository) ActiveToken(ctx context.Context, participantID uuid.UUID) (string, error) {
	var credentialM model.FCMCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("participant_id = ? AND unregistered IS NULL", participantID).
		Order("updated_at DESC").
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrCredentialNotFound
		}

		return "", errors.Wrap(err, "failed to find active token")
	}

	return credentialM.Token, nil
}

// UpsertCredential creates the credential for the token or revives an existing row.
func (repo *participantRepository) UpsertCredential(ctx context.Context, participantID uuid.UUID, token string, now time.Time) error {
	var credentialM model.FCMCredentialModel

	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&credentialM).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to look up credential")
		}

		credentialM = model.FCMCredentialModel{
			ParticipantID: participantID,
			Token:         token,
		}
		if createErr := repo.db.WithContext(ctx).Create(&credentialM).Error; createErr != nil {
			if isForeignKeyConstraintViolation(createErr) {
				return repository.ErrParticipantNotFound
			}

			return domainerrors.NewDatabaseExecuteError(createErr, "failed to create credential")
		}

		return nil
	}

	// The token may have been handed to a different participant before; the
	// latest registration wins.
	updates := map[string]any{
		"participant_id": participantID,
		"unregistered":   nil,
		"updated_at":     now,
	}
	if updateErr := repo.db.WithContext(ctx).
		Model(&model.FCMCredentialModel{}).
		Where("id = ?", credentialM.ID).
		Updates(updates).Error; updateErr != nil {
		return errors.Wrap(updateErr, "failed to revive credential")
	}

	return nil
}

// UnregisterToken marks a single token unregistered as of now. Already
// unregistered tokens are left untouched.
func (repo *participantRepository) UnregisterToken(ctx context.Context, token string, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.FCMCredentialModel{}).
		Where("token = ? AND unregistered IS NULL", token).
		Update("unregistered", now).Error; err != nil {
		return errors.Wrap(err, "failed to unregister token")
	}

	return nil
}

// UnregisterOtherTokens marks every active credential of the participant
// except the given token unregistered.
func (repo *participantRepository) UnregisterOtherTokens(ctx context.Context, participantID uuid.UUID, keepToken string, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.FCMCredentialModel{}).
		Where("participant_id = ? AND token <> ? AND unregistered IS NULL", participantID, keepToken).
		Update("unregistered", now).Error; err != nil {
		return errors.Wrap(err, "failed to unregister other tokens")
	}

	return nil
}

// UnregisterAllTokens marks every active credential of the participant unregistered.
func (repo *participantRepository) UnregisterAllTokens(ctx context.Context, participantID uuid.UUID, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.FCMCredentialModel{}).
		Where("participant_id = ? AND unregistered IS NULL", participantID).
		Update("unregistered", now).Error; err != nil {
		return errors.Wrap(err, "failed to unregister all tokens")
	}

	return nil
}

// UpdateLastCheckin stamps the participant's last notification acknowledgement time.
func (repo *participantRepository) UpdateLastCheckin(ctx context.Context, participantID uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("id = ?", participantID).
		Update("last_checkin", now)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last checkin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// UpdateUnreachableCount sets the participant's consecutive push failure counter.
func (repo *participantRepository) UpdateUnreachableCount(ctx context.Context, participantID uuid.UUID, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("id = ?", participantID).
		Update("unreachable_count", count)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update unreachable count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// CreatePushDisabledEvent records that push delivery was disabled for the participant.
func (repo *participantRepository) CreatePushDisabledEvent(ctx context.Context, event *entity.PushDisabledEvent) error {
	eventM := &model.PushDisabledEventModel{
		ID:            event.ID,
		ParticipantID: event.ParticipantID,
		Count:         event.Count,
		Timestamp:     event.Timestamp,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrParticipantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push disabled event")
	}

	event.ID = eventM.ID

	return nil
}

// --- Mapper Functions ---

// toParticipantDomain converts a GORM ParticipantModel to a domain Participant entity.
func toParticipantDomain(data *model.ParticipantModel) *entity.Participant {
	if data == nil {
		return nil
	}

	return &entity.Participant{
		ID:               data.ID,
		PatientID:        data.PatientID,
		StudyID:          data.StudyID,
		OSType:           data.OSType,
		TimezoneName:     data.TimezoneName,
		UnknownTimezone:  data.UnknownTimezone,
		UnreachableCount: data.UnreachableCount,
		LastCheckin:      data.LastCheckin,
		Deleted:          data.Deleted,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// toCredentialDomain converts a GORM FCMCredentialModel to a domain FCMCredential entity.
func toCredentialDomain(data *model.FCMCredentialModel) *entity.FCMCredential {
	if data == nil {
		return nil
	}

	return &entity.FCMCredential{
		ID:            data.ID,
		ParticipantID: data.ParticipantID,
		Token:         data.Token,
		Unregistered:  data.Unregistered,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
