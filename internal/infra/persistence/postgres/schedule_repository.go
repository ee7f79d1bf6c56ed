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

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// dueCandidateRow is the scan target for the selector join.
type dueCandidateRow struct {
	ScheduleID          uuid.UUID
	ScheduledTime       time.Time
	SurveyObjectID      string
	StudyTimezone       string
	ParticipantID       uuid.UUID
	PatientID           string
	ParticipantTimezone string
	UnknownTimezone     bool
	Token               string
}

// FindDueCandidates retrieves every pending event before the horizon joined
// with its selector context. Participants without an active credential come
// back with an empty token; the selector skips them.
func (repo *scheduleRepository) FindDueCandidates(ctx context.Context, horizon time.Time) ([]*entity.DueCandidate, error) {
	var rows []dueCandidateRow

	if err := repo.db.WithContext(ctx).
		Table("scheduled_events").
		Select(`scheduled_events.id AS schedule_id,
			scheduled_events.scheduled_time,
			surveys.object_id AS survey_object_id,
			studies.timezone_name AS study_timezone,
			participants.id AS participant_id,
			participants.patient_id,
			participants.timezone_name AS participant_timezone,
			participants.unknown_timezone,
			COALESCE(fcm_credentials.token, '') AS token`).
		Joins("JOIN participants ON participants.id = scheduled_events.participant_id").
		Joins("JOIN surveys ON surveys.id = scheduled_events.survey_id").
		Joins("JOIN studies ON studies.id = participants.study_id").
		Joins("LEFT JOIN fcm_credentials ON fcm_credentials.participant_id = participants.id AND fcm_credentials.unregistered IS NULL").
		Where("scheduled_events.deleted = ? AND scheduled_events.checkin_time IS NULL", false).
		Where("scheduled_events.scheduled_time < ?", horizon).
		Where("participants.deleted = ? AND surveys.deleted = ? AND studies.deleted = ?", false, false, false).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due candidates")
	}

	candidates := make([]*entity.DueCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &entity.DueCandidate{
			ScheduleID:          row.ScheduleID,
			ScheduledTime:       row.ScheduledTime,
			SurveyObjectID:      row.SurveyObjectID,
			StudyTimezone:       row.StudyTimezone,
			ParticipantID:       row.ParticipantID,
			PatientID:           row.PatientID,
			ParticipantTimezone: row.ParticipantTimezone,
			UnknownTimezone:     row.UnknownTimezone,
			Token:               row.Token,
		})
	}

	return candidates, nil
}

// FindByIDs retrieves scheduled events by their IDs, including retired ones.
func (repo *scheduleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ScheduledEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var eventModels []*model.ScheduledEventModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find scheduled events by IDs")
	}

	events := make([]*entity.ScheduledEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toScheduledEventDomain(eventM))
	}

	return events, nil
}

// FindWindow retrieves the participant's live events for one survey with
// scheduled times in [from, to).
func (repo *scheduleRepository) FindWindow(ctx context.Context, participantID, surveyID uuid.UUID, from, to time.Time) ([]*entity.ScheduledEvent, error) {
	var eventModels []*model.ScheduledEventModel

	if err := repo.db.WithContext(ctx).
		Where("participant_id = ? AND survey_id = ? AND deleted = ?", participantID, surveyID, false).
		Where("scheduled_time >= ? AND scheduled_time < ?", from, to).
		Order("scheduled_time ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find scheduled events in window")
	}

	events := make([]*entity.ScheduledEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toScheduledEventDomain(eventM))
	}

	return events, nil
}

// Create persists a new scheduled event.
func (repo *scheduleRepository) Create(ctx context.Context, event *entity.ScheduledEvent) error {
	eventM := fromScheduledEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrParticipantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create scheduled event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// CreateIfMissing persists the event unless a live event with the same
// participant, survey, type, and scheduled time already exists.
func (repo *scheduleRepository) CreateIfMissing(ctx context.Context, event *entity.ScheduledEvent) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ScheduledEventModel{}).
		Where("participant_id = ? AND survey_id = ? AND schedule_type = ? AND scheduled_time = ? AND deleted = ?",
			event.ParticipantID, event.SurveyID, event.ScheduleType, event.ScheduledTime, false).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check for existing scheduled event")
	}

	if count > 0 {
		return false, nil
	}

	if err := repo.Create(ctx, event); err != nil {
		return false, err
	}

	return true, nil
}

// MarkDeleted retires the given events so they leave due consideration.
func (repo *scheduleRepository) MarkDeleted(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ScheduledEventModel{}).
		Where("id IN ?", ids).
		Update("deleted", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark scheduled events deleted")
	}

	return nil
}

// MarkCheckin stamps the event's checkin time and retires it.
func (repo *scheduleRepository) MarkCheckin(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"checkin_time": now,
			"deleted":      true,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark checkin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScheduledEventNotFound
	}

	return nil
}

// CreateArchivedEvent persists the permanent record of one delivery attempt.
func (repo *scheduleRepository) CreateArchivedEvent(ctx context.Context, archived *entity.ArchivedEvent) error {
	archivedM := &model.ArchivedEventModel{
		ID:            archived.ID,
		ParticipantID: archived.ParticipantID,
		SurveyID:      archived.SurveyID,
		ScheduleType:  archived.ScheduleType,
		ScheduledTime: archived.ScheduledTime,
		AttemptedTime: archived.AttemptedTime,
		Status:        archived.Status,
	}

	if err := repo.db.WithContext(ctx).Create(archivedM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create archived event")
	}

	archived.ID = archivedM.ID
	archived.CreatedAt = archivedM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toScheduledEventDomain converts a GORM ScheduledEventModel to a domain ScheduledEvent entity.
func toScheduledEventDomain(data *model.ScheduledEventModel) *entity.ScheduledEvent {
	if data == nil {
		return nil
	}

	return &entity.ScheduledEvent{
		ID:            data.ID,
		ParticipantID: data.ParticipantID,
		SurveyID:      data.SurveyID,
		ScheduleType:  data.ScheduleType,
		ScheduledTime: data.ScheduledTime,
		CheckinTime:   data.CheckinTime,
		Deleted:       data.Deleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromScheduledEventDomain converts a domain ScheduledEvent entity to a GORM ScheduledEventModel.
func fromScheduledEventDomain(data *entity.ScheduledEvent) *model.ScheduledEventModel {
	if data == nil {
		return nil
	}

	return &model.ScheduledEventModel{
		ID:            data.ID,
		ParticipantID: data.ParticipantID,
		SurveyID:      data.SurveyID,
		ScheduleType:  data.ScheduleType,
		ScheduledTime: data.ScheduledTime,
		CheckinTime:   data.CheckinTime,
		Deleted:       data.Deleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
