package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

// projectorDaysBack and projectorDaysAhead bound the one-shot events merged
// into the weekly window: [study-local midnight - back, midnight + ahead).
const (
	projectorDaysBack  = 4
	projectorDaysAhead = 3
)

type scheduleService struct {
	participantRepo repository.ParticipantRepository
	studyRepo       repository.StudyRepository
	surveyRepo      repository.SurveyRepository
	scheduleRepo    repository.ScheduleRepository
	gateway         service.PushGateway
	logger          *slog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	participantRepo repository.ParticipantRepository,
	studyRepo repository.StudyRepository,
	surveyRepo repository.SurveyRepository,
	scheduleRepo repository.ScheduleRepository,
	gateway service.PushGateway,
	logger *slog.Logger,
) usecase.ScheduleUsecase {
	return &scheduleService{
		participantRepo: participantRepo,
		studyRepo:       studyRepo,
		surveyRepo:      surveyRepo,
		scheduleRepo:    scheduleRepo,
		gateway:         gateway,
		logger:          logger,
	}
}

// AdvanceWeekly creates the participant's next weekly occurrence of the
// survey strictly after the given time. Weekly times are evaluated on the
// study's wall clock. Calling it again with the same inputs is a no-op.
func (s *scheduleService) AdvanceWeekly(ctx context.Context, participantID, surveyID uuid.UUID, after time.Time) error {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return errors.Wrap(err, "find survey")
	}
	if survey.WeeklyTimings.IsEmpty() {
		return nil
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return errors.Wrap(err, "find participant")
	}

	study, err := s.studyRepo.FindByID(ctx, participant.StudyID)
	if err != nil {
		return errors.Wrap(err, "find study")
	}

	studyZone, _ := resolveZones(study.TimezoneName, participant.TimezoneName, participant.UnknownTimezone)
	afterLocal := after.In(studyZone)
	weekday, seconds := localWeekPosition(afterLocal)

	nextWeekday, nextSeconds, ok := survey.WeeklyTimings.NextAfter(weekday, seconds)
	if !ok {
		return nil
	}

	dayOffset := (nextWeekday - weekday + 7) % 7
	if dayOffset == 0 && nextSeconds <= seconds {
		// The only timing on this weekday is already behind us; it fires next week.
		dayOffset = 7
	}

	midnight := time.Date(afterLocal.Year(), afterLocal.Month(), afterLocal.Day(), 0, 0, 0, 0, studyZone)
	next := midnight.AddDate(0, 0, dayOffset).Add(time.Duration(nextSeconds) * time.Second)

	event := &entity.ScheduledEvent{
		ID:            uuid.New(),
		ParticipantID: participantID,
		SurveyID:      surveyID,
		ScheduleType:  entity.ScheduleWeekly,
		ScheduledTime: next.UTC(),
	}

	created, err := s.scheduleRepo.CreateIfMissing(ctx, event)
	if err != nil {
		return errors.Wrap(err, "create next weekly event")
	}
	if created {
		s.logger.DebugContext(ctx, "scheduled next weekly occurrence",
			slog.String("participantID", participantID.String()),
			slog.String("surveyID", surveyID.String()),
			slog.Time("scheduledTime", event.ScheduledTime),
		)
	}

	return nil
}

// ProjectWeeklyWindow builds the seven weekday buckets the device displays:
// the survey's authored weekly timings merged with the participant's one-shot
// events falling inside the window around the study-local midnight of now.
func (s *scheduleService) ProjectWeeklyWindow(ctx context.Context, surveyID, participantID uuid.UUID, now time.Time) (entity.WeeklyTimings, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return entity.WeeklyTimings{}, errors.Wrap(err, "find survey")
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return entity.WeeklyTimings{}, errors.Wrap(err, "find participant")
	}

	study, err := s.studyRepo.FindByID(ctx, participant.StudyID)
	if err != nil {
		return entity.WeeklyTimings{}, errors.Wrap(err, "find study")
	}

	studyZone, _ := resolveZones(study.TimezoneName, participant.TimezoneName, participant.UnknownTimezone)
	nowLocal := now.In(studyZone)
	midnight := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, studyZone)
	from := midnight.AddDate(0, 0, -projectorDaysBack)
	to := midnight.AddDate(0, 0, projectorDaysAhead)

	timings := survey.WeeklyTimings.Clone()

	events, err := s.scheduleRepo.FindWindow(ctx, participantID, surveyID, from.UTC(), to.UTC())
	if err != nil {
		return entity.WeeklyTimings{}, errors.Wrap(err, "find events in window")
	}

	for _, event := range events {
		if event.ScheduleType == entity.ScheduleWeekly {
			// Weekly occurrences are already covered by the authored timings.
			continue
		}
		local := event.ScheduledTime.In(studyZone)
		weekday, seconds := localWeekPosition(local)
		timings.Insert(weekday, seconds)
	}

	return timings, nil
}

// Checkin records that the device acknowledged the scheduled event.
func (s *scheduleService) Checkin(ctx context.Context, scheduleID uuid.UUID, now time.Time) error {
	events, err := s.scheduleRepo.FindByIDs(ctx, []uuid.UUID{scheduleID})
	if err != nil {
		return errors.Wrap(err, "find scheduled event")
	}
	if len(events) == 0 {
		return domainerrors.ErrScheduleNotFound
	}

	if err := s.scheduleRepo.MarkCheckin(ctx, scheduleID, now); err != nil {
		if errors.Is(err, repository.ErrScheduledEventNotFound) {
			return domainerrors.ErrScheduleNotFound
		}

		return errors.Wrap(err, "mark checkin")
	}

	if err := s.participantRepo.UpdateLastCheckin(ctx, events[0].ParticipantID, now); err != nil {
		return errors.Wrap(err, "update last checkin")
	}

	return nil
}

// Resend pushes one survey to a participant immediately. Every exit path
// leaves an archive row so operators can see what happened.
func (s *scheduleService) Resend(ctx context.Context, patientID, surveyObjectID string, now time.Time) error {
	participant, err := s.participantRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domainerrors.ErrParticipantNotFound
		}

		return errors.Wrap(err, "find participant")
	}

	survey, err := s.surveyRepo.FindByObjectID(ctx, surveyObjectID)
	if err != nil {
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return domainerrors.ErrSurveyNotFound
		}

		return errors.Wrap(err, "find survey")
	}

	archived := &entity.ArchivedEvent{
		ID:            uuid.New(),
		ParticipantID: participant.ID,
		SurveyID:      survey.ID,
		ScheduleType:  entity.ScheduleManual,
		ScheduledTime: now,
		AttemptedTime: now,
	}

	token, err := s.participantRepo.ActiveToken(ctx, participant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			archived.Status = "no registered device token"
			if archiveErr := s.scheduleRepo.CreateArchivedEvent(ctx, archived); archiveErr != nil {
				return errors.Wrap(archiveErr, "archive resend attempt")
			}

			return domainerrors.ErrNoActiveCredential
		}

		return errors.Wrap(err, "find active token")
	}

	if !s.gateway.Configured() {
		archived.Status = "push gateway not configured"
		if archiveErr := s.scheduleRepo.CreateArchivedEvent(ctx, archived); archiveErr != nil {
			return errors.Wrap(archiveErr, "archive resend attempt")
		}

		return domainerrors.ErrPushNotConfigured
	}

	sendErr := s.gateway.SendSurvey(ctx, &service.SurveyMessage{
		Token:      token,
		OSType:     participant.OSType,
		Nonce:      newNonce(),
		SentTime:   now,
		SurveyIDs:  []string{survey.ObjectID},
		ScheduleID: archived.ID,
	})
	if sendErr != nil {
		archived.Status = sendErr.Error()
	} else {
		archived.Status = entity.MessageSendSuccess
	}

	if err := s.scheduleRepo.CreateArchivedEvent(ctx, archived); err != nil {
		return errors.Wrap(err, "archive resend attempt")
	}

	if sendErr != nil {
		return domainerrors.ErrPushSendFailed.WrapMessage(sendErr.Error())
	}

	return nil
}
