package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestScheduleService(t *testing.T) (
	usecase.ScheduleUsecase,
	*mockRepo.MockParticipantRepository,
	*mockRepo.MockStudyRepository,
	*mockRepo.MockSurveyRepository,
	*mockRepo.MockScheduleRepository,
	*mockSvc.MockPushGateway,
) {
	participantRepo := mockRepo.NewMockParticipantRepository(t)
	studyRepo := mockRepo.NewMockStudyRepository(t)
	surveyRepo := mockRepo.NewMockSurveyRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	gateway := mockSvc.NewMockPushGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewScheduleService(participantRepo, studyRepo, surveyRepo, scheduleRepo, gateway, logger)

	return svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, gateway
}

func weeklyAt(weekday, seconds int) entity.WeeklyTimings {
	var timings entity.WeeklyTimings
	timings.Insert(weekday, seconds)

	return timings
}

func TestScheduleService_AdvanceWeekly_SchedulesNextOccurrence(t *testing.T) {
	svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	studyID := uuid.New()

	// Tuesday 9am on the study's New York clock.
	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{
		ID:            surveyID,
		StudyID:       studyID,
		WeeklyTimings: weeklyAt(2, 9*3600),
	}, nil)
	participantRepo.EXPECT().FindByID(ctx, participantID).Return(&entity.Participant{
		ID:      participantID,
		StudyID: studyID,
	}, nil)
	studyRepo.EXPECT().FindByID(ctx, studyID).Return(&entity.Study{
		ID:           studyID,
		TimezoneName: "America/New_York",
	}, nil)

	var created *entity.ScheduledEvent
	scheduleRepo.EXPECT().CreateIfMissing(ctx, mock.Anything).Run(func(ctx context.Context, event *entity.ScheduledEvent) {
		created = event
	}).Return(true, nil)

	// Monday 2026-01-05 10:00 New York (15:00 UTC): the next occurrence is
	// Tuesday 9am New York, 2026-01-06 14:00 UTC.
	after := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)

	err := svc.AdvanceWeekly(ctx, participantID, surveyID, after)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, participantID, created.ParticipantID)
	assert.Equal(t, surveyID, created.SurveyID)
	assert.Equal(t, entity.ScheduleWeekly, created.ScheduleType)
	assert.Equal(t, time.Date(2026, 1, 6, 14, 0, 0, 0, time.UTC), created.ScheduledTime)
}

func TestScheduleService_AdvanceWeekly_SameDayPastTimingFiresNextWeek(t *testing.T) {
	svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	studyID := uuid.New()

	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{
		ID:            surveyID,
		StudyID:       studyID,
		WeeklyTimings: weeklyAt(2, 9*3600),
	}, nil)
	participantRepo.EXPECT().FindByID(ctx, participantID).Return(&entity.Participant{
		ID:      participantID,
		StudyID: studyID,
	}, nil)
	studyRepo.EXPECT().FindByID(ctx, studyID).Return(&entity.Study{
		ID:           studyID,
		TimezoneName: "America/New_York",
	}, nil)

	var created *entity.ScheduledEvent
	scheduleRepo.EXPECT().CreateIfMissing(ctx, mock.Anything).Run(func(ctx context.Context, event *entity.ScheduledEvent) {
		created = event
	}).Return(true, nil)

	// Tuesday 10:00 New York: today's 9am is behind us, so the occurrence
	// lands on next Tuesday.
	after := time.Date(2026, 1, 6, 15, 0, 0, 0, time.UTC)

	err := svc.AdvanceWeekly(ctx, participantID, surveyID, after)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, time.Date(2026, 1, 13, 14, 0, 0, 0, time.UTC), created.ScheduledTime)
}

func TestScheduleService_AdvanceWeekly_NoTimingsIsNoOp(t *testing.T) {
	svc, _, _, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	surveyID := uuid.New()

	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{ID: surveyID}, nil)

	err := svc.AdvanceWeekly(ctx, uuid.New(), surveyID, time.Now())

	require.NoError(t, err)
	scheduleRepo.AssertNotCalled(t, "CreateIfMissing", mock.Anything, mock.Anything)
}

func TestScheduleService_AdvanceWeekly_ExistingEventIsNotDuplicated(t *testing.T) {
	svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	studyID := uuid.New()

	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{
		ID:            surveyID,
		StudyID:       studyID,
		WeeklyTimings: weeklyAt(2, 9*3600),
	}, nil)
	participantRepo.EXPECT().FindByID(ctx, participantID).Return(&entity.Participant{
		ID:      participantID,
		StudyID: studyID,
	}, nil)
	studyRepo.EXPECT().FindByID(ctx, studyID).Return(&entity.Study{
		ID:           studyID,
		TimezoneName: "America/New_York",
	}, nil)
	scheduleRepo.EXPECT().CreateIfMissing(ctx, mock.Anything).Return(false, nil)

	after := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)

	err := svc.AdvanceWeekly(ctx, participantID, surveyID, after)

	require.NoError(t, err)
}

func TestScheduleService_ProjectWeeklyWindow_MergesOneShotEvents(t *testing.T) {
	svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	studyID := uuid.New()

	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{
		ID:            surveyID,
		StudyID:       studyID,
		WeeklyTimings: weeklyAt(1, 9*3600),
	}, nil)
	participantRepo.EXPECT().FindByID(ctx, participantID).Return(&entity.Participant{
		ID:      participantID,
		StudyID: studyID,
	}, nil)
	studyRepo.EXPECT().FindByID(ctx, studyID).Return(&entity.Study{
		ID:           studyID,
		TimezoneName: "America/New_York",
	}, nil)

	// Monday 2026-01-05 10:00 New York. Window: midnight Jan 1 .. Jan 8 New
	// York, expressed in UTC.
	now := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)
	from := time.Date(2026, 1, 1, 5, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 8, 5, 0, 0, 0, time.UTC)

	scheduleRepo.EXPECT().FindWindow(ctx, participantID, surveyID, from, to).Return([]*entity.ScheduledEvent{
		{
			// Saturday 2026-01-03 12:00 New York: lands in the Saturday slot.
			ScheduleType:  entity.ScheduleAbsolute,
			ScheduledTime: time.Date(2026, 1, 3, 17, 0, 0, 0, time.UTC),
		},
		{
			// Weekly occurrences are covered by the authored timings already.
			ScheduleType:  entity.ScheduleWeekly,
			ScheduledTime: time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC),
		},
	}, nil)

	timings, err := svc.ProjectWeeklyWindow(ctx, surveyID, participantID, now)

	require.NoError(t, err)
	assert.Equal(t, []int{9 * 3600}, timings[1])
	assert.Equal(t, []int{12 * 3600}, timings[6])
}

func TestScheduleService_ProjectWeeklyWindow_SameInputsProjectIdentically(t *testing.T) {
	svc, participantRepo, studyRepo, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	studyID := uuid.New()

	surveyRepo.EXPECT().FindByID(ctx, surveyID).Return(&entity.Survey{
		ID:            surveyID,
		StudyID:       studyID,
		WeeklyTimings: weeklyAt(1, 9*3600),
	}, nil)
	participantRepo.EXPECT().FindByID(ctx, participantID).Return(&entity.Participant{
		ID:      participantID,
		StudyID: studyID,
	}, nil)
	studyRepo.EXPECT().FindByID(ctx, studyID).Return(&entity.Study{
		ID:           studyID,
		TimezoneName: "America/New_York",
	}, nil)

	now := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)
	from := time.Date(2026, 1, 1, 5, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 8, 5, 0, 0, 0, time.UTC)

	scheduleRepo.EXPECT().FindWindow(ctx, participantID, surveyID, from, to).Return([]*entity.ScheduledEvent{
		{
			ScheduleType:  entity.ScheduleAbsolute,
			ScheduledTime: time.Date(2026, 1, 3, 17, 0, 0, 0, time.UTC),
		},
	}, nil)

	first, err := svc.ProjectWeeklyWindow(ctx, surveyID, participantID, now)
	require.NoError(t, err)

	second, err := svc.ProjectWeeklyWindow(ctx, surveyID, participantID, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{9 * 3600}, second[1])
}

func TestScheduleService_Checkin_RetiresEventAndStampsParticipant(t *testing.T) {
	svc, participantRepo, _, _, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	scheduleID := uuid.New()
	participantID := uuid.New()
	now := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	scheduleRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{scheduleID}).Return([]*entity.ScheduledEvent{
		{ID: scheduleID, ParticipantID: participantID},
	}, nil)
	scheduleRepo.EXPECT().MarkCheckin(ctx, scheduleID, now).Return(nil)
	participantRepo.EXPECT().UpdateLastCheckin(ctx, participantID, now).Return(nil)

	err := svc.Checkin(ctx, scheduleID, now)

	require.NoError(t, err)
}

func TestScheduleService_Checkin_UnknownEvent(t *testing.T) {
	svc, _, _, _, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	scheduleID := uuid.New()

	scheduleRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{scheduleID}).Return(nil, nil)

	err := svc.Checkin(ctx, scheduleID, time.Now())

	assert.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
}

func TestScheduleService_Resend_Success(t *testing.T) {
	svc, participantRepo, _, surveyRepo, scheduleRepo, gateway := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	surveyID := uuid.New()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	participantRepo.EXPECT().FindByPatientID(ctx, "patient-1").Return(&entity.Participant{
		ID:        participantID,
		PatientID: "patient-1",
		OSType:    entity.OSAndroid,
	}, nil)
	surveyRepo.EXPECT().FindByObjectID(ctx, "survey-a").Return(&entity.Survey{
		ID:       surveyID,
		ObjectID: "survey-a",
	}, nil)
	participantRepo.EXPECT().ActiveToken(ctx, participantID).Return("token-1", nil)
	gateway.EXPECT().Configured().Return(true)

	var sent *service.SurveyMessage
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).Run(func(ctx context.Context, msg *service.SurveyMessage) {
		sent = msg
	}).Return(nil)

	var archived *entity.ArchivedEvent
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Run(func(ctx context.Context, row *entity.ArchivedEvent) {
		archived = row
	}).Return(nil)

	err := svc.Resend(ctx, "patient-1", "survey-a", now)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"survey-a"}, sent.SurveyIDs)
	require.NotNil(t, archived)
	assert.Equal(t, entity.MessageSendSuccess, archived.Status)
	assert.Equal(t, entity.ScheduleManual, archived.ScheduleType)
	assert.Equal(t, archived.ID, sent.ScheduleID)
}

func TestScheduleService_Resend_NoActiveTokenStillArchives(t *testing.T) {
	svc, participantRepo, _, surveyRepo, scheduleRepo, _ := createTestScheduleService(t)

	ctx := context.Background()
	participantID := uuid.New()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	participantRepo.EXPECT().FindByPatientID(ctx, "patient-1").Return(&entity.Participant{
		ID:        participantID,
		PatientID: "patient-1",
	}, nil)
	surveyRepo.EXPECT().FindByObjectID(ctx, "survey-a").Return(&entity.Survey{
		ID:       uuid.New(),
		ObjectID: "survey-a",
	}, nil)
	participantRepo.EXPECT().ActiveToken(ctx, participantID).Return("", repository.ErrCredentialNotFound)

	var archived *entity.ArchivedEvent
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Run(func(ctx context.Context, row *entity.ArchivedEvent) {
		archived = row
	}).Return(nil)

	err := svc.Resend(ctx, "patient-1", "survey-a", now)

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveCredential)
	require.NotNil(t, archived)
	assert.Equal(t, "no registered device token", archived.Status)
}

func TestScheduleService_Resend_UnknownParticipant(t *testing.T) {
	svc, participantRepo, _, _, _, _ := createTestScheduleService(t)

	ctx := context.Background()

	participantRepo.EXPECT().FindByPatientID(ctx, "nobody").Return(nil, repository.ErrParticipantNotFound)

	err := svc.Resend(ctx, "nobody", "survey-a", time.Now())

	assert.ErrorIs(t, err, domainerrors.ErrParticipantNotFound)
}
