package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T, push config.PushConfig) (
	usecase.DispatchUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockParticipantRepository,
	*mockRepo.MockScheduleRepository,
	*mockUC.MockScheduleUsecase,
	*mockSvc.MockPushGateway,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	participantRepo := mockRepo.NewMockParticipantRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)
	gateway := mockSvc.NewMockPushGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDispatchService(txManager, participantRepo, scheduleRepo, scheduleUC, gateway, logger, push)

	return svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway
}

func defaultPushConfig() config.PushConfig {
	return config.PushConfig{
		AttemptThreshold: 3,
		DueHorizon:       24 * time.Hour,
		CycleInterval:    time.Minute,
		Workers:          4,
	}
}

// passThroughTx makes the transaction manager run its callback against the
// given factory, so the test mocks observe the in-transaction calls.
func passThroughTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestDispatchService_CollectDue_GroupsByTokenAndRelabels(t *testing.T) {
	svc, _, _, _, scheduleRepo, _, _ := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	// 2026-01-05 is a Monday. The study clock is UTC; the participant is in
	// New York, so a 9am UTC authored time is due at 9am New York (14:00 UTC).
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	dueID := uuid.New()
	dueDupID := uuid.New()
	notYetID := uuid.New()

	candidates := []*entity.DueCandidate{
		{
			ScheduleID:          dueID,
			ScheduledTime:       time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			SurveyObjectID:      "survey-a",
			StudyTimezone:       "UTC",
			PatientID:           "patient-1",
			ParticipantTimezone: "America/New_York",
			Token:               "token-1",
		},
		{
			// Second pending event of the same survey for the same token: the
			// survey is listed once but both events are tracked.
			ScheduleID:          dueDupID,
			ScheduledTime:       time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC),
			SurveyObjectID:      "survey-a",
			StudyTimezone:       "UTC",
			PatientID:           "patient-1",
			ParticipantTimezone: "America/New_York",
			Token:               "token-1",
		},
		{
			// Re-labeled to 10am New York (15:00 UTC), after now.
			ScheduleID:          notYetID,
			ScheduledTime:       time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			SurveyObjectID:      "survey-b",
			StudyTimezone:       "UTC",
			PatientID:           "patient-1",
			ParticipantTimezone: "America/New_York",
			Token:               "token-1",
		},
		{
			// No active credential: skipped entirely.
			ScheduleID:     uuid.New(),
			ScheduledTime:  time.Date(2026, 1, 5, 1, 0, 0, 0, time.UTC),
			SurveyObjectID: "survey-c",
			StudyTimezone:  "UTC",
			PatientID:      "patient-2",
			Token:          "",
		},
	}

	scheduleRepo.EXPECT().FindDueCandidates(ctx, now.Add(24*time.Hour)).Return(candidates, nil)

	batch, err := svc.CollectDue(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"token-1"}, batch.Tokens())
	assert.Equal(t, []string{"survey-a"}, batch.SurveysByToken["token-1"])
	assert.Equal(t, []uuid.UUID{dueID, dueDupID}, batch.SchedulesByToken["token-1"])
	assert.Equal(t, "patient-1", batch.PatientIDsByToken["token-1"])
}

func TestDispatchService_CollectDue_UnknownTimezoneUsesStudyClock(t *testing.T) {
	svc, _, _, _, scheduleRepo, _, _ := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	scheduleID := uuid.New()
	scheduleRepo.EXPECT().FindDueCandidates(ctx, now.Add(24*time.Hour)).Return([]*entity.DueCandidate{
		{
			ScheduleID:          scheduleID,
			ScheduledTime:       time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
			SurveyObjectID:      "survey-a",
			StudyTimezone:       "UTC",
			PatientID:           "patient-1",
			ParticipantTimezone: "America/New_York",
			UnknownTimezone:     true,
			Token:               "token-1",
		},
	}, nil)

	batch, err := svc.CollectDue(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{scheduleID}, batch.SchedulesByToken["token-1"])
}

func TestDispatchService_Dispatch_SuccessResetsCounterAndRetiresEvents(t *testing.T) {
	svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New(), uuid.New()}

	participant := &entity.Participant{
		ID:               participantID,
		PatientID:        "patient-1",
		OSType:           entity.OSAndroid,
		UnreachableCount: 2,
	}
	// The first-listed schedule id belongs to the later event; the payload
	// must reference the earliest one.
	earliestTime := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly, ScheduledTime: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)},
		{ID: scheduleIDs[1], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly, ScheduledTime: earliestTime},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(true)

	var sent *service.SurveyMessage
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).Run(func(ctx context.Context, msg *service.SurveyMessage) {
		sent = msg
	}).Return(nil)

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	participantRepo.EXPECT().UpdateUnreachableCount(ctx, participantID, 0).Return(nil)

	var archived []*entity.ArchivedEvent
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Run(func(ctx context.Context, row *entity.ArchivedEvent) {
		archived = append(archived, row)
	}).Return(nil)
	scheduleRepo.EXPECT().MarkDeleted(ctx, scheduleIDs).Return(nil)

	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "token-1", sent.Token)
	assert.Equal(t, entity.OSAndroid, sent.OSType)
	assert.Equal(t, []string{"survey-a"}, sent.SurveyIDs)
	assert.Equal(t, scheduleIDs[1], sent.ScheduleID)
	assert.Equal(t, earliestTime, sent.SentTime)
	assert.Len(t, sent.Nonce, 32)

	require.Len(t, archived, 2)
	for _, row := range archived {
		assert.Equal(t, entity.MessageSendSuccess, row.Status)
		assert.Equal(t, now, row.AttemptedTime)
	}
}

func TestDispatchService_Dispatch_DuplicateSurveyIDsSentOnce(t *testing.T) {
	svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New()}

	participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSAndroid}
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly, ScheduledTime: now},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(true)

	var sent *service.SurveyMessage
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).Run(func(ctx context.Context, msg *service.SurveyMessage) {
		sent = msg
	}).Return(nil)

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Return(nil)
	scheduleRepo.EXPECT().MarkDeleted(ctx, scheduleIDs).Return(nil)
	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	err := svc.Dispatch(ctx, "token-1", []string{"survey-a", "survey-a", "survey-b"}, scheduleIDs, now)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"survey-a", "survey-b"}, sent.SurveyIDs)
}

func TestDispatchService_Dispatch_FailureBelowThresholdCountsOnce(t *testing.T) {
	svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New()}

	participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSIOS}
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(true)
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).Return(errors.New("transient send failure"))

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	participantRepo.EXPECT().UpdateUnreachableCount(ctx, participantID, 1).Return(nil)

	var archived []*entity.ArchivedEvent
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Run(func(ctx context.Context, row *entity.ArchivedEvent) {
		archived = append(archived, row)
	}).Return(nil)

	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "transient send failure", archived[0].Status)
}

func TestDispatchService_Dispatch_ThresholdDisablesExactlyOnce(t *testing.T) {
	svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New()}

	// Two prior failures; this attempt is the third and crosses the threshold.
	participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSIOS, UnreachableCount: 2}
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(true)
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).Return(errors.New("transient send failure"))

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	participantRepo.EXPECT().UnregisterToken(ctx, "token-1", now).Return(nil)

	var disabled *entity.PushDisabledEvent
	participantRepo.EXPECT().CreatePushDisabledEvent(ctx, mock.Anything).Run(func(ctx context.Context, event *entity.PushDisabledEvent) {
		disabled = event
	}).Return(nil)
	participantRepo.EXPECT().UpdateUnreachableCount(ctx, participantID, 0).Return(nil)

	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Return(nil)
	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

	require.NoError(t, err)
	require.NotNil(t, disabled)
	assert.Equal(t, 3, disabled.Count)
	assert.Equal(t, participantID, disabled.ParticipantID)
}

func TestDispatchService_Dispatch_UnregisteredRetiresTokenKeepsEvents(t *testing.T) {
	svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New()}

	participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSAndroid}
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(true)
	gateway.EXPECT().SendSurvey(ctx, mock.Anything).
		Return(errors.Wrap(service.ErrTokenUnregistered, "requested entity was not found"))

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)
	factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

	participantRepo.EXPECT().UnregisterToken(ctx, "token-1", now).Return(nil)
	scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Return(nil)
	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	// No MarkDeleted: the events stay pending for a future token.
	err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

	require.NoError(t, err)
	scheduleRepo.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_QuotaExceededSurfacesUnlessBlocked(t *testing.T) {
	tests := []struct {
		name       string
		block      bool
		expectsErr bool
	}{
		{name: "surfaced by default", block: false, expectsErr: true},
		{name: "swallowed when policy blocks it", block: true, expectsErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := defaultPushConfig()
			push.BlockQuotaExceeded = tt.block
			svc, txManager, factory, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, push)

			ctx := context.Background()
			now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
			participantID := uuid.New()
			surveyID := uuid.New()
			scheduleIDs := []uuid.UUID{uuid.New()}

			participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSIOS}
			events := []*entity.ScheduledEvent{
				{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly},
			}

			participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
			scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
			gateway.EXPECT().Configured().Return(true)
			gateway.EXPECT().SendSurvey(ctx, mock.Anything).
				Return(errors.Wrap(service.ErrQuotaExceeded, "message rate exceeded"))

			passThroughTx(txManager, ctx, factory)
			factory.EXPECT().NewParticipantRepository().Return(participantRepo)
			factory.EXPECT().NewScheduleRepository().Return(scheduleRepo)

			participantRepo.EXPECT().UpdateUnreachableCount(ctx, participantID, 1).Return(nil)
			scheduleRepo.EXPECT().CreateArchivedEvent(ctx, mock.Anything).Return(nil)
			scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

			err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

			if tt.expectsErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "quota")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDispatchService_Dispatch_GatewayUnconfiguredStillAdvancesWeekly(t *testing.T) {
	svc, _, _, participantRepo, scheduleRepo, scheduleUC, gateway := createTestDispatchService(t, defaultPushConfig())

	ctx := context.Background()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)
	participantID := uuid.New()
	surveyID := uuid.New()
	scheduleIDs := []uuid.UUID{uuid.New()}

	participant := &entity.Participant{ID: participantID, PatientID: "patient-1", OSType: entity.OSAndroid}
	events := []*entity.ScheduledEvent{
		{ID: scheduleIDs[0], ParticipantID: participantID, SurveyID: surveyID, ScheduleType: entity.ScheduleWeekly},
	}

	participantRepo.EXPECT().FindByToken(ctx, "token-1").Return(participant, nil)
	scheduleRepo.EXPECT().FindByIDs(ctx, scheduleIDs).Return(events, nil)
	gateway.EXPECT().Configured().Return(false)
	scheduleUC.EXPECT().AdvanceWeekly(ctx, participantID, surveyID, now).Return(nil)

	err := svc.Dispatch(ctx, "token-1", []string{"survey-a"}, scheduleIDs, now)

	require.NoError(t, err)
	gateway.AssertNotCalled(t, "SendSurvey", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_NothingDueIsNoOp(t *testing.T) {
	svc, _, _, _, _, _, _ := createTestDispatchService(t, defaultPushConfig())

	err := svc.Dispatch(context.Background(), "token-1", nil, nil, time.Now())

	require.NoError(t, err)
}
