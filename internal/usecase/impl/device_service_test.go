package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (
	usecase.DeviceUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockParticipantRepository,
	*mockRepo.MockSurveyRepository,
	*mockUC.MockScheduleUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	participantRepo := mockRepo.NewMockParticipantRepository(t)
	surveyRepo := mockRepo.NewMockSurveyRepository(t)
	scheduleUC := mockUC.NewMockScheduleUsecase(t)

	svc := NewDeviceService(txManager, participantRepo, surveyRepo, scheduleUC)

	return svc, txManager, factory, participantRepo, surveyRepo, scheduleUC
}

func TestDeviceService_SetFCMToken_RegistersAndResetsCounter(t *testing.T) {
	svc, txManager, factory, participantRepo, _, _ := createTestDeviceService(t)

	ctx := context.Background()
	participantID := uuid.New()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	participantRepo.EXPECT().FindByPatientID(ctx, "patient-1").Return(&entity.Participant{
		ID:        participantID,
		PatientID: "patient-1",
	}, nil)

	passThroughTx(txManager, ctx, factory)
	factory.EXPECT().NewParticipantRepository().Return(participantRepo)

	participantRepo.EXPECT().UpsertCredential(ctx, participantID, "token-1", now).Return(nil)
	participantRepo.EXPECT().UnregisterOtherTokens(ctx, participantID, "token-1", now).Return(nil)
	participantRepo.EXPECT().UpdateUnreachableCount(ctx, participantID, 0).Return(nil)

	err := svc.SetFCMToken(ctx, "patient-1", "token-1", now)

	require.NoError(t, err)
}

func TestDeviceService_SetFCMToken_BlankTokenUnregistersAll(t *testing.T) {
	svc, txManager, _, participantRepo, _, _ := createTestDeviceService(t)

	ctx := context.Background()
	participantID := uuid.New()
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	participantRepo.EXPECT().FindByPatientID(ctx, "patient-1").Return(&entity.Participant{
		ID:        participantID,
		PatientID: "patient-1",
	}, nil)
	participantRepo.EXPECT().UnregisterAllTokens(ctx, participantID, now).Return(nil)

	err := svc.SetFCMToken(ctx, "patient-1", "", now)

	require.NoError(t, err)
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestDeviceService_SetFCMToken_UnknownParticipant(t *testing.T) {
	svc, _, _, participantRepo, _, _ := createTestDeviceService(t)

	ctx := context.Background()

	participantRepo.EXPECT().FindByPatientID(ctx, "nobody").Return(nil, repository.ErrParticipantNotFound)

	err := svc.SetFCMToken(ctx, "nobody", "token-1", time.Now())

	assert.ErrorIs(t, err, domainerrors.ErrParticipantNotFound)
}

func TestDeviceService_AvailableSurveys_ProjectsEachSurvey(t *testing.T) {
	svc, _, _, participantRepo, surveyRepo, scheduleUC := createTestDeviceService(t)

	ctx := context.Background()
	participantID := uuid.New()
	studyID := uuid.New()
	surveyA := &entity.Survey{ID: uuid.New(), ObjectID: "survey-a", StudyID: studyID}
	surveyB := &entity.Survey{ID: uuid.New(), ObjectID: "survey-b", StudyID: studyID}
	now := time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC)

	participantRepo.EXPECT().FindByPatientID(ctx, "patient-1").Return(&entity.Participant{
		ID:        participantID,
		PatientID: "patient-1",
		StudyID:   studyID,
	}, nil)
	surveyRepo.EXPECT().FindActiveByStudy(ctx, studyID).Return([]*entity.Survey{surveyA, surveyB}, nil)

	scheduleUC.EXPECT().ProjectWeeklyWindow(ctx, surveyA.ID, participantID, now).Return(weeklyAt(1, 32400), nil)
	scheduleUC.EXPECT().ProjectWeeklyWindow(ctx, surveyB.ID, participantID, now).Return(weeklyAt(3, 61200), nil)

	windows, err := svc.AvailableSurveys(ctx, "patient-1", now)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "survey-a", windows[0].SurveyObjectID)
	assert.Equal(t, []int{32400}, windows[0].WeeklyTimings[1])
	assert.Equal(t, "survey-b", windows[1].SurveyObjectID)
	assert.Equal(t, []int{61200}, windows[1].WeeklyTimings[3])
}
