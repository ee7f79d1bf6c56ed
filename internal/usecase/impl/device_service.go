package impl

import (
	"context"
	"time"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	"pulse/internal/usecase"
)

type deviceService struct {
	txManager       repository.TransactionManager
	participantRepo repository.ParticipantRepository
	surveyRepo      repository.SurveyRepository
	schedule        usecase.ScheduleUsecase
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	txManager repository.TransactionManager,
	participantRepo repository.ParticipantRepository,
	surveyRepo repository.SurveyRepository,
	schedule usecase.ScheduleUsecase,
) usecase.DeviceUsecase {
	return &deviceService{
		txManager:       txManager,
		participantRepo: participantRepo,
		surveyRepo:      surveyRepo,
		schedule:        schedule,
	}
}

// SetFCMToken registers the device's push token for the participant. The new
// token becomes the only active credential and the failure counter restarts.
// A blank token unregisters everything the participant holds.
func (s *deviceService) SetFCMToken(ctx context.Context, patientID, token string, now time.Time) error {
	participant, err := s.participantRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domainerrors.ErrParticipantNotFound
		}

		return errors.Wrap(err, "find participant")
	}

	if token == "" {
		if err := s.participantRepo.UnregisterAllTokens(ctx, participant.ID, now); err != nil {
			return errors.Wrap(err, "unregister all tokens")
		}

		return nil
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		participantRepo := factory.NewParticipantRepository()

		if err := participantRepo.UpsertCredential(ctx, participant.ID, token, now); err != nil {
			return err
		}
		if err := participantRepo.UnregisterOtherTokens(ctx, participant.ID, token, now); err != nil {
			return err
		}

		return participantRepo.UpdateUnreachableCount(ctx, participant.ID, 0)
	})
	if err != nil {
		return errors.Wrap(err, "register push token")
	}

	return nil
}

// AvailableSurveys returns the active surveys of the participant's study,
// each with its projected weekly window.
func (s *deviceService) AvailableSurveys(ctx context.Context, patientID string, now time.Time) ([]*usecase.SurveyWindow, error) {
	participant, err := s.participantRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, domainerrors.ErrParticipantNotFound
		}

		return nil, errors.Wrap(err, "find participant")
	}

	surveys, err := s.surveyRepo.FindActiveByStudy(ctx, participant.StudyID)
	if err != nil {
		return nil, errors.Wrap(err, "find study surveys")
	}

	windows := make([]*usecase.SurveyWindow, 0, len(surveys))
	for _, survey := range surveys {
		timings, err := s.schedule.ProjectWeeklyWindow(ctx, survey.ID, participant.ID, now)
		if err != nil {
			return nil, errors.Wrap(err, "project weekly window")
		}

		windows = append(windows, &usecase.SurveyWindow{
			SurveyObjectID: survey.ObjectID,
			WeeklyTimings:  timings,
		})
	}

	return windows, nil
}
