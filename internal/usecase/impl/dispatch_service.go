package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

// apnsAuthErrorText is the backend reason for a recoverable APNs auth
// failure. Any other third-party auth error is surfaced to the cycle log.
const apnsAuthErrorText = "Auth error from APNS or Web Push Service"

type dispatchService struct {
	txManager       repository.TransactionManager
	participantRepo repository.ParticipantRepository
	scheduleRepo    repository.ScheduleRepository
	schedule        usecase.ScheduleUsecase
	gateway         service.PushGateway
	logger          *slog.Logger
	push            config.PushConfig
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	txManager repository.TransactionManager,
	participantRepo repository.ParticipantRepository,
	scheduleRepo repository.ScheduleRepository,
	schedule usecase.ScheduleUsecase,
	gateway service.PushGateway,
	logger *slog.Logger,
	push config.PushConfig,
) usecase.DispatchUsecase {
	return &dispatchService{
		txManager:       txManager,
		participantRepo: participantRepo,
		scheduleRepo:    scheduleRepo,
		schedule:        schedule,
		gateway:         gateway,
		logger:          logger,
		push:            push,
	}
}

// GatewayReady reports whether the push backend is configured.
func (s *dispatchService) GatewayReady() bool {
	return s.gateway.Configured()
}

// CollectDue selects the events due at now, grouped by active device token.
//
// An event is due when its scheduled wall-clock reading, taken in the study's
// zone and re-labeled with the participant's zone, is at or before now. The
// re-labeling deliberately keeps the authored local time: a 9am survey fires
// at the participant's 9am, not at the study's.
func (s *dispatchService) CollectDue(ctx context.Context, now time.Time) (*usecase.DueBatch, error) {
	horizon := now.Add(s.push.DueHorizon)

	candidates, err := s.scheduleRepo.FindDueCandidates(ctx, horizon)
	if err != nil {
		return nil, errors.Wrap(err, "find due candidates")
	}

	batch := &usecase.DueBatch{
		SurveysByToken:    make(map[string][]string),
		SchedulesByToken:  make(map[string][]uuid.UUID),
		PatientIDsByToken: make(map[string]string),
	}
	seenSurveys := make(map[string]map[string]struct{})

	for _, candidate := range candidates {
		if candidate.Token == "" {
			// No active credential; the event stays pending until one appears.
			continue
		}

		studyZone, participantZone := resolveZones(
			candidate.StudyTimezone, candidate.ParticipantTimezone, candidate.UnknownTimezone)
		participantTime := relabelTime(candidate.ScheduledTime, studyZone, participantZone)
		if participantTime.After(now) {
			continue
		}

		if _, ok := seenSurveys[candidate.Token]; !ok {
			seenSurveys[candidate.Token] = make(map[string]struct{})
		}
		if _, dup := seenSurveys[candidate.Token][candidate.SurveyObjectID]; !dup {
			seenSurveys[candidate.Token][candidate.SurveyObjectID] = struct{}{}
			batch.SurveysByToken[candidate.Token] = append(batch.SurveysByToken[candidate.Token], candidate.SurveyObjectID)
		}
		batch.SchedulesByToken[candidate.Token] = append(batch.SchedulesByToken[candidate.Token], candidate.ScheduleID)
		batch.PatientIDsByToken[candidate.Token] = candidate.PatientID
	}

	return batch, nil
}

// Dispatch sends one survey notification to one token and applies the
// terminal bookkeeping for its scheduled events. Weekly recurrence is
// advanced regardless of the send outcome so a dead token cannot stall a
// participant's schedule.
func (s *dispatchService) Dispatch(ctx context.Context, token string, surveyObjectIDs []string, scheduleIDs []uuid.UUID, now time.Time) error {
	if len(surveyObjectIDs) == 0 || len(scheduleIDs) == 0 {
		return nil
	}

	participant, err := s.participantRepo.FindByToken(ctx, token)
	if err != nil {
		return errors.Wrap(err, "find participant by token")
	}

	events, err := s.scheduleRepo.FindByIDs(ctx, scheduleIDs)
	if err != nil {
		return errors.Wrap(err, "find scheduled events")
	}
	if len(events) == 0 {
		return nil
	}

	if !s.gateway.Configured() {
		return s.advanceWeeklyAll(ctx, participant.ID, events, now)
	}

	// The earliest scheduled event anchors the payload: its scheduled time
	// is the sent_time the device parses and its id is the checkin
	// identifier.
	sort.Slice(events, func(i, j int) bool {
		return events[i].ScheduledTime.Before(events[j].ScheduledTime)
	})
	reference := events[0]

	sendErr := s.gateway.SendSurvey(ctx, &service.SurveyMessage{
		Token:      token,
		OSType:     participant.OSType,
		Nonce:      newNonce(),
		SentTime:   reference.ScheduledTime,
		SurveyIDs:  dedupeSurveyIDs(surveyObjectIDs),
		ScheduleID: reference.ID,
	})

	switch {
	case sendErr == nil:
		if err := s.handleSuccess(ctx, participant, events, scheduleIDs, now); err != nil {
			return err
		}

		return s.advanceWeeklyAll(ctx, participant.ID, events, now)

	case errors.Is(sendErr, service.ErrGatewayNotConfigured):
		// Gateway dropped mid-cycle; nothing to record against the participant.
		return s.advanceWeeklyAll(ctx, participant.ID, events, now)

	case errors.Is(sendErr, service.ErrTokenUnregistered):
		if err := s.handleUnregistered(ctx, participant, token, events, now, sendErr.Error()); err != nil {
			return err
		}

		return s.advanceWeeklyAll(ctx, participant.ID, events, now)

	case errors.Is(sendErr, service.ErrQuotaExceeded):
		if err := s.handleFailure(ctx, participant, token, events, now, sendErr.Error()); err != nil {
			return err
		}
		if err := s.advanceWeeklyAll(ctx, participant.ID, events, now); err != nil {
			return err
		}
		if s.push.BlockQuotaExceeded {
			return nil
		}

		return errors.Wrap(sendErr, "dispatch quota exceeded")

	case errors.Is(sendErr, service.ErrAuthMismatch):
		if err := s.handleFailure(ctx, participant, token, events, now, sendErr.Error()); err != nil {
			return err
		}
		if err := s.advanceWeeklyAll(ctx, participant.ID, events, now); err != nil {
			return err
		}
		if !strings.Contains(sendErr.Error(), apnsAuthErrorText) {
			return errors.Wrap(sendErr, "unexpected third party auth error")
		}

		return nil

	default:
		// Sender mismatch and unclassified errors count as transient.
		s.logger.WarnContext(ctx, "push send failed",
			slog.String("patientID", participant.PatientID),
			slog.String("error", sendErr.Error()),
		)
		if err := s.handleFailure(ctx, participant, token, events, now, sendErr.Error()); err != nil {
			return err
		}

		return s.advanceWeeklyAll(ctx, participant.ID, events, now)
	}
}

// handleSuccess archives the delivered events, retires them, and resets the
// participant's failure counter, all in one transaction.
func (s *dispatchService) handleSuccess(ctx context.Context, participant *entity.Participant, events []*entity.ScheduledEvent, scheduleIDs []uuid.UUID, now time.Time) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		participantRepo := factory.NewParticipantRepository()
		scheduleRepo := factory.NewScheduleRepository()

		if participant.UnreachableCount != 0 {
			if err := participantRepo.UpdateUnreachableCount(ctx, participant.ID, 0); err != nil {
				return err
			}
		}

		for _, event := range events {
			archived := archiveOf(event, now, entity.MessageSendSuccess)
			if err := scheduleRepo.CreateArchivedEvent(ctx, archived); err != nil {
				return err
			}
		}

		return scheduleRepo.MarkDeleted(ctx, scheduleIDs)
	})
	if err != nil {
		return errors.Wrap(err, "record successful dispatch")
	}

	return nil
}

// handleUnregistered retires the token immediately and archives the attempt.
// The scheduled events are retained so a future token can pick them up.
func (s *dispatchService) handleUnregistered(ctx context.Context, participant *entity.Participant, token string, events []*entity.ScheduledEvent, now time.Time, reason string) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		participantRepo := factory.NewParticipantRepository()
		scheduleRepo := factory.NewScheduleRepository()

		if err := participantRepo.UnregisterToken(ctx, token, now); err != nil {
			return err
		}

		for _, event := range events {
			if err := scheduleRepo.CreateArchivedEvent(ctx, archiveOf(event, now, reason)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "record unregistered token")
	}

	s.logger.InfoContext(ctx, "push token unregistered by backend",
		slog.String("patientID", participant.PatientID),
	)

	return nil
}

// handleFailure counts one transient failure. When the counter reaches the
// threshold the token is disabled exactly once: a disable event is recorded
// and the counter resets to zero. Events are archived but retained.
func (s *dispatchService) handleFailure(ctx context.Context, participant *entity.Participant, token string, events []*entity.ScheduledEvent, now time.Time, reason string) error {
	count := participant.UnreachableCount + 1

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		participantRepo := factory.NewParticipantRepository()
		scheduleRepo := factory.NewScheduleRepository()

		if count >= s.push.AttemptThreshold {
			if err := participantRepo.UnregisterToken(ctx, token, now); err != nil {
				return err
			}
			if err := participantRepo.CreatePushDisabledEvent(ctx, &entity.PushDisabledEvent{
				ID:            uuid.New(),
				ParticipantID: participant.ID,
				Count:         count,
				Timestamp:     now,
			}); err != nil {
				return err
			}
			if err := participantRepo.UpdateUnreachableCount(ctx, participant.ID, 0); err != nil {
				return err
			}
		} else {
			if err := participantRepo.UpdateUnreachableCount(ctx, participant.ID, count); err != nil {
				return err
			}
		}

		for _, event := range events {
			if err := scheduleRepo.CreateArchivedEvent(ctx, archiveOf(event, now, reason)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "record failed dispatch")
	}

	if count >= s.push.AttemptThreshold {
		s.logger.WarnContext(ctx, "push notifications disabled after repeated failures",
			slog.String("patientID", participant.PatientID),
			slog.Int("failureCount", count),
		)
	}

	return nil
}

// advanceWeeklyAll schedules the next weekly occurrence for each distinct
// survey behind the dispatched events.
func (s *dispatchService) advanceWeeklyAll(ctx context.Context, participantID uuid.UUID, events []*entity.ScheduledEvent, now time.Time) error {
	seen := make(map[uuid.UUID]struct{}, len(events))
	for _, event := range events {
		if _, ok := seen[event.SurveyID]; ok {
			continue
		}
		seen[event.SurveyID] = struct{}{}

		if err := s.schedule.AdvanceWeekly(ctx, participantID, event.SurveyID, now); err != nil {
			return errors.Wrap(err, "advance weekly recurrence")
		}
	}

	return nil
}

// dedupeSurveyIDs drops repeated survey ids, preserving first-seen order.
func dedupeSurveyIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	deduped := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	return deduped
}

// archiveOf builds the archive row for one attempt outcome.
func archiveOf(event *entity.ScheduledEvent, now time.Time, status string) *entity.ArchivedEvent {
	return &entity.ArchivedEvent{
		ID:            uuid.New(),
		ParticipantID: event.ParticipantID,
		SurveyID:      event.SurveyID,
		ScheduleType:  event.ScheduleType,
		ScheduledTime: event.ScheduledTime,
		AttemptedTime: now,
		Status:        status,
	}
}
