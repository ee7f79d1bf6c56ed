package notifier

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/config"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func createTestNotifier(t *testing.T) (*notifierServer, *mockUC.MockDispatchUsecase) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	cfg := &config.Config{}
	cfg.Push = config.PushConfig{
		AttemptThreshold: 3,
		CycleInterval:    time.Minute,
		DueHorizon:       24 * time.Hour,
		Workers:          2,
	}

	srv := &notifierServer{
		cfg:        cfg,
		logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
		dispatchUC: dispatchUC,
		stopCh:     make(chan struct{}),
	}

	return srv, dispatchUC
}

func TestNotifierServer_RunCycle_SkipsWhenGatewayUnconfigured(t *testing.T) {
	srv, dispatchUC := createTestNotifier(t)

	dispatchUC.EXPECT().GatewayReady().Return(false)

	srv.runCycle(context.Background())

	dispatchUC.AssertNotCalled(t, "CollectDue", mock.Anything, mock.Anything)
}

func TestNotifierServer_RunCycle_DispatchesEachToken(t *testing.T) {
	srv, dispatchUC := createTestNotifier(t)

	scheduleA := uuid.New()
	scheduleB := uuid.New()
	batch := &usecase.DueBatch{
		SurveysByToken: map[string][]string{
			"token-1": {"survey-a"},
			"token-2": {"survey-b"},
		},
		SchedulesByToken: map[string][]uuid.UUID{
			"token-1": {scheduleA},
			"token-2": {scheduleB},
		},
		PatientIDsByToken: map[string]string{
			"token-1": "patient-1",
			"token-2": "patient-2",
		},
	}

	dispatchUC.EXPECT().GatewayReady().Return(true)
	dispatchUC.EXPECT().CollectDue(mock.Anything, mock.Anything).Return(batch, nil)
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, "token-1", []string{"survey-a"}, []uuid.UUID{scheduleA}, mock.Anything).
		Return(nil)
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, "token-2", []string{"survey-b"}, []uuid.UUID{scheduleB}, mock.Anything).
		Return(nil)

	srv.runCycle(context.Background())
}

func TestNotifierServer_RunCycle_EmptyBatchSendsNothing(t *testing.T) {
	srv, dispatchUC := createTestNotifier(t)

	dispatchUC.EXPECT().GatewayReady().Return(true)
	dispatchUC.EXPECT().CollectDue(mock.Anything, mock.Anything).
		Return(&usecase.DueBatch{SurveysByToken: map[string][]string{}}, nil)

	srv.runCycle(context.Background())

	dispatchUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
