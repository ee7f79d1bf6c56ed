// Package notifier runs the periodic notification dispatch cycle.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/usecase"

	"go.uber.org/fx"
)

// ServerParams holds dependencies for the notifier worker
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

type notifierServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewServer creates the dispatch cycle worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		cfg:        params.Cfg,
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
		stopCh:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs dispatch cycles until the application stops. Each cycle is
// independent: a failed cycle only logs, and the next tick retries from the
// current database state.
func (s *notifierServer) Serve(ctx context.Context) error {
	interval := s.cfg.Push.CycleInterval
	s.logger.Info("Starting notification dispatcher", slog.Duration("cycleInterval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *notifierServer) stop(_ context.Context) error {
	s.logger.Info("Shutting down notification dispatcher")
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})

	return nil
}

// runCycle collects the due events once and fans the per-token sends out on a
// bounded worker pool. A single failing token never aborts its siblings.
func (s *notifierServer) runCycle(ctx context.Context) {
	if !s.dispatchUC.GatewayReady() {
		s.logger.Debug("push gateway not configured, skipping dispatch cycle")

		return
	}

	start := time.Now()
	now := start.UTC()

	batch, err := s.dispatchUC.CollectDue(ctx, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to collect due events", slog.Any("error", err))

		return
	}

	tokens := batch.Tokens()
	if len(tokens) == 0 {
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Push.Workers)

	for _, token := range tokens {
		wg.Add(1)
		sem <- struct{}{}

		go func(token string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.dispatchUC.Dispatch(ctx, token, batch.SurveysByToken[token], batch.SchedulesByToken[token], now)
			if err != nil {
				s.logger.ErrorContext(ctx, "dispatch failed",
					slog.String("patientID", batch.PatientIDsByToken[token]),
					slog.Any("error", err),
				)
			}
		}(token)
	}

	wg.Wait()

	s.logger.InfoContext(ctx, "dispatch cycle complete",
		slog.Int("tokens", len(tokens)),
		slog.Duration("elapsed", time.Since(start)),
	)
}
