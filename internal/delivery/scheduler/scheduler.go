// Package scheduler drives the dispatch loop on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"trafficalert/config"
	"trafficalert/internal/delivery"
	"trafficalert/internal/domain/lifecycle"
	"trafficalert/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the dispatch scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Dispatch usecase.DispatchUsecase
}

type dispatchScheduler struct {
	interval time.Duration
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger

	started  atomic.Bool
	stopOnce sync.Once
	ready    chan struct{} // closed once the app has started, so storage is migrated
	stopCh   chan struct{}
	done     chan struct{}
}

// NewScheduler creates the poll loop. Cycles never overlap, and shutdown is honoured only between cycles.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	if params.Cfg.Dispatch == nil || params.Cfg.Dispatch.Interval <= 0 {
		return nil, errors.New("dispatch interval must be positive")
	}

	s := &dispatchScheduler{
		interval: params.Cfg.Dispatch.Interval,
		dispatch: params.Dispatch,
		logger:   params.Logger.With(slog.String("component", "scheduler")),
		ready:    make(chan struct{}),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			close(s.ready)

			return nil
		},
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs one cycle per tick until stopped. The next tick is measured from the previous cycle start.
func (s *dispatchScheduler) Serve(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("dispatch scheduler already running")
	}
	defer close(s.done)

	select {
	case <-s.ready:
	case <-s.stopCh:
		return nil
	case <-ctx.Done():
		return nil
	}

	s.logger.InfoContext(ctx, "Starting dispatch scheduler", slog.Duration("interval", s.interval))

	if err := s.dispatch.Restore(ctx); err != nil {
		s.logger.WarnContext(ctx, "Could not restore poll boundary, using catch-up window", slog.Any("error", err))
	}

	for {
		// A cycle in flight is never cancelled; it finishes before shutdown proceeds.
		report, err := s.dispatch.RunCycle(context.WithoutCancel(ctx))
		if err != nil {
			s.logger.ErrorContext(ctx, "Dispatch cycle failed, retrying at next tick", slog.Any("error", err))
		}

		timer := time.NewTimer(max(time.Until(report.CycleStart.Add(s.interval)), 0))
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-s.stopCh:
			timer.Stop()

			return nil
		case <-timer.C:
		}
	}
}

func (s *dispatchScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if !s.started.Load() {
		return nil
	}

	s.logger.Info("Stopping dispatch scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "dispatch cycle did not finish before shutdown")
	}
}
