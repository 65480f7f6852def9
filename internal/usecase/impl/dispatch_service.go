package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"trafficalert/config"
	"trafficalert/internal/domain/constants"
	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/repository"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/errors"
	"trafficalert/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// DispatchServiceParams holds dependencies for the dispatch service, injected by Fx
type DispatchServiceParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	SubscriberRepo repository.SubscriberRepository
	CursorRepo     repository.PollCursorRepository `optional:"true"`
	Feed           service.FeedSource
	Formatter      usecase.MessageFormatter
	Sender         usecase.NotificationSender
}

type dispatchService struct {
	interval        time.Duration
	expiryThreshold time.Duration
	areaWorkers     int
	persistCursor   bool

	subscriberRepo repository.SubscriberRepository
	cursorRepo     repository.PollCursorRepository
	feed           service.FeedSource
	formatter      usecase.MessageFormatter
	sender         usecase.NotificationSender
	logger         *slog.Logger
	now            func() time.Time

	mu         sync.RWMutex
	lastPoll   time.Time
	lastReport *usecase.CycleReport
}

// NewDispatchService creates the dispatch loop core with last_poll = now - interval.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return newDispatchService(params, time.Now)
}

func newDispatchService(params DispatchServiceParams, now func() time.Time) *dispatchService {
	cfg := params.Config.Dispatch

	return &dispatchService{
		interval:        cfg.Interval,
		expiryThreshold: cfg.ExpiryThreshold,
		areaWorkers:     max(cfg.AreaWorkers, 1),
		persistCursor:   cfg.PersistCursor && params.CursorRepo != nil,
		subscriberRepo:  params.SubscriberRepo,
		cursorRepo:      params.CursorRepo,
		feed:            params.Feed,
		formatter:       params.Formatter,
		sender:          params.Sender,
		logger:          params.Logger.With(slog.String("component", "dispatch")),
		now:             now,
		lastPoll:        now().Add(-cfg.Interval),
	}
}

func (s *dispatchService) Restore(ctx context.Context) error {
	if !s.persistCursor {
		return nil
	}

	boundary, err := s.cursorRepo.Load(ctx, constants.DispatchCursorName)
	if errors.Is(err, repository.ErrCursorNotFound) {
		s.logger.InfoContext(ctx, "[Dispatch] No stored poll boundary, using startup catch-up window",
			slog.Time("last_poll", s.LastPoll()),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to restore poll boundary")
	}

	s.mu.Lock()
	s.lastPoll = boundary
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "[Dispatch] Restored poll boundary", slog.Time("last_poll", boundary))

	return nil
}

func (s *dispatchService) LastPoll() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastPoll
}

func (s *dispatchService) LastReport() *usecase.CycleReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastReport == nil {
		return nil
	}
	report := *s.lastReport

	return &report
}

// RunCycle loads a subscriber snapshot, processes every area, then advances last_poll to the cycle start.
func (s *dispatchService) RunCycle(ctx context.Context) (*usecase.CycleReport, error) {
	cycleStart := s.now()
	boundary := s.LastPoll()
	stats := &cycleStats{}

	subscribers, err := s.subscriberRepo.ListAll(ctx)
	if err != nil {
		err = errors.Wrap(errors.Mark(err, domainerrors.ErrStoreUnavailable), "list subscribers")
		s.logger.ErrorContext(ctx, "[Dispatch] Subscriber store unavailable, skipping cycle",
			slog.Time("last_poll", boundary),
			slog.Any("error", err),
		)

		return s.finish(cycleStart, boundary, stats, false), err
	}
	stats.subscribers.Store(int64(len(subscribers)))

	byArea := s.groupByArea(ctx, subscribers)
	stats.areas.Store(int64(len(byArea)))

	cycle := &cycleRun{
		service:    s,
		cycleStart: cycleStart,
		boundary:   boundary,
		stats:      stats,
	}

	var group errgroup.Group
	group.SetLimit(s.areaWorkers)
	for area, areaSubscribers := range byArea {
		group.Go(func() error {
			cycle.processArea(ctx, area, areaSubscribers)

			return nil
		})
	}
	// Barrier: last_poll moves only after every area worker has joined.
	// Workers always return nil; area failures land in stats, so Wait has nothing to report.
	_ = group.Wait()

	// One boundary for all areas: an area skipped this cycle does not hold it back.
	s.mu.Lock()
	s.lastPoll = cycleStart
	s.mu.Unlock()

	if s.persistCursor {
		if err := s.cursorRepo.Save(ctx, constants.DispatchCursorName, cycleStart); err != nil {
			s.logger.WarnContext(ctx, "[Dispatch] Failed to persist poll boundary",
				slog.Time("last_poll", cycleStart),
				slog.Any("error", err),
			)
		}
	}

	report := s.finish(cycleStart, boundary, stats, true)
	s.logger.InfoContext(ctx, "[Dispatch] Cycle completed",
		slog.Duration("duration", report.Duration),
		slog.Int64("areas", report.Areas),
		slog.Int64("areas_skipped", report.AreasSkipped),
		slog.Int64("new_messages", report.NewMessages),
		slog.Int64("notified", report.Notified),
		slog.Int64("expired", report.Expired),
		slog.Int64("delivery_failures", report.DeliveryFailures),
	)

	return report, nil
}

// groupByArea builds area -> subscribers from one snapshot, unique by identity.
func (s *dispatchService) groupByArea(ctx context.Context, subscribers []*entity.Subscriber) map[string][]*entity.Subscriber {
	byArea := make(map[string][]*entity.Subscriber)
	seen := make(map[string]struct{}, len(subscribers))

	for _, subscriber := range subscribers {
		if err := subscriber.Validate(); err != nil {
			s.logger.WarnContext(ctx, "[Dispatch] Skipping subscriber without contact handle",
				slog.String("subscriber_id", subscriber.ID.String()),
			)

			continue
		}
		if subscriber.TrafficArea == "" {
			s.logger.WarnContext(ctx, "[Dispatch] Skipping subscriber without traffic area",
				slog.String("subscriber", subscriber.Identity().String()),
			)

			continue
		}

		key := subscriber.Identity().String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		byArea[subscriber.TrafficArea] = append(byArea[subscriber.TrafficArea], subscriber)
	}

	return byArea
}

func (s *dispatchService) finish(cycleStart, boundary time.Time, stats *cycleStats, advanced bool) *usecase.CycleReport {
	report := stats.snapshot()
	report.CycleStart = cycleStart
	report.Boundary = boundary
	report.Advanced = advanced
	report.Duration = s.now().Sub(cycleStart)

	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	copied := *report

	return &copied
}

// cycleStats is shared by concurrent area workers.
type cycleStats struct {
	subscribers       atomic.Int64
	areas             atomic.Int64
	areasSkipped      atomic.Int64
	messagesSeen      atomic.Int64
	newMessages       atomic.Int64
	malformedMessages atomic.Int64
	notified          atomic.Int64
	expired           atomic.Int64
	removeFailures    atomic.Int64
	deliveries        atomic.Int64
	deliveryFailures  atomic.Int64
	formatFailures    atomic.Int64
	touchFailures     atomic.Int64
}

func (c *cycleStats) snapshot() *usecase.CycleReport {
	return &usecase.CycleReport{
		Subscribers:       c.subscribers.Load(),
		Areas:             c.areas.Load(),
		AreasSkipped:      c.areasSkipped.Load(),
		MessagesSeen:      c.messagesSeen.Load(),
		NewMessages:       c.newMessages.Load(),
		MalformedMessages: c.malformedMessages.Load(),
		Notified:          c.notified.Load(),
		Expired:           c.expired.Load(),
		RemoveFailures:    c.removeFailures.Load(),
		Deliveries:        c.deliveries.Load(),
		DeliveryFailures:  c.deliveryFailures.Load(),
		FormatFailures:    c.formatFailures.Load(),
		TouchFailures:     c.touchFailures.Load(),
	}
}
