package usecase

import (
	"context"
	"time"
)

// CycleReport summarises one poll cycle. Counters never fail the cycle; they make failures observable.
type CycleReport struct {
	CycleStart time.Time     `json:"cycle_start"`
	Duration   time.Duration `json:"duration"`
	// Boundary is last_poll as used for novelty in this cycle.
	Boundary time.Time `json:"boundary"`
	// Advanced is false when the cycle aborted before the boundary could move.
	Advanced bool `json:"advanced"`

	Subscribers       int64 `json:"subscribers"`
	Areas             int64 `json:"areas"`
	AreasSkipped      int64 `json:"areas_skipped"`
	MessagesSeen      int64 `json:"messages_seen"`
	NewMessages       int64 `json:"new_messages"`
	MalformedMessages int64 `json:"malformed_messages"`
	Notified          int64 `json:"notified"`
	Expired           int64 `json:"expired"`
	RemoveFailures    int64 `json:"remove_failures"`
	Deliveries        int64 `json:"deliveries"`
	DeliveryFailures  int64 `json:"delivery_failures"`
	FormatFailures    int64 `json:"format_failures"`
	TouchFailures     int64 `json:"touch_failures"`
}

// DispatchUsecase runs poll cycles and owns the last_poll boundary
type DispatchUsecase interface {
	// Restore loads a persisted boundary when cursor persistence is enabled.
	// Without one the startup catch-up window (now - interval) stays in effect.
	Restore(ctx context.Context) error

	// RunCycle performs one full poll cycle. The returned report is never nil.
	// The only error is ErrStoreUnavailable, in which case last_poll is unchanged.
	RunCycle(ctx context.Context) (*CycleReport, error)

	// LastPoll returns the current novelty boundary.
	LastPoll() time.Time

	// LastReport returns the report of the most recent cycle, or nil before the first one.
	LastReport() *CycleReport
}
