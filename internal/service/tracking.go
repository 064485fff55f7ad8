package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"golang.org/x/sync/errgroup"
)

type TrackingBackend interface {
	UpdateLiveTracking(ctx context.Context, riderID, suborderID int64, p geo.Point) error
	AssignedSuborders(ctx context.Context, riderID int64) ([]entities.Suborder, error)
}

type PushJournal interface {
	SavePushes(ctx context.Context, recs []entities.PushRecord) error
}

type PushFailure struct {
	SuborderID int64
	Error      string
}

// BroadcastResult lists per-suborder outcomes in the order the ids were given.
type BroadcastResult struct {
	Succeeded []int64
	Failed    []PushFailure
}

// Broadcaster pushes one rider position to every active suborder. Pushes are
// independent: a failed push never cancels or affects the others.
type Broadcaster struct {
	logger        *slog.Logger
	backend       TrackingBackend
	journal       PushJournal
	maxConcurrent int
	now           func() time.Time

	mu   sync.Mutex
	last map[int64]entities.Position
}

func NewBroadcaster(logger *slog.Logger, backend TrackingBackend, journal PushJournal, maxConcurrent int) *Broadcaster {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Broadcaster{
		logger:        logger.With(slog.String("service", "broadcaster")),
		backend:       backend,
		journal:       journal,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
		last:          make(map[int64]entities.Position),
	}
}

func (b *Broadcaster) Broadcast(ctx context.Context, riderID int64, pos entities.Position, ids []int64) BroadcastResult {
	b.mu.Lock()
	b.last[riderID] = pos
	b.mu.Unlock()

	res := BroadcastResult{Succeeded: []int64{}, Failed: []PushFailure{}}
	if len(ids) == 0 {
		return res
	}

	start := time.Now()
	defer func() { broadcastDuration.Observe(time.Since(start).Seconds()) }()

	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(b.maxConcurrent)
	for i, id := range ids {
		g.Go(func() error {
			errs[i] = b.backend.UpdateLiveTracking(ctx, riderID, id, pos.Point)
			return nil
		})
	}
	g.Wait()

	recs := make([]entities.PushRecord, 0, len(ids))
	pushedAt := b.now()
	for i, id := range ids {
		rec := entities.PushRecord{RiderID: riderID, SuborderID: id, OK: errs[i] == nil, PushedAt: pushedAt}
		if errs[i] != nil {
			rec.Error = errs[i].Error()
			res.Failed = append(res.Failed, PushFailure{SuborderID: id, Error: rec.Error})
			trackingPushes.WithLabelValues("failed").Inc()
			b.logger.WarnContext(ctx, "live tracking push failed",
				slog.Int64("rider_id", riderID), slog.Int64("suborder_id", id), slog.Any("error", errs[i]))
		} else {
			res.Succeeded = append(res.Succeeded, id)
			trackingPushes.WithLabelValues("ok").Inc()
		}
		recs = append(recs, rec)
	}

	if b.journal != nil {
		if err := b.journal.SavePushes(ctx, recs); err != nil {
			b.logger.ErrorContext(ctx, "failed to journal pushes", slog.Int64("rider_id", riderID), slog.Any("error", err))
		}
	}

	return res
}

// Retry re-pushes the last broadcast position to ids.
func (b *Broadcaster) Retry(ctx context.Context, riderID int64, ids []int64) (BroadcastResult, error) {
	pos, ok := b.LastPosition(riderID)
	if !ok {
		return BroadcastResult{}, entities.ErrNoPosition
	}
	return b.Broadcast(ctx, riderID, pos, ids), nil
}

func (b *Broadcaster) LastPosition(riderID int64) (entities.Position, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	pos, ok := b.last[riderID]
	return pos, ok
}

func (b *Broadcaster) Forget(riderID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.last, riderID)
}

type PositionStore interface {
	PositionSource
	Set(riderID int64, point geo.Point) entities.Position
}

// Tracker owns the active suborder set of each rider and drives the broadcaster
// on position input, on suborder events and on a fixed interval.
type Tracker struct {
	logger      *slog.Logger
	backend     TrackingBackend
	broadcaster *Broadcaster
	positions   PositionStore
	interval    time.Duration

	mu     sync.Mutex
	active map[int64][]int64
}

func NewTracker(logger *slog.Logger, backend TrackingBackend, broadcaster *Broadcaster, positions PositionStore, interval time.Duration) *Tracker {
	return &Tracker{
		logger:      logger.With(slog.String("service", "tracker")),
		backend:     backend,
		broadcaster: broadcaster,
		positions:   positions,
		interval:    interval,
		active:      make(map[int64][]int64),
	}
}

// Refresh reloads the rider's suborders and keeps those awaiting pickup or delivery handover.
func (t *Tracker) Refresh(ctx context.Context, riderID int64) ([]int64, error) {
	subs, err := t.backend.AssignedSuborders(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh active suborders: %w", err)
	}

	ids := make([]int64, 0, len(subs))
	for _, s := range subs {
		if s.Status.Tracked() {
			ids = append(ids, s.ID)
		}
	}

	t.mu.Lock()
	t.active[riderID] = ids
	t.mu.Unlock()
	return ids, nil
}

func (t *Tracker) Active(riderID int64) []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.active[riderID])
}

// ReportPosition stores a new rider position and broadcasts it to the active set.
// If the set cannot be refreshed the previously known one is used.
func (t *Tracker) ReportPosition(ctx context.Context, riderID int64, point geo.Point) (entities.Position, BroadcastResult, error) {
	if riderID == 0 {
		return entities.Position{}, BroadcastResult{}, entities.ErrNoRiderContext
	}

	pos := t.positions.Set(riderID, point)

	ids, err := t.Refresh(ctx, riderID)
	if err != nil {
		t.logger.WarnContext(ctx, "using cached active suborders", slog.Int64("rider_id", riderID), slog.Any("error", err))
		ids = t.Active(riderID)
	}

	return pos, t.broadcaster.Broadcast(ctx, riderID, pos, ids), nil
}

// Retry re-pushes the rider's current position, falling back to the last broadcast one.
// An empty ids list means the whole active set.
func (t *Tracker) Retry(ctx context.Context, riderID int64, ids []int64) (BroadcastResult, error) {
	if riderID == 0 {
		return BroadcastResult{}, entities.ErrNoRiderContext
	}
	if len(ids) == 0 {
		ids = t.Active(riderID)
	}
	if pos, ok := t.positions.Position(ctx, riderID); ok {
		return t.broadcaster.Broadcast(ctx, riderID, pos, ids), nil
	}
	return t.broadcaster.Retry(ctx, riderID, ids)
}

// OnSuborderEvent refreshes the active set of riders this process is tracking.
func (t *Tracker) OnSuborderEvent(ctx context.Context, ev entities.SuborderEvent) error {
	if ev.RiderID == 0 {
		return nil
	}
	if _, ok := t.positions.Position(ctx, ev.RiderID); !ok {
		return nil
	}
	_, err := t.Refresh(ctx, ev.RiderID)
	return err
}

func (t *Tracker) Forget(riderID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, riderID)
}

// Start re-broadcasts the current positions every interval until ctx is done.
func (t *Tracker) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.tick(ctx)
			}
		}
	}()
	return nil
}

func (t *Tracker) tick(ctx context.Context) {
	t.mu.Lock()
	riders := make(map[int64][]int64, len(t.active))
	for id, ids := range t.active {
		if len(ids) > 0 {
			riders[id] = slices.Clone(ids)
		}
	}
	t.mu.Unlock()

	for riderID, ids := range riders {
		pos, ok := t.positions.Position(ctx, riderID)
		if !ok {
			continue
		}
		res := t.broadcaster.Broadcast(ctx, riderID, pos, ids)
		t.logger.DebugContext(ctx, "periodic broadcast",
			slog.Int64("rider_id", riderID), slog.Int("ok", len(res.Succeeded)), slog.Int("failed", len(res.Failed)))
	}
}
