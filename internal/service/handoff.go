package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/backend"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/utils"
)

type SuborderBackend interface {
	GetSuborder(ctx context.Context, id int64) (entities.Suborder, error)
	AssignedSuborders(ctx context.Context, riderID int64) ([]entities.Suborder, error)
	Perform(ctx context.Context, action handoff.Action, req backend.ActionRequest) error
}

type Journal interface {
	SaveAction(ctx context.Context, rec entities.ActionRecord) error
	ListActions(ctx context.Context, suborderID int64) ([]entities.ActionRecord, error)
}

// ActiveSetRefresher is notified after a rider's suborders change status.
type ActiveSetRefresher interface {
	Refresh(ctx context.Context, riderID int64) ([]int64, error)
}

type SuborderView struct {
	Suborder entities.Suborder
	Actions  []handoff.ActionState
}

type HandoffService struct {
	logger    *slog.Logger
	backend   SuborderBackend
	machine   *handoff.Machine
	positions PositionSource
	journal   Journal
	refresher ActiveSetRefresher
	now       func() time.Time
}

func NewHandoffService(
	logger *slog.Logger,
	backend SuborderBackend,
	machine *handoff.Machine,
	positions PositionSource,
	journal Journal,
	refresher ActiveSetRefresher,
) *HandoffService {
	return &HandoffService{
		logger:    logger.With(slog.String("service", "handoff")),
		backend:   backend,
		machine:   machine,
		positions: positions,
		journal:   journal,
		refresher: refresher,
		now:       time.Now,
	}
}

// Suborders lists the rider's assigned suborders with the actions available right now.
func (s *HandoffService) Suborders(ctx context.Context, actor entities.Actor) ([]SuborderView, error) {
	if actor.Role != entities.RoleRider || actor.ID == 0 {
		return nil, entities.ErrNoRiderContext
	}

	subs, err := s.backend.AssignedSuborders(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	pos := s.position(ctx, actor)
	views := make([]SuborderView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, SuborderView{Suborder: sub, Actions: s.machine.Available(sub, actor, pos)})
	}
	return views, nil
}

func (s *HandoffService) Suborder(ctx context.Context, actor entities.Actor, id int64) (SuborderView, error) {
	sub, err := s.backend.GetSuborder(ctx, id)
	if err != nil {
		return SuborderView{}, err
	}
	return SuborderView{Suborder: sub, Actions: s.machine.Available(sub, actor, s.position(ctx, actor))}, nil
}

// Apply runs one action against the authoritative suborder state. Refusals by the
// state machine or the geofence never reach the backend. On success the suborder is
// reloaded and returned as the server reports it.
func (s *HandoffService) Apply(ctx context.Context, actor entities.Actor, id int64, action handoff.Action) (entities.Suborder, error) {
	sub, err := s.backend.GetSuborder(ctx, id)
	if err != nil {
		return entities.Suborder{}, err
	}

	rec := entities.ActionRecord{
		SuborderID: id,
		Action:     string(action),
		ActorRole:  actor.Role,
		ActorID:    actor.ID,
		FromStatus: currentStatus(sub, action),
		CreatedAt:  s.now(),
	}

	pos := s.position(ctx, actor)
	if err := s.machine.Check(sub, action, actor, pos); err != nil {
		if errors.Is(err, entities.ErrNoPosition) || errors.Is(err, entities.ErrOutOfRange) {
			geofenceRefusals.WithLabelValues(string(action), refusalReason(err)).Inc()
		}
		s.record(ctx, rec, entities.OutcomeRejected, err)
		return sub, err
	}

	err = s.backend.Perform(ctx, action, backend.ActionRequest{SuborderID: id, Actor: actor, Position: pos})
	if err != nil {
		s.record(ctx, rec, entities.OutcomeFailed, err)
		return sub, err
	}

	updated, err := s.backend.GetSuborder(ctx, id)
	if err != nil {
		s.record(ctx, rec, entities.OutcomeApplied, nil)
		return sub, fmt.Errorf("action applied but reload failed: %w", err)
	}

	rec.ToStatus = currentStatus(updated, action)
	s.record(ctx, rec, entities.OutcomeApplied, nil)

	s.logger.InfoContext(ctx, "suborder action applied",
		slog.Int64("suborder_id", id),
		slog.String("action", string(action)),
		slog.String("from", rec.FromStatus),
		slog.String("to", rec.ToStatus),
	)

	if s.refresher != nil && updated.RiderID != 0 {
		if _, err := s.refresher.Refresh(ctx, updated.RiderID); err != nil {
			s.logger.WarnContext(ctx, "failed to refresh active suborders", slog.Int64("rider_id", updated.RiderID), slog.Any("error", err))
		}
	}

	return updated, nil
}

func (s *HandoffService) History(ctx context.Context, suborderID int64) ([]entities.ActionRecord, error) {
	recs, err := s.journal.ListActions(ctx, suborderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return recs, nil
}

func (s *HandoffService) position(ctx context.Context, actor entities.Actor) *entities.Position {
	if actor.Role != entities.RoleRider || s.positions == nil {
		return nil
	}
	if pos, ok := s.positions.Position(ctx, actor.ID); ok {
		return &pos
	}
	return nil
}

// record journals the attempt. Journal failures are logged and never fail the action.
func (s *HandoffService) record(ctx context.Context, rec entities.ActionRecord, outcome entities.Outcome, actionErr error) {
	handoffActions.WithLabelValues(rec.Action, string(outcome)).Inc()

	rec.Outcome = outcome
	if actionErr != nil {
		rec.Error = actionErr.Error()
	}

	cfg := utils.RetryConfig{
		InitialDelay: 50 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	err := utils.Retry(ctx, cfg, func() error {
		return s.journal.SaveAction(ctx, rec)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to journal action", slog.Int64("suborder_id", rec.SuborderID), slog.Any("error", err))
	}
}

func currentStatus(sub entities.Suborder, action handoff.Action) string {
	if action == handoff.ActionConfirmPayment {
		return string(sub.PaymentStatus)
	}
	return string(sub.Status)
}

func refusalReason(err error) string {
	if errors.Is(err, entities.ErrNoPosition) {
		return "no_position"
	}
	return "out_of_range"
}
