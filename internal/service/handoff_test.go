package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/backend"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service"
	mocks "github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service/mocks"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	shopPoint     = geo.Point{Lat: 24.8607, Lon: 67.0011}
	customerPoint = geo.Point{Lat: 24.9000, Lon: 67.0800}
	farPoint      = geo.Point{Lat: 24.8700, Lon: 67.0100}

	riderActor  = entities.Actor{Role: entities.RoleRider, ID: 7}
	vendorActor = entities.Actor{Role: entities.RoleVendor, ID: 3}
)

func suborderIn(status entities.Status, riderID int64) entities.Suborder {
	return entities.Suborder{
		ID:            100,
		Status:        status,
		PaymentStatus: entities.PaymentPending,
		Pickup:        entities.Location{Point: shopPoint},
		Delivery:      entities.Location{Point: customerPoint},
		CustomerID:    42,
		RiderID:       riderID,
	}
}

func recordWith(outcome entities.Outcome) any {
	return mock.MatchedBy(func(rec entities.ActionRecord) bool { return rec.Outcome == outcome })
}

func TestHandoffService_Apply(t *testing.T) {
	type MockBehavior func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, r *mocks.MockActiveSetRefresher)

	testCases := []struct {
		name         string
		actor        entities.Actor
		action       handoff.Action
		position     *geo.Point
		mockBehavior MockBehavior
		wantStatus   entities.Status
		wantErr      error
		wantMsg      string
	}{
		{
			name:   "backward move is rejected without a backend call",
			actor:  vendorActor,
			action: handoff.ActionStart,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusReady, 0), nil).Once()
				j.EXPECT().SaveAction(mock.Anything, recordWith(entities.OutcomeRejected)).Return(nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:     "pickup outside the geofence never reaches the backend",
			actor:    riderActor,
			action:   handoff.ActionPickup,
			position: &farPoint,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusAssigned, 7), nil).Once()
				j.EXPECT().SaveAction(mock.Anything, recordWith(entities.OutcomeRejected)).Return(nil).Once()
			},
			wantErr: entities.ErrOutOfRange,
		},
		{
			name:   "pickup without a position",
			actor:  riderActor,
			action: handoff.ActionPickup,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusAssigned, 7), nil).Once()
				j.EXPECT().SaveAction(mock.Anything, recordWith(entities.OutcomeRejected)).Return(nil).Once()
			},
			wantErr: entities.ErrNoPosition,
		},
		{
			name:     "pickup inside the geofence",
			actor:    riderActor,
			action:   handoff.ActionPickup,
			position: &shopPoint,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, r *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusAssigned, 7), nil).Once()
				b.EXPECT().Perform(mock.Anything, handoff.ActionPickup, mock.MatchedBy(func(req backend.ActionRequest) bool {
					return req.SuborderID == 100 && req.Actor == riderActor && req.Position != nil && req.Position.Point == shopPoint
				})).Return(nil).Once()
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusPicked, 7), nil).Once()
				j.EXPECT().SaveAction(mock.Anything, mock.MatchedBy(func(rec entities.ActionRecord) bool {
					return rec.Outcome == entities.OutcomeApplied && rec.FromStatus == "assigned" && rec.ToStatus == "picked"
				})).Return(nil).Once()
				r.EXPECT().Refresh(mock.Anything, int64(7)).Return([]int64{}, nil).Once()
			},
			wantStatus: entities.StatusPicked,
		},
		{
			name:   "server message is surfaced and nothing changes",
			actor:  vendorActor,
			action: handoff.ActionHandover,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusPicked, 7), nil).Once()
				b.EXPECT().Perform(mock.Anything, handoff.ActionHandover, mock.Anything).
					Return(&backend.APIError{Status: 422, Message: "Payment pending"}).Once()
				j.EXPECT().SaveAction(mock.Anything, recordWith(entities.OutcomeFailed)).Return(nil).Once()
			},
			wantErr: entities.ErrValidation,
			wantMsg: "Payment pending",
		},
		{
			name:   "journal failure does not fail the action",
			actor:  vendorActor,
			action: handoff.ActionReady,
			mockBehavior: func(b *mocks.MockSuborderBackend, j *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusInProgress, 0), nil).Once()
				b.EXPECT().Perform(mock.Anything, handoff.ActionReady, mock.Anything).Return(nil).Once()
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).Return(suborderIn(entities.StatusReady, 0), nil).Once()
				j.EXPECT().SaveAction(mock.Anything, mock.Anything).Return(errors.New("db down")).Times(3)
			},
			wantStatus: entities.StatusReady,
		},
		{
			name:   "suborder not found",
			actor:  vendorActor,
			action: handoff.ActionReady,
			mockBehavior: func(b *mocks.MockSuborderBackend, _ *mocks.MockJournal, _ *mocks.MockActiveSetRefresher) {
				b.EXPECT().GetSuborder(mock.Anything, int64(100)).
					Return(entities.Suborder{}, &backend.APIError{Status: 404}).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mocks.NewMockSuborderBackend(t)
			j := mocks.NewMockJournal(t)
			r := mocks.NewMockActiveSetRefresher(t)
			tc.mockBehavior(b, j, r)

			positions := service.NewPositions()
			if tc.position != nil {
				positions.Set(riderActor.ID, *tc.position)
			}

			svc := service.NewHandoffService(newLogger(), b, handoff.NewMachine(geo.DefaultRadius), positions, j, r)
			sub, err := svc.Apply(context.Background(), tc.actor, 100, tc.action)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantMsg != "" {
					assert.Contains(t, err.Error(), tc.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, sub.Status)
		})
	}
}

func TestHandoffService_Suborders(t *testing.T) {
	t.Run("only riders have assigned suborders", func(t *testing.T) {
		svc := service.NewHandoffService(newLogger(), mocks.NewMockSuborderBackend(t), handoff.NewMachine(0),
			service.NewPositions(), mocks.NewMockJournal(t), nil)

		_, err := svc.Suborders(context.Background(), vendorActor)
		assert.ErrorIs(t, err, entities.ErrNoRiderContext)
	})

	t.Run("pickup is enabled once the rider is close", func(t *testing.T) {
		b := mocks.NewMockSuborderBackend(t)
		b.EXPECT().AssignedSuborders(mock.Anything, int64(7)).
			Return([]entities.Suborder{suborderIn(entities.StatusAssigned, 7)}, nil).Twice()

		positions := service.NewPositions()
		svc := service.NewHandoffService(newLogger(), b, handoff.NewMachine(0), positions, mocks.NewMockJournal(t), nil)

		pickup := func() handoff.ActionState {
			views, err := svc.Suborders(context.Background(), riderActor)
			require.NoError(t, err)
			require.Len(t, views, 1)
			for _, a := range views[0].Actions {
				if a.Action == handoff.ActionPickup {
					return a
				}
			}
			t.Fatal("pickup action missing")
			return handoff.ActionState{}
		}

		positions.Set(7, farPoint)
		assert.False(t, pickup().Enabled)

		positions.Set(7, shopPoint)
		assert.True(t, pickup().Enabled)
	})
}

func TestHandoffService_History(t *testing.T) {
	j := mocks.NewMockJournal(t)
	j.EXPECT().ListActions(mock.Anything, int64(100)).
		Return([]entities.ActionRecord{{SuborderID: 100, Action: "pickup", Outcome: entities.OutcomeApplied}}, nil).Once()

	svc := service.NewHandoffService(newLogger(), mocks.NewMockSuborderBackend(t), handoff.NewMachine(0), nil, j, nil)

	recs, err := svc.History(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "pickup", recs[0].Action)
}
