package handoff_test

import (
	"testing"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shop     = geo.Point{Lat: 24.8607, Lon: 67.0011}
	customer = geo.Point{Lat: 24.9000, Lon: 67.0800}
	farAway  = geo.Point{Lat: 24.8700, Lon: 67.0100}

	rider  = entities.Actor{Role: entities.RoleRider, ID: 7}
	vendor = entities.Actor{Role: entities.RoleVendor, ID: 3}
	rival  = entities.Actor{Role: entities.RoleVendor, ID: 4}
	admin  = entities.Actor{Role: entities.RoleAdmin, ID: 1}
	buyer  = entities.Actor{Role: entities.RoleCustomer, ID: 42}
)

func at(p geo.Point) *entities.Position {
	return &entities.Position{Point: p, CapturedAt: time.Now()}
}

func suborder(status entities.Status, riderID int64) entities.Suborder {
	return entities.Suborder{
		ID:            100,
		Status:        status,
		PaymentStatus: entities.PaymentPending,
		Pickup:        entities.Location{Point: shop, Address: "Shop"},
		Delivery:      entities.Location{Point: customer, Address: "Home"},
		VendorID:      3,
		CustomerID:    42,
		RiderID:       riderID,
	}
}

func withoutVendor(s entities.Suborder) entities.Suborder {
	s.VendorID = 0
	return s
}

func TestMachine_Check(t *testing.T) {
	m := handoff.NewMachine(geo.DefaultRadius)

	testCases := []struct {
		name    string
		sub     entities.Suborder
		action  handoff.Action
		actor   entities.Actor
		pos     *entities.Position
		wantErr error
	}{
		{name: "vendor starts pending", sub: suborder(entities.StatusPending, 0), action: handoff.ActionStart, actor: vendor},
		{name: "vendor marks ready", sub: suborder(entities.StatusInProgress, 0), action: handoff.ActionReady, actor: vendor},
		{name: "ready twice is rejected", sub: suborder(entities.StatusReady, 0), action: handoff.ActionReady, actor: vendor, wantErr: entities.ErrInvalidTransition},
		{name: "rider cannot start", sub: suborder(entities.StatusPending, 0), action: handoff.ActionStart, actor: rider, wantErr: entities.ErrActorNotAllowed},
		{name: "rider accepts unassigned", sub: suborder(entities.StatusReady, 0), action: handoff.ActionAccept, actor: rider},
		{name: "accept assigned is rejected", sub: suborder(entities.StatusReady, 9), action: handoff.ActionAccept, actor: rider, wantErr: entities.ErrAlreadyAssigned},
		{name: "pickup inside geofence", sub: suborder(entities.StatusAssigned, 7), action: handoff.ActionPickup, actor: rider, pos: at(shop)},
		{name: "pickup outside geofence", sub: suborder(entities.StatusAssigned, 7), action: handoff.ActionPickup, actor: rider, pos: at(farAway), wantErr: entities.ErrOutOfRange},
		{name: "pickup without position", sub: suborder(entities.StatusAssigned, 7), action: handoff.ActionPickup, actor: rider, wantErr: entities.ErrNoPosition},
		{name: "pickup by other rider", sub: suborder(entities.StatusAssigned, 8), action: handoff.ActionPickup, actor: rider, pos: at(shop), wantErr: entities.ErrNotAssignedRider},
		{name: "vendor confirms handover", sub: suborder(entities.StatusPicked, 7), action: handoff.ActionHandover, actor: vendor},
		{name: "rider departs", sub: suborder(entities.StatusHandoverConfirmed, 7), action: handoff.ActionDepart, actor: rider},
		{name: "deliver at customer", sub: suborder(entities.StatusInTransit, 7), action: handoff.ActionDeliver, actor: rider, pos: at(customer)},
		{name: "deliver straight after handover", sub: suborder(entities.StatusHandoverConfirmed, 7), action: handoff.ActionDeliver, actor: rider, pos: at(customer)},
		{name: "deliver at shop is out of range", sub: suborder(entities.StatusInTransit, 7), action: handoff.ActionDeliver, actor: rider, pos: at(shop), wantErr: entities.ErrOutOfRange},
		{name: "admin cancels", sub: suborder(entities.StatusAssigned, 7), action: handoff.ActionCancel, actor: admin},
		{name: "cancel delivered is rejected", sub: suborder(entities.StatusDelivered, 7), action: handoff.ActionCancel, actor: vendor, wantErr: entities.ErrInvalidTransition},
		{name: "rider cannot cancel", sub: suborder(entities.StatusAssigned, 7), action: handoff.ActionCancel, actor: rider, wantErr: entities.ErrActorNotAllowed},
		{name: "other vendor cannot start", sub: suborder(entities.StatusPending, 0), action: handoff.ActionStart, actor: rival, wantErr: entities.ErrActorNotAllowed},
		{name: "other vendor cannot confirm handover", sub: suborder(entities.StatusPicked, 7), action: handoff.ActionHandover, actor: rival, wantErr: entities.ErrActorNotAllowed},
		{name: "other vendor cannot cancel", sub: suborder(entities.StatusReady, 0), action: handoff.ActionCancel, actor: rival, wantErr: entities.ErrActorNotAllowed},
		{name: "vendor without reported owner", sub: withoutVendor(suborder(entities.StatusPending, 0)), action: handoff.ActionStart, actor: rival},
		{name: "unknown action", sub: suborder(entities.StatusPending, 0), action: handoff.Action("teleport"), actor: vendor, wantErr: entities.ErrUnknownAction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.Check(tc.sub, tc.action, tc.actor, tc.pos)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMachine_CheckPayment(t *testing.T) {
	m := handoff.NewMachine(geo.DefaultRadius)

	withPayment := func(ps entities.PaymentStatus) entities.Suborder {
		s := suborder(entities.StatusDelivered, 7)
		s.PaymentStatus = ps
		return s
	}

	assert.NoError(t, m.Check(withPayment(entities.PaymentPending), handoff.ActionConfirmPayment, buyer, nil))
	assert.NoError(t, m.Check(withPayment(entities.PaymentConfirmedByCustomer), handoff.ActionConfirmPayment, rider, nil))
	assert.NoError(t, m.Check(withPayment(entities.PaymentConfirmedByDeliveryboy), handoff.ActionConfirmPayment, vendor, nil))

	assert.ErrorIs(t, m.Check(withPayment(entities.PaymentConfirmedByVendor), handoff.ActionConfirmPayment, buyer, nil), entities.ErrInvalidTransition)
	assert.ErrorIs(t, m.Check(withPayment(entities.PaymentPending), handoff.ActionConfirmPayment, vendor, nil), entities.ErrInvalidTransition)
	assert.ErrorIs(t, m.Check(withPayment(entities.PaymentPending), handoff.ActionConfirmPayment, admin, nil), entities.ErrActorNotAllowed)
	assert.ErrorIs(t, m.Check(withPayment(entities.PaymentConfirmedByDeliveryboy), handoff.ActionConfirmPayment, rival, nil), entities.ErrActorNotAllowed)

	other := entities.Actor{Role: entities.RoleCustomer, ID: 43}
	assert.ErrorIs(t, m.Check(withPayment(entities.PaymentPending), handoff.ActionConfirmPayment, other, nil), entities.ErrActorNotAllowed)
}

func TestMachine_CanTransition(t *testing.T) {
	m := handoff.NewMachine(0)

	assert.True(t, m.CanTransition(entities.StatusPending, entities.StatusInProgress))
	assert.True(t, m.CanTransition(entities.StatusInTransit, entities.StatusDelivered))
	assert.True(t, m.CanTransition(entities.StatusPicked, entities.StatusCancelled))

	assert.False(t, m.CanTransition(entities.StatusReady, entities.StatusPending))
	assert.False(t, m.CanTransition(entities.StatusDelivered, entities.StatusCancelled))
	assert.False(t, m.CanTransition(entities.StatusCancelled, entities.StatusPending))
	assert.False(t, m.CanTransition(entities.StatusPending, entities.StatusReady))
}

func TestMachine_NeverMovesBackward(t *testing.T) {
	m := handoff.NewMachine(0)
	all := []entities.Status{
		entities.StatusPending, entities.StatusInProgress, entities.StatusReady, entities.StatusAssigned,
		entities.StatusPicked, entities.StatusHandoverConfirmed, entities.StatusInTransit,
		entities.StatusDelivered, entities.StatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			if m.CanTransition(from, to) {
				assert.Greater(t, to.Rank(), from.Rank(), "%s -> %s", from, to)
			}
		}
	}
}

func TestMachine_Available_ReevaluatesOnEveryPosition(t *testing.T) {
	m := handoff.NewMachine(geo.DefaultRadius)
	sub := suborder(entities.StatusAssigned, 7)

	pickupEnabled := func(states []handoff.ActionState) bool {
		for _, s := range states {
			if s.Action == handoff.ActionPickup {
				return s.Enabled
			}
		}
		t.Fatalf("pickup action missing")
		return false
	}

	assert.False(t, pickupEnabled(m.Available(sub, rider, nil)))
	assert.False(t, pickupEnabled(m.Available(sub, rider, at(farAway))))
	assert.True(t, pickupEnabled(m.Available(sub, rider, at(shop))))
	assert.False(t, pickupEnabled(m.Available(sub, rider, at(farAway))))
}

func TestMachine_Available_OnlyRoleActions(t *testing.T) {
	m := handoff.NewMachine(geo.DefaultRadius)

	states := m.Available(suborder(entities.StatusPending, 0), vendor, nil)

	got := make([]handoff.Action, 0, len(states))
	for _, s := range states {
		got = append(got, s.Action)
	}
	assert.Equal(t, []handoff.Action{
		handoff.ActionStart, handoff.ActionReady, handoff.ActionHandover,
		handoff.ActionCancel, handoff.ActionConfirmPayment,
	}, got)
	require.NotEmpty(t, states)
	assert.True(t, states[0].Enabled)
	assert.False(t, states[1].Enabled)
	assert.NotEmpty(t, states[1].Reason)
}

func TestParseAction(t *testing.T) {
	a, err := handoff.ParseAction("pickup")
	require.NoError(t, err)
	assert.Equal(t, handoff.ActionPickup, a)

	_, err = handoff.ParseAction("fly")
	assert.ErrorIs(t, err, entities.ErrUnknownAction)
}
