// Package handoff holds the suborder delivery state machine and the geofence gates
// that decide which rider, vendor and customer actions are enabled.
package handoff

import (
	"fmt"
	"slices"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
)

type Action string

const (
	ActionStart          Action = "start"
	ActionReady          Action = "ready"
	ActionAccept         Action = "accept"
	ActionPickup         Action = "pickup"
	ActionHandover       Action = "handover"
	ActionDepart         Action = "depart"
	ActionDeliver        Action = "deliver"
	ActionCancel         Action = "cancel"
	ActionConfirmPayment Action = "confirm-payment"
)

// Actions lists every action in the order they appear along the delivery path.
var Actions = []Action{
	ActionStart, ActionReady, ActionAccept, ActionPickup, ActionHandover,
	ActionDepart, ActionDeliver, ActionCancel, ActionConfirmPayment,
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !slices.Contains(Actions, a) {
		return "", fmt.Errorf("%w: %q", entities.ErrUnknownAction, s)
	}
	return a, nil
}

type gate int

const (
	gateNone gate = iota
	gatePickup
	gateDelivery
)

type transition struct {
	from   []entities.Status
	to     entities.Status
	actors []entities.Role
	gate   gate

	requireUnassigned bool
	requireOwnRider   bool
}

var nonTerminal = []entities.Status{
	entities.StatusPending,
	entities.StatusInProgress,
	entities.StatusReady,
	entities.StatusAssigned,
	entities.StatusPicked,
	entities.StatusHandoverConfirmed,
	entities.StatusInTransit,
}

var transitions = map[Action]transition{
	ActionStart: {
		from:   []entities.Status{entities.StatusPending},
		to:     entities.StatusInProgress,
		actors: []entities.Role{entities.RoleVendor},
	},
	ActionReady: {
		from:   []entities.Status{entities.StatusInProgress},
		to:     entities.StatusReady,
		actors: []entities.Role{entities.RoleVendor},
	},
	ActionAccept: {
		from:              []entities.Status{entities.StatusReady},
		to:                entities.StatusAssigned,
		actors:            []entities.Role{entities.RoleRider},
		requireUnassigned: true,
	},
	ActionPickup: {
		from:            []entities.Status{entities.StatusAssigned},
		to:              entities.StatusPicked,
		actors:          []entities.Role{entities.RoleRider},
		gate:            gatePickup,
		requireOwnRider: true,
	},
	ActionHandover: {
		from:   []entities.Status{entities.StatusPicked},
		to:     entities.StatusHandoverConfirmed,
		actors: []entities.Role{entities.RoleVendor},
	},
	ActionDepart: {
		from:            []entities.Status{entities.StatusHandoverConfirmed},
		to:              entities.StatusInTransit,
		actors:          []entities.Role{entities.RoleRider},
		requireOwnRider: true,
	},
	ActionDeliver: {
		from:            []entities.Status{entities.StatusHandoverConfirmed, entities.StatusInTransit},
		to:              entities.StatusDelivered,
		actors:          []entities.Role{entities.RoleRider},
		gate:            gateDelivery,
		requireOwnRider: true,
	},
	ActionCancel: {
		from:   nonTerminal,
		to:     entities.StatusCancelled,
		actors: []entities.Role{entities.RoleVendor, entities.RoleAdmin},
	},
}

// paymentSteps maps the confirming role to the payment status it moves from and to.
var paymentSteps = map[entities.Role][2]entities.PaymentStatus{
	entities.RoleCustomer: {entities.PaymentPending, entities.PaymentConfirmedByCustomer},
	entities.RoleRider:    {entities.PaymentConfirmedByCustomer, entities.PaymentConfirmedByDeliveryboy},
	entities.RoleVendor:   {entities.PaymentConfirmedByDeliveryboy, entities.PaymentConfirmedByVendor},
}

type Machine struct {
	radius float64
}

func NewMachine(radius float64) *Machine {
	if radius <= 0 {
		radius = geo.DefaultRadius
	}
	return &Machine{radius: radius}
}

func (m *Machine) Radius() float64 {
	return m.radius
}

// CanTransition reports whether the delivery status may move from one status to another.
// Moves are forward-only; cancelled is reachable from every non-terminal status.
func (m *Machine) CanTransition(from, to entities.Status) bool {
	if from.Terminal() || from.Rank() < 0 {
		return false
	}
	for _, t := range transitions {
		if t.to == to && slices.Contains(t.from, from) {
			return true
		}
	}
	return false
}

// Target returns the delivery status an action leads to. It is empty for payment confirmation.
func Target(action Action) entities.Status {
	return transitions[action].to
}

// PaymentTarget returns the payment status a role's confirmation leads to.
func PaymentTarget(role entities.Role) (entities.PaymentStatus, bool) {
	step, ok := paymentSteps[role]
	return step[1], ok
}

// Check validates an action against the current server state, the actor and the rider position.
// pos is nil when no position has been reported. A nil error means the backend call may be issued.
func (m *Machine) Check(sub entities.Suborder, action Action, actor entities.Actor, pos *entities.Position) error {
	if action == ActionConfirmPayment {
		return m.checkPayment(sub, actor)
	}

	t, ok := transitions[action]
	if !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnknownAction, action)
	}

	if !slices.Contains(t.from, sub.Status) {
		return fmt.Errorf("%w: cannot %s a suborder in status %s", entities.ErrInvalidTransition, action, sub.Status)
	}
	if !slices.Contains(t.actors, actor.Role) {
		return fmt.Errorf("%w: %s cannot %s", entities.ErrActorNotAllowed, actor.Role, action)
	}
	if err := checkVendor(sub, actor); err != nil {
		return err
	}
	if t.requireUnassigned && sub.RiderID != 0 {
		return entities.ErrAlreadyAssigned
	}
	if t.requireOwnRider && sub.RiderID != actor.ID {
		return entities.ErrNotAssignedRider
	}

	switch t.gate {
	case gatePickup:
		return m.checkGate(pos, sub.Pickup.Point)
	case gateDelivery:
		return m.checkGate(pos, sub.Delivery.Point)
	}
	return nil
}

func (m *Machine) checkGate(pos *entities.Position, target geo.Point) error {
	if pos == nil {
		return entities.ErrNoPosition
	}
	if d := geo.Distance(pos.Point, target); d > m.radius {
		return fmt.Errorf("%w: %.0fm away, limit %.0fm", entities.ErrOutOfRange, d, m.radius)
	}
	return nil
}

func (m *Machine) checkPayment(sub entities.Suborder, actor entities.Actor) error {
	step, ok := paymentSteps[actor.Role]
	if !ok {
		return fmt.Errorf("%w: %s cannot confirm payment", entities.ErrActorNotAllowed, actor.Role)
	}
	if sub.Status == entities.StatusCancelled {
		return fmt.Errorf("%w: suborder is cancelled", entities.ErrInvalidTransition)
	}
	if sub.PaymentStatus != step[0] {
		return fmt.Errorf("%w: payment is %s, %s confirms after %s",
			entities.ErrInvalidTransition, sub.PaymentStatus, actor.Role, step[0])
	}

	switch actor.Role {
	case entities.RoleCustomer:
		if sub.CustomerID != actor.ID {
			return fmt.Errorf("%w: suborder belongs to another customer", entities.ErrActorNotAllowed)
		}
	case entities.RoleRider:
		if sub.RiderID != actor.ID {
			return entities.ErrNotAssignedRider
		}
	case entities.RoleVendor:
		return checkVendor(sub, actor)
	}
	return nil
}

// checkVendor rejects vendors acting on another vendor's suborder. Ownership is
// left to the backend when the suborder carries no vendor id.
func checkVendor(sub entities.Suborder, actor entities.Actor) error {
	if actor.Role != entities.RoleVendor || sub.VendorID == 0 || sub.VendorID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: suborder belongs to another vendor", entities.ErrActorNotAllowed)
}

type ActionState struct {
	Action  Action
	Enabled bool
	Reason  string
}

// Available evaluates every action the actor's role may ever perform on the suborder.
// The result depends only on the arguments, so a fresh position re-enables gated actions immediately.
func (m *Machine) Available(sub entities.Suborder, actor entities.Actor, pos *entities.Position) []ActionState {
	states := make([]ActionState, 0, len(Actions))
	for _, a := range Actions {
		if !allowedRole(a, actor.Role) {
			continue
		}
		st := ActionState{Action: a, Enabled: true}
		if err := m.Check(sub, a, actor, pos); err != nil {
			st.Enabled = false
			st.Reason = err.Error()
		}
		states = append(states, st)
	}
	return states
}

func allowedRole(a Action, role entities.Role) bool {
	if a == ActionConfirmPayment {
		_, ok := paymentSteps[role]
		return ok
	}
	return slices.Contains(transitions[a].actors, role)
}
