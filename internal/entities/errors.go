package entities

import "errors"

var (
	// context errors, unrecoverable without a new login
	ErrNoCustomerContext = errors.New("customer context is not resolved")
	ErrNoRiderContext    = errors.New("rider context is not resolved")
	ErrUnauthorized      = errors.New("session not found")

	// validation errors, the server message is surfaced verbatim
	ErrValidation = errors.New("validation failed")

	// transient network or server errors
	ErrBackend = errors.New("backend request failed")

	ErrNotFound = errors.New("not found")

	// state machine refusals, never sent to the server
	ErrInvalidTransition = errors.New("transition is not allowed from current status")
	ErrActorNotAllowed   = errors.New("actor is not allowed to perform this action")
	ErrAlreadyAssigned   = errors.New("suborder is already assigned to a rider")
	ErrNotAssignedRider  = errors.New("suborder is assigned to another rider")
	ErrUnknownAction     = errors.New("unknown action")

	// geofence gate refusals
	ErrNoPosition = errors.New("rider position is unknown")
	ErrOutOfRange = errors.New("rider is outside of the geofence")
)
