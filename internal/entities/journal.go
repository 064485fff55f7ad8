package entities

import "time"

type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// ActionRecord is one attempted suborder action as seen by the gateway.
type ActionRecord struct {
	ID         int64
	SuborderID int64
	Action     string
	ActorRole  Role
	ActorID    int64
	FromStatus string
	ToStatus   string
	Outcome    Outcome
	Error      string
	CreatedAt  time.Time
}

// PushRecord is the outcome of one live-tracking push. Coordinates are not kept.
type PushRecord struct {
	RiderID    int64
	SuborderID int64
	OK         bool
	Error      string
	PushedAt   time.Time
}
