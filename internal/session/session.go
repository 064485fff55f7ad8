// Package session replaces ad-hoc per-role identity lookups with one typed session
// created at login and destroyed at logout.
package session

import (
	"context"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
)

type Session struct {
	Token      string        `json:"token"`
	Role       entities.Role `json:"role"`
	UserID     int64         `json:"user_id"`
	CustomerID int64         `json:"customer_id,omitempty"`
	RiderID    int64         `json:"rider_id,omitempty"`
	VendorID   int64         `json:"vendor_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Actor identifies the session owner by the id the backend knows them under.
func (s Session) Actor() entities.Actor {
	switch s.Role {
	case entities.RoleCustomer:
		return entities.Actor{Role: s.Role, ID: s.CustomerID}
	case entities.RoleRider:
		return entities.Actor{Role: s.Role, ID: s.RiderID}
	case entities.RoleVendor:
		return entities.Actor{Role: s.Role, ID: s.VendorID}
	}
	return entities.Actor{Role: s.Role, ID: s.UserID}
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
