package entities

import (
	"fmt"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending           Status = "pending"
	StatusInProgress        Status = "in_progress"
	StatusReady             Status = "ready"
	StatusAssigned          Status = "assigned"
	StatusPicked            Status = "picked"
	StatusHandoverConfirmed Status = "handover_confirmed"
	StatusInTransit         Status = "in_transit"
	StatusDelivered         Status = "delivered"
	StatusCancelled         Status = "cancelled"
)

var statusRank = map[Status]int{
	StatusPending:           0,
	StatusInProgress:        1,
	StatusReady:             2,
	StatusAssigned:          3,
	StatusPicked:            4,
	StatusHandoverConfirmed: 5,
	StatusInTransit:         6,
	StatusDelivered:         7,
	StatusCancelled:         8,
}

// ParseStatus accepts the backend spellings, including "picked_up".
func ParseStatus(s string) (Status, error) {
	if s == "picked_up" {
		return StatusPicked, nil
	}
	st := Status(s)
	if _, ok := statusRank[st]; !ok {
		return "", fmt.Errorf("unknown suborder status %q", s)
	}
	return st, nil
}

// Rank is the position of the status along the forward delivery path.
func (s Status) Rank() int {
	r, ok := statusRank[s]
	if !ok {
		return -1
	}
	return r
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Tracked reports whether the rider's position should be broadcast for a suborder in this status.
func (s Status) Tracked() bool {
	return s == StatusAssigned || s == StatusHandoverConfirmed
}

type PaymentStatus string

const (
	PaymentPending                PaymentStatus = "pending"
	PaymentConfirmedByCustomer    PaymentStatus = "confirmed_by_customer"
	PaymentConfirmedByDeliveryboy PaymentStatus = "confirmed_by_deliveryboy"
	PaymentConfirmedByVendor      PaymentStatus = "confirmed_by_vendor"
)

var paymentRank = map[PaymentStatus]int{
	PaymentPending:                0,
	PaymentConfirmedByCustomer:    1,
	PaymentConfirmedByDeliveryboy: 2,
	PaymentConfirmedByVendor:      3,
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if s == "" {
		return PaymentPending, nil
	}
	ps := PaymentStatus(s)
	if _, ok := paymentRank[ps]; !ok {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return ps, nil
}

func (p PaymentStatus) Rank() int {
	r, ok := paymentRank[p]
	if !ok {
		return -1
	}
	return r
}

type Location struct {
	Point   geo.Point
	Address string
}

// Suborder is the per-shop slice of a customer order and the unit a rider handles.
type Suborder struct {
	ID            int64
	OrderID       int64
	Status        Status
	PaymentStatus PaymentStatus
	TotalAmount   decimal.Decimal

	Pickup   Location
	Delivery Location

	ShopID   int64
	BranchID int64
	// VendorID is zero when the backend does not report the owning vendor.
	VendorID   int64
	CustomerID int64
	// RiderID is zero while the suborder is unassigned.
	RiderID int64
}

// Position is the rider's self-reported location. It lives in process memory only.
type Position struct {
	Point      geo.Point
	CapturedAt time.Time
}

// SuborderEvent is a status change announced on the suborder events topic.
type SuborderEvent struct {
	SuborderID int64
	RiderID    int64
	Status     Status
	OccurredAt time.Time
}
