package handler

import (
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Role   string `json:"role" validate:"required,oneof=customer vendor rider admin organization" example:"rider"`
	UserID int64  `json:"user_id" validate:"required,gt=0" example:"12"`
}

type Session struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	UserID     int64  `json:"user_id"`
	CustomerID int64  `json:"customer_id,omitempty"`
	RiderID    int64  `json:"rider_id,omitempty"`
	VendorID   int64  `json:"vendor_id,omitempty"`
}

func SessionToJSON(s session.Session) Session {
	return Session{
		Token:      s.Token,
		Role:       string(s.Role),
		UserID:     s.UserID,
		CustomerID: s.CustomerID,
		RiderID:    s.RiderID,
		VendorID:   s.VendorID,
	}
}

type CartItem struct {
	ID             int64           `json:"id"`
	CartSuborderID int64           `json:"cart_suborder_id"`
	ItemDetailID   int64           `json:"itemdetail_id"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price" swaggertype:"string" example:"150.00"`
	ShopID         int64           `json:"shop_id"`
	BranchID       int64           `json:"branch_id"`
	VendorID       int64           `json:"vendor_id"`
}

type Cart struct {
	ID          int64           `json:"cart_id"`
	CustomerID  int64           `json:"customer_id"`
	Status      string          `json:"status"`
	Items       []CartItem      `json:"items"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"300.00"`
}

func CartViewToJSON(v entities.CartView) Cart {
	items := make([]CartItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, CartItem{
			ID:             it.ID,
			CartSuborderID: it.CartSuborderID,
			ItemDetailID:   it.ItemDetailID,
			Quantity:       it.Quantity,
			Price:          it.Price,
			ShopID:         it.ShopID,
			BranchID:       it.BranchID,
			VendorID:       it.VendorID,
		})
	}
	return Cart{
		ID:          v.Cart.ID,
		CustomerID:  v.Cart.CustomerID,
		Status:      v.Cart.Status,
		Items:       items,
		Count:       v.Count,
		TotalAmount: v.Total,
	}
}

type AddItemRequest struct {
	VendorID     int64           `json:"vendor_id" validate:"required,gt=0"`
	ShopID       int64           `json:"shop_id" validate:"required,gt=0"`
	BranchID     int64           `json:"branch_id" validate:"required,gt=0"`
	ItemDetailID int64           `json:"itemdetail_id" validate:"required,gt=0"`
	Quantity     int             `json:"quantity" validate:"required,gte=1"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"150.00"`
}

func AddItemRequestToEntity(customerID int64, r AddItemRequest) entities.AddItemRequest {
	return entities.AddItemRequest{
		CustomerID:   customerID,
		VendorID:     r.VendorID,
		ShopID:       r.ShopID,
		BranchID:     r.BranchID,
		ItemDetailID: r.ItemDetailID,
		Quantity:     r.Quantity,
		Price:        r.Price,
	}
}

type PositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90" example:"24.8607"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180" example:"67.0011"`
}

type Position struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

type PushFailure struct {
	SuborderID int64  `json:"suborder_id"`
	Error      string `json:"error"`
}

type BroadcastResult struct {
	Succeeded []int64       `json:"succeeded"`
	Failed    []PushFailure `json:"failed"`
}

func BroadcastResultToJSON(r service.BroadcastResult) BroadcastResult {
	res := BroadcastResult{Succeeded: r.Succeeded, Failed: make([]PushFailure, 0, len(r.Failed))}
	if res.Succeeded == nil {
		res.Succeeded = []int64{}
	}
	for _, f := range r.Failed {
		res.Failed = append(res.Failed, PushFailure{SuborderID: f.SuborderID, Error: f.Error})
	}
	return res
}

type PositionResponse struct {
	Position Position        `json:"position"`
	Tracking BroadcastResult `json:"tracking"`
}

type RetryRequest struct {
	SuborderIDs []int64 `json:"suborder_ids" validate:"dive,gt=0"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type ActionState struct {
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

type Suborder struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"string"`
	Pickup        Location        `json:"pickup"`
	Delivery      Location        `json:"delivery"`
	ShopID        int64           `json:"shop_id"`
	BranchID      int64           `json:"branch_id"`
	VendorID      int64           `json:"vendor_id,omitempty"`
	CustomerID    int64           `json:"customer_id"`
	RiderID       int64           `json:"rider_id,omitempty"`
	Actions       []ActionState   `json:"actions,omitempty"`
}

func locationToJSON(l entities.Location) Location {
	return Location{Latitude: l.Point.Lat, Longitude: l.Point.Lon, Address: l.Address}
}

func SuborderToJSON(s entities.Suborder, actions []handoff.ActionState) Suborder {
	res := Suborder{
		ID:            s.ID,
		OrderID:       s.OrderID,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		TotalAmount:   s.TotalAmount,
		Pickup:        locationToJSON(s.Pickup),
		Delivery:      locationToJSON(s.Delivery),
		ShopID:        s.ShopID,
		BranchID:      s.BranchID,
		VendorID:      s.VendorID,
		CustomerID:    s.CustomerID,
		RiderID:       s.RiderID,
	}
	for _, a := range actions {
		res.Actions = append(res.Actions, ActionState{Action: string(a.Action), Enabled: a.Enabled, Reason: a.Reason})
	}
	return res
}

func SuborderViewToJSON(v service.SuborderView) Suborder {
	return SuborderToJSON(v.Suborder, v.Actions)
}

type ActionRecord struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	ActorRole  string    `json:"actor_role"`
	ActorID    int64     `json:"actor_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ActionRecordToJSON(r entities.ActionRecord) ActionRecord {
	return ActionRecord{
		ID:         r.ID,
		Action:     r.Action,
		ActorRole:  string(r.ActorRole),
		ActorID:    r.ActorID,
		FromStatus: r.FromStatus,
		ToStatus:   r.ToStatus,
		Outcome:    string(r.Outcome),
		Error:      r.Error,
		CreatedAt:  r.CreatedAt,
	}
}

// SuborderEvent is the message published on the suborder events topic.
type SuborderEvent struct {
	SuborderID int64     `json:"suborder_id" validate:"required,gt=0"`
	RiderID    int64     `json:"rider_id" validate:"gte=0"`
	Status     string    `json:"status" validate:"required"`
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
}

func SuborderEventToEntity(e SuborderEvent) (entities.SuborderEvent, error) {
	st, err := entities.ParseStatus(e.Status)
	if err != nil {
		return entities.SuborderEvent{}, err
	}
	return entities.SuborderEvent{
		SuborderID: e.SuborderID,
		RiderID:    e.RiderID,
		Status:     st,
		OccurredAt: e.OccurredAt,
	}, nil
}
