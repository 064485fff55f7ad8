package backend

import (
	"fmt"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
}

type Cart struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type CartLine struct {
	ID           int64           `json:"id"`
	ItemDetailID int64           `json:"itemdetail_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type CartSuborder struct {
	ID       int64      `json:"id"`
	ShopID   int64      `json:"shop_id"`
	BranchID int64      `json:"branch_id"`
	VendorID int64      `json:"vendor_id"`
	Items    []CartLine `json:"items"`
}

type CartDetails struct {
	Cart      Cart           `json:"cart"`
	Suborders []CartSuborder `json:"suborders"`
}

type createCartRequest struct {
	CustomerID int64 `json:"customer_id"`
}

type createCartResponse struct {
	Cart Cart `json:"cart"`
}

type addItemRequest struct {
	CustomerID   int64           `json:"customer_id"`
	CartID       int64           `json:"cart_id"`
	VendorID     int64           `json:"vendor_id"`
	ShopID       int64           `json:"shop_id"`
	BranchID     int64           `json:"branch_id"`
	ItemDetailID int64           `json:"itemdetail_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type removeItemRequest struct {
	CustomerID int64 `json:"customer_id"`
	CartItemID int64 `json:"cartitem_id"`
}

type clearCartRequest struct {
	CustomerID int64 `json:"customer_id"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type Suborder struct {
	ID               int64           `json:"id"`
	OrderID          int64           `json:"order_id"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PickupLocation   Location        `json:"pickup_location"`
	DeliveryLocation Location        `json:"delivery_location"`
	ShopID           int64           `json:"shop_id"`
	BranchID         int64           `json:"branch_id"`
	VendorID         int64           `json:"vendor_id"`
	CustomerID       int64           `json:"customer_id"`
	DeliveryboyID    *int64          `json:"deliveryboy_id"`
}

type assignedSubordersResponse struct {
	Suborders []Suborder `json:"suborders"`
}

type positionBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type acceptBody struct {
	DeliveryboyID int64 `json:"deliveryboys_ID"`
}

type departBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
}

type liveTrackingBody struct {
	CourierOrderID int64   `json:"courierorder_ID"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DeliveryboyID  int64   `json:"deliveryboys_ID"`
}

func CartDetailsToEntity(d CartDetails) (entities.Cart, []entities.CartItem) {
	cart := entities.Cart{
		ID:          d.Cart.ID,
		CustomerID:  d.Cart.CustomerID,
		Status:      d.Cart.Status,
		TotalAmount: d.Cart.TotalAmount,
	}

	items := make([]entities.CartItem, 0)
	for _, so := range d.Suborders {
		for _, line := range so.Items {
			items = append(items, entities.CartItem{
				ID:             line.ID,
				CartSuborderID: so.ID,
				ItemDetailID:   line.ItemDetailID,
				Quantity:       line.Quantity,
				Price:          line.Price,
				ShopID:         so.ShopID,
				BranchID:       so.BranchID,
				VendorID:       so.VendorID,
			})
		}
	}
	return cart, items
}

func LocationToEntity(l Location) entities.Location {
	return entities.Location{
		Point:   geo.Point{Lat: l.Latitude, Lon: l.Longitude},
		Address: l.Address,
	}
}

func SuborderToEntity(s Suborder) (entities.Suborder, error) {
	status, err := entities.ParseStatus(s.Status)
	if err != nil {
		return entities.Suborder{}, fmt.Errorf("suborder %d: %w", s.ID, err)
	}
	payment, err := entities.ParsePaymentStatus(s.PaymentStatus)
	if err != nil {
		return entities.Suborder{}, fmt.Errorf("suborder %d: %w", s.ID, err)
	}

	var riderID int64
	if s.DeliveryboyID != nil {
		riderID = *s.DeliveryboyID
	}

	return entities.Suborder{
		ID:            s.ID,
		OrderID:       s.OrderID,
		Status:        status,
		PaymentStatus: payment,
		TotalAmount:   s.TotalAmount,
		Pickup:        LocationToEntity(s.PickupLocation),
		Delivery:      LocationToEntity(s.DeliveryLocation),
		ShopID:        s.ShopID,
		BranchID:      s.BranchID,
		VendorID:      s.VendorID,
		CustomerID:    s.CustomerID,
		RiderID:       riderID,
	}, nil
}
