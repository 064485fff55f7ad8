package entities

import "github.com/shopspring/decimal"

const CartStatusPending = "pending"

type CustomerProfile struct {
	UserID     int64
	CustomerID int64
	Name       string
}

type Cart struct {
	ID          int64
	CustomerID  int64
	Status      string
	TotalAmount decimal.Decimal
}

// CartItem is one line of a cart. Shop, branch and vendor ids are copied from the
// cart suborder the line belongs to.
type CartItem struct {
	ID             int64
	CartSuborderID int64
	ItemDetailID   int64
	Quantity       int
	Price          decimal.Decimal

	ShopID   int64
	BranchID int64
	VendorID int64
}

// CartView is what the customer sees as "my cart". Total is always the server total_amount.
type CartView struct {
	Cart  Cart
	Items []CartItem
	Count int
	Total decimal.Decimal
}

func EmptyCartView(customerID int64) CartView {
	return CartView{
		Cart:  Cart{CustomerID: customerID, Status: CartStatusPending},
		Items: []CartItem{},
		Total: decimal.Zero,
	}
}

// NewCartView derives count from line quantities and takes the total from the cart as reported by the server.
func NewCartView(cart Cart, items []CartItem) CartView {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	if items == nil {
		items = []CartItem{}
	}
	return CartView{
		Cart:  cart,
		Items: items,
		Count: count,
		Total: cart.TotalAmount,
	}
}

type AddItemRequest struct {
	CustomerID   int64           `validate:"required,gt=0"`
	VendorID     int64           `validate:"required,gt=0"`
	ShopID       int64           `validate:"required,gt=0"`
	BranchID     int64           `validate:"required,gt=0"`
	ItemDetailID int64           `validate:"required,gt=0"`
	Quantity     int             `validate:"required,gte=1"`
	Price        decimal.Decimal `validate:"-"`
}
