package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
)

func (c *Client) GetCustomer(ctx context.Context, userID int64) (entities.CustomerProfile, error) {
	var cust Customer
	path := "/customers/" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &cust); err != nil {
		return entities.CustomerProfile{}, fmt.Errorf("failed to get customer: %w", err)
	}
	if cust.CustomerID == 0 {
		cust.CustomerID = cust.ID
	}
	return entities.CustomerProfile{
		UserID:     userID,
		CustomerID: cust.CustomerID,
		Name:       cust.Name,
	}, nil
}

func (c *Client) GetCartDetails(ctx context.Context, customerID int64) (entities.Cart, []entities.CartItem, error) {
	q := url.Values{}
	q.Set("customer_id", strconv.FormatInt(customerID, 10))

	var details CartDetails
	if err := c.do(ctx, http.MethodGet, "/cart/details?"+q.Encode(), nil, &details); err != nil {
		return entities.Cart{}, nil, fmt.Errorf("failed to get cart details: %w", err)
	}
	cart, items := CartDetailsToEntity(details)
	return cart, items, nil
}

// CreateCart is create-or-fetch on the server side, so it is safe to call before every mutation.
func (c *Client) CreateCart(ctx context.Context, customerID int64) (int64, error) {
	var resp createCartResponse
	if err := c.do(ctx, http.MethodPost, "/cart/create", createCartRequest{CustomerID: customerID}, &resp); err != nil {
		return 0, fmt.Errorf("failed to create cart: %w", err)
	}
	return resp.Cart.ID, nil
}

func (c *Client) AddCartItem(ctx context.Context, cartID int64, req entities.AddItemRequest) error {
	body := addItemRequest{
		CustomerID:   req.CustomerID,
		CartID:       cartID,
		VendorID:     req.VendorID,
		ShopID:       req.ShopID,
		BranchID:     req.BranchID,
		ItemDetailID: req.ItemDetailID,
		Quantity:     req.Quantity,
		Price:        req.Price,
	}
	if err := c.do(ctx, http.MethodPost, "/cart/add-item", body, nil); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (c *Client) RemoveCartItem(ctx context.Context, customerID, cartItemID int64) error {
	body := removeItemRequest{CustomerID: customerID, CartItemID: cartItemID}
	if err := c.do(ctx, http.MethodPost, "/cart/remove-item", body, nil); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (c *Client) ClearCart(ctx context.Context, customerID int64) error {
	if err := c.do(ctx, http.MethodPost, "/cart/clear", clearCartRequest{CustomerID: customerID}, nil); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
