package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/seq"
	"github.com/go-playground/validator/v10"
)

type CartBackend interface {
	GetCustomer(ctx context.Context, userID int64) (entities.CustomerProfile, error)
	GetCartDetails(ctx context.Context, customerID int64) (entities.Cart, []entities.CartItem, error)
	CreateCart(ctx context.Context, customerID int64) (int64, error)
	AddCartItem(ctx context.Context, cartID int64, req entities.AddItemRequest) error
	RemoveCartItem(ctx context.Context, customerID, cartItemID int64) error
	ClearCart(ctx context.Context, customerID int64) error
}

type cartState struct {
	view entities.CartView
	err  error
}

// CartService keeps the last known cart view per customer and a single error slot.
// The server stays authoritative: every mutation is followed by a full reload
// and nothing is merged optimistically.
type CartService struct {
	logger   *slog.Logger
	backend  CartBackend
	validate *validator.Validate
	guard    *seq.Guard

	mu     sync.Mutex
	states map[int64]*cartState
}

func NewCartService(logger *slog.Logger, backend CartBackend) *CartService {
	return &CartService{
		logger:   logger.With(slog.String("service", "cart")),
		backend:  backend,
		validate: validator.New(),
		guard:    seq.New(),
		states:   make(map[int64]*cartState),
	}
}

func (s *CartService) ResolveCustomerContext(ctx context.Context, userID int64) (entities.CustomerProfile, error) {
	profile, err := s.backend.GetCustomer(ctx, userID)
	if err != nil {
		return entities.CustomerProfile{}, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if profile.CustomerID == 0 {
		return entities.CustomerProfile{}, entities.ErrNoCustomerContext
	}
	return profile, nil
}

// EnsureCart provisions the customer's pending cart. The backend returns the
// existing cart when one is already there.
func (s *CartService) EnsureCart(ctx context.Context, customerID int64) (int64, error) {
	if customerID == 0 {
		return 0, entities.ErrNoCustomerContext
	}
	id, err := s.backend.CreateCart(ctx, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure cart: %w", err)
	}
	return id, nil
}

// LoadCart fetches the cart and replaces the held view. A missing cart is provisioned
// and reported as empty. Responses that arrive after a newer reload has been applied are dropped.
func (s *CartService) LoadCart(ctx context.Context, customerID int64) (entities.CartView, bool) {
	if customerID == 0 {
		s.fail(ctx, customerID, entities.ErrNoCustomerContext)
		return entities.EmptyCartView(0), false
	}

	n := s.guard.Next(guardKey(customerID))

	cart, items, err := s.backend.GetCartDetails(ctx, customerID)
	if errors.Is(err, entities.ErrNotFound) {
		id, err := s.EnsureCart(ctx, customerID)
		if err != nil {
			s.fail(ctx, customerID, err)
			return s.View(customerID), false
		}
		view := entities.EmptyCartView(customerID)
		view.Cart.ID = id
		return s.apply(customerID, n, view), true
	}
	if err != nil {
		s.fail(ctx, customerID, fmt.Errorf("failed to load cart: %w", err))
		return s.View(customerID), false
	}

	return s.apply(customerID, n, entities.NewCartView(cart, items)), true
}

func (s *CartService) AddItem(ctx context.Context, req entities.AddItemRequest) bool {
	if req.CustomerID == 0 {
		s.fail(ctx, 0, entities.ErrNoCustomerContext)
		return false
	}
	if err := s.validateItem(req); err != nil {
		s.fail(ctx, req.CustomerID, err)
		return false
	}

	cartID, err := s.EnsureCart(ctx, req.CustomerID)
	if err != nil {
		s.fail(ctx, req.CustomerID, err)
		return false
	}

	if err := s.backend.AddCartItem(ctx, cartID, req); err != nil {
		s.fail(ctx, req.CustomerID, fmt.Errorf("failed to add item: %w", err))
		return false
	}

	_, ok := s.LoadCart(ctx, req.CustomerID)
	return ok
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, cartItemID int64) bool {
	if customerID == 0 {
		s.fail(ctx, 0, entities.ErrNoCustomerContext)
		return false
	}
	if cartItemID <= 0 {
		s.fail(ctx, customerID, fmt.Errorf("%w: cart item id is required", entities.ErrValidation))
		return false
	}

	if err := s.backend.RemoveCartItem(ctx, customerID, cartItemID); err != nil {
		s.fail(ctx, customerID, fmt.Errorf("failed to remove item: %w", err))
		return false
	}

	_, ok := s.LoadCart(ctx, customerID)
	return ok
}

// ClearCart empties the cart on the server and zeroes the held view without a reload.
func (s *CartService) ClearCart(ctx context.Context, customerID int64) bool {
	if customerID == 0 {
		s.fail(ctx, 0, entities.ErrNoCustomerContext)
		return false
	}

	n := s.guard.Next(guardKey(customerID))

	if err := s.backend.ClearCart(ctx, customerID); err != nil {
		s.fail(ctx, customerID, fmt.Errorf("failed to clear cart: %w", err))
		return false
	}

	view := s.View(customerID)
	cleared := entities.EmptyCartView(customerID)
	cleared.Cart.ID = view.Cart.ID
	s.apply(customerID, n, cleared)
	return true
}

// View returns the last applied cart view, or an empty one if nothing was loaded yet.
func (s *CartService) View(customerID int64) entities.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.states[customerID]; ok {
		return st.view
	}
	return entities.EmptyCartView(customerID)
}

func (s *CartService) LastError(customerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.states[customerID]; ok {
		return st.err
	}
	return nil
}

// Forget drops everything held for the customer.
func (s *CartService) Forget(customerID int64) {
	s.guard.Forget(guardKey(customerID))

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, customerID)
}

func (s *CartService) validateItem(req entities.AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", entities.ErrValidation)
	}
	return nil
}

// apply stores view if n is the newest reload and clears the error slot.
// It returns the view that is current afterwards.
func (s *CartService) apply(customerID int64, n uint64, view entities.CartView) entities.CartView {
	applied := s.guard.Apply(guardKey(customerID), n, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.states[customerID] = &cartState{view: view}
	})
	if !applied {
		s.logger.Debug("stale cart response dropped", slog.Int64("customer_id", customerID), slog.Uint64("seq", n))
		return s.View(customerID)
	}
	cartOperations.WithLabelValues("ok").Inc()
	return view
}

func (s *CartService) fail(ctx context.Context, customerID int64, err error) {
	cartOperations.WithLabelValues("failed").Inc()
	s.logger.WarnContext(ctx, "cart operation failed", slog.Int64("customer_id", customerID), slog.Any("error", err))

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[customerID]
	if !ok {
		st = &cartState{view: entities.EmptyCartView(customerID)}
		s.states[customerID] = st
	}
	st.err = err
}

func guardKey(customerID int64) string {
	return strconv.FormatInt(customerID, 10)
}
