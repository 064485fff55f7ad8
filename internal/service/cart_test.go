package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/backend"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service"
	mocks "github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validItem() entities.AddItemRequest {
	return entities.AddItemRequest{
		CustomerID:   7,
		VendorID:     2,
		ShopID:       3,
		BranchID:     4,
		ItemDetailID: 55,
		Quantity:     2,
		Price:        decimal.NewFromInt(150),
	}
}

func TestCartService_LoadCart(t *testing.T) {
	testCases := []struct {
		name         string
		customerID   int64
		mockBehavior func(b *mocks.MockCartBackend)
		wantOK       bool
		wantCount    int
		wantTotal    decimal.Decimal
		wantErr      error
	}{
		{
			name:       "missing cart is provisioned and empty",
			customerID: 7,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().GetCartDetails(mock.Anything, int64(7)).
					Return(entities.Cart{}, nil, &backend.APIError{Status: 404, Message: "Cart not found"}).Once()
				b.EXPECT().CreateCart(mock.Anything, int64(7)).Return(int64(11), nil).Once()
			},
			wantOK:    true,
			wantCount: 0,
			wantTotal: decimal.Zero,
		},
		{
			name:       "count is the sum of quantities and total comes from the server",
			customerID: 7,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(
					entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(40)},
					[]entities.CartItem{
						{ID: 1, Quantity: 2, Price: decimal.NewFromInt(10)},
						{ID: 2, Quantity: 3, Price: decimal.NewFromInt(5)},
					},
					nil,
				).Once()
			},
			wantOK:    true,
			wantCount: 5,
			wantTotal: decimal.NewFromInt(40),
		},
		{
			name:       "backend failure",
			customerID: 7,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().GetCartDetails(mock.Anything, int64(7)).
					Return(entities.Cart{}, nil, &backend.APIError{Status: 500}).Once()
			},
			wantOK:    false,
			wantTotal: decimal.Zero,
			wantErr:   entities.ErrBackend,
		},
		{
			name:         "no customer context",
			customerID:   0,
			mockBehavior: func(b *mocks.MockCartBackend) {},
			wantOK:       false,
			wantTotal:    decimal.Zero,
			wantErr:      entities.ErrNoCustomerContext,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mocks.NewMockCartBackend(t)
			tc.mockBehavior(b)

			svc := service.NewCartService(newLogger(), b)
			view, ok := svc.LoadCart(context.Background(), tc.customerID)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantCount, view.Count)
			assert.True(t, tc.wantTotal.Equal(view.Total), "total %s, want %s", view.Total, tc.wantTotal)
			if tc.wantErr != nil {
				assert.ErrorIs(t, svc.LastError(tc.customerID), tc.wantErr)
				return
			}
			assert.NoError(t, svc.LastError(tc.customerID))
		})
	}
}

func TestCartService_LoadCart_DropsStaleResponse(t *testing.T) {
	b := mocks.NewMockCartBackend(t)
	svc := service.NewCartService(newLogger(), b)
	ctx := context.Background()

	stale := entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(100)}
	fresh := entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(250)}

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).
		RunAndReturn(func(ctx context.Context, id int64) (entities.Cart, []entities.CartItem, error) {
			// a newer reload completes while this one is in flight
			view, ok := svc.LoadCart(ctx, id)
			require.True(t, ok)
			require.True(t, view.Total.Equal(fresh.TotalAmount))
			return stale, nil, nil
		}).Once()
	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(fresh, nil, nil).Once()

	view, ok := svc.LoadCart(ctx, 7)
	require.True(t, ok)
	assert.True(t, view.Total.Equal(fresh.TotalAmount))
	assert.True(t, svc.View(7).Total.Equal(fresh.TotalAmount))
}

func TestCartService_Forget_DropsInFlightReload(t *testing.T) {
	b := mocks.NewMockCartBackend(t)
	svc := service.NewCartService(newLogger(), b)
	ctx := context.Background()

	before := entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(999)}
	after := entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(10)}

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(before, nil, nil).Times(3)
	for range 3 {
		_, ok := svc.LoadCart(ctx, 7)
		require.True(t, ok)
	}

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).
		RunAndReturn(func(ctx context.Context, id int64) (entities.Cart, []entities.CartItem, error) {
			// customer logs out while this reload is in flight
			svc.Forget(id)
			return before, nil, nil
		}).Once()
	_, _ = svc.LoadCart(ctx, 7)
	assert.True(t, svc.View(7).Total.IsZero())

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(after, nil, nil).Once()
	view, ok := svc.LoadCart(ctx, 7)
	require.True(t, ok)
	assert.True(t, view.Total.Equal(after.TotalAmount), "total %s", view.Total)
	assert.True(t, svc.View(7).Total.Equal(after.TotalAmount))
}

func TestCartService_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		req          func() entities.AddItemRequest
		mockBehavior func(b *mocks.MockCartBackend)
		wantOK       bool
		wantErr      error
		wantMsg      string
	}{
		{
			name: "added and reloaded",
			req:  validItem,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().CreateCart(mock.Anything, int64(7)).Return(int64(11), nil).Once()
				b.EXPECT().AddCartItem(mock.Anything, int64(11), validItem()).Return(nil).Once()
				b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(
					entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(300)},
					[]entities.CartItem{{ID: 1, ItemDetailID: 55, Quantity: 2, Price: decimal.NewFromInt(150)}},
					nil,
				).Once()
			},
			wantOK: true,
		},
		{
			name: "zero quantity never reaches the backend",
			req: func() entities.AddItemRequest {
				r := validItem()
				r.Quantity = 0
				return r
			},
			mockBehavior: func(b *mocks.MockCartBackend) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "missing item detail",
			req: func() entities.AddItemRequest {
				r := validItem()
				r.ItemDetailID = 0
				return r
			},
			mockBehavior: func(b *mocks.MockCartBackend) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "negative price",
			req: func() entities.AddItemRequest {
				r := validItem()
				r.Price = decimal.NewFromInt(-1)
				return r
			},
			mockBehavior: func(b *mocks.MockCartBackend) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "server message is surfaced",
			req:  validItem,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().CreateCart(mock.Anything, int64(7)).Return(int64(11), nil).Once()
				b.EXPECT().AddCartItem(mock.Anything, int64(11), mock.Anything).
					Return(&backend.APIError{Status: 422, Message: "Item out of stock"}).Once()
			},
			wantErr: entities.ErrValidation,
			wantMsg: "Item out of stock",
		},
		{
			name: "cart cannot be provisioned",
			req:  validItem,
			mockBehavior: func(b *mocks.MockCartBackend) {
				b.EXPECT().CreateCart(mock.Anything, int64(7)).Return(int64(0), errors.New("connection refused")).Once()
			},
			wantMsg: "connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mocks.NewMockCartBackend(t)
			tc.mockBehavior(b)

			svc := service.NewCartService(newLogger(), b)
			ok := svc.AddItem(context.Background(), tc.req())

			assert.Equal(t, tc.wantOK, ok)
			lastErr := svc.LastError(7)
			if tc.wantOK {
				assert.NoError(t, lastErr)
				assert.Equal(t, 2, svc.View(7).Count)
				return
			}
			require.Error(t, lastErr)
			if tc.wantErr != nil {
				assert.ErrorIs(t, lastErr, tc.wantErr)
			}
			if tc.wantMsg != "" {
				assert.Contains(t, lastErr.Error(), tc.wantMsg)
			}
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Run("removed and reloaded", func(t *testing.T) {
		b := mocks.NewMockCartBackend(t)
		b.EXPECT().RemoveCartItem(mock.Anything, int64(7), int64(1)).Return(nil).Once()
		b.EXPECT().GetCartDetails(mock.Anything, int64(7)).
			Return(entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.Zero}, nil, nil).Once()

		svc := service.NewCartService(newLogger(), b)
		assert.True(t, svc.RemoveItem(context.Background(), 7, 1))
		assert.Equal(t, 0, svc.View(7).Count)
	})

	t.Run("requires customer context", func(t *testing.T) {
		svc := service.NewCartService(newLogger(), mocks.NewMockCartBackend(t))
		assert.False(t, svc.RemoveItem(context.Background(), 0, 1))
		assert.ErrorIs(t, svc.LastError(0), entities.ErrNoCustomerContext)
	})

	t.Run("requires cart item id", func(t *testing.T) {
		svc := service.NewCartService(newLogger(), mocks.NewMockCartBackend(t))
		assert.False(t, svc.RemoveItem(context.Background(), 7, 0))
		assert.ErrorIs(t, svc.LastError(7), entities.ErrValidation)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	b := mocks.NewMockCartBackend(t)
	svc := service.NewCartService(newLogger(), b)
	ctx := context.Background()

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(
		entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(90)},
		[]entities.CartItem{{ID: 1, Quantity: 3, Price: decimal.NewFromInt(30)}},
		nil,
	).Once()
	b.EXPECT().ClearCart(mock.Anything, int64(7)).Return(nil).Once()

	_, ok := svc.LoadCart(ctx, 7)
	require.True(t, ok)
	require.Equal(t, 3, svc.View(7).Count)

	require.True(t, svc.ClearCart(ctx, 7))

	view := svc.View(7)
	assert.Equal(t, int64(11), view.Cart.ID)
	assert.Equal(t, 0, view.Count)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_ClearCart_FailureKeepsView(t *testing.T) {
	b := mocks.NewMockCartBackend(t)
	svc := service.NewCartService(newLogger(), b)
	ctx := context.Background()

	b.EXPECT().GetCartDetails(mock.Anything, int64(7)).Return(
		entities.Cart{ID: 11, CustomerID: 7, TotalAmount: decimal.NewFromInt(90)},
		[]entities.CartItem{{ID: 1, Quantity: 3, Price: decimal.NewFromInt(30)}},
		nil,
	).Once()
	b.EXPECT().ClearCart(mock.Anything, int64(7)).Return(&backend.APIError{Status: 503}).Once()

	_, ok := svc.LoadCart(ctx, 7)
	require.True(t, ok)

	assert.False(t, svc.ClearCart(ctx, 7))
	assert.Equal(t, 3, svc.View(7).Count)
	assert.ErrorIs(t, svc.LastError(7), entities.ErrBackend)
}

func TestCartService_ResolveCustomerContext(t *testing.T) {
	b := mocks.NewMockCartBackend(t)
	b.EXPECT().GetCustomer(mock.Anything, int64(5)).
		Return(entities.CustomerProfile{UserID: 5, CustomerID: 7}, nil).Once()
	b.EXPECT().GetCustomer(mock.Anything, int64(6)).
		Return(entities.CustomerProfile{}, &backend.APIError{Status: 404}).Once()

	svc := service.NewCartService(newLogger(), b)

	p, err := svc.ResolveCustomerContext(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.CustomerID)

	_, err = svc.ResolveCustomerContext(context.Background(), 6)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
