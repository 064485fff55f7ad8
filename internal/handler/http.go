package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/middleware"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SessionManager interface {
	Login(ctx context.Context, role entities.Role, userID int64) (session.Session, error)
	Logout(ctx context.Context, token string) error
	Get(ctx context.Context, token string) (session.Session, error)
}

type CartService interface {
	LoadCart(ctx context.Context, customerID int64) (entities.CartView, bool)
	AddItem(ctx context.Context, req entities.AddItemRequest) bool
	RemoveItem(ctx context.Context, customerID, cartItemID int64) bool
	ClearCart(ctx context.Context, customerID int64) bool
	View(customerID int64) entities.CartView
	LastError(customerID int64) error
}

type HandoffService interface {
	Suborders(ctx context.Context, actor entities.Actor) ([]service.SuborderView, error)
	Suborder(ctx context.Context, actor entities.Actor, id int64) (service.SuborderView, error)
	Apply(ctx context.Context, actor entities.Actor, id int64, action handoff.Action) (entities.Suborder, error)
	History(ctx context.Context, suborderID int64) ([]entities.ActionRecord, error)
}

type TrackingService interface {
	ReportPosition(ctx context.Context, riderID int64, point geo.Point) (entities.Position, service.BroadcastResult, error)
	Retry(ctx context.Context, riderID int64, ids []int64) (service.BroadcastResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	sessions SessionManager
	cart     CartService
	handoff  HandoffService
	tracking TrackingService
}

func NewHTTPHandler(logger *slog.Logger, sessions SessionManager, cart CartService, handoff HandoffService, tracking TrackingService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		sessions: sessions,
		cart:     cart,
		handoff:  handoff,
		tracking: tracking,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/sessions", h.Login)
	r.Delete("/sessions", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(h.sessions, entities.RoleCustomer))
		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Delete("/cart/items/{item_id}", h.RemoveCartItem)
		r.Delete("/cart", h.ClearCart)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(h.sessions, entities.RoleRider))
		r.Put("/rider/position", h.ReportPosition)
		r.Get("/rider/suborders", h.RiderSuborders)
		r.Post("/rider/tracking/retry", h.RetryTracking)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(h.sessions))
		r.Get("/suborders/{id}", h.GetSuborder)
		r.Post("/suborders/{id}/actions/{action}", h.ApplyAction)
		r.Get("/suborders/{id}/history", h.SuborderHistory)
	})
}

// Login opens a session.
// @Summary      Open a session
// @Description  Resolves the role specific identity and returns a session token. Customers are resolved to their customer id.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Role and user id"
// @Success      201  {object}  Session
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Customer context could not be resolved"
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /sessions [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	s, err := h.sessions.Login(ctx, entities.Role(req.Role), req.UserID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, SessionToJSON(s), http.StatusCreated)
}

// Logout closes the session and releases the rider position and cart state held for it.
// @Summary      Close the session
// @Tags         sessions
// @Param        X-Session-Token  header  string  true  "Session token"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /sessions [delete]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), middleware.Token(r)); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCart
// @Summary      Get the customer's cart
// @Description  Reloads the cart from the marketplace. A missing cart is created and returned empty.
// @Tags         cart
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := h.actor(ctx).ID

	view, ok := h.cart.LoadCart(ctx, customerID)
	if !ok {
		h.writeError(ctx, w, h.cart.LastError(customerID))
		return
	}
	utils.WriteJSON(w, CartViewToJSON(view), http.StatusOK)
}

// AddCartItem
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-Token  header  string          true  "Session token"
// @Param        request          body    AddItemRequest  true  "Item"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /cart/items [post]
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := h.actor(ctx).ID

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if !h.cart.AddItem(ctx, AddItemRequestToEntity(customerID, req)) {
		h.writeError(ctx, w, h.cart.LastError(customerID))
		return
	}
	utils.WriteJSON(w, CartViewToJSON(h.cart.View(customerID)), http.StatusOK)
}

// RemoveCartItem
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Param        item_id          path    int     true  "Cart item id"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /cart/items/{item_id} [delete]
func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := h.actor(ctx).ID

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err == nil {
		err = h.validate.Var(itemID, "gt=0")
	}
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if !h.cart.RemoveItem(ctx, customerID, itemID) {
		h.writeError(ctx, w, h.cart.LastError(customerID))
		return
	}
	utils.WriteJSON(w, CartViewToJSON(h.cart.View(customerID)), http.StatusOK)
}

// ClearCart
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Success      200  {object}  Cart
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /cart [delete]
func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := h.actor(ctx).ID

	if !h.cart.ClearCart(ctx, customerID) {
		h.writeError(ctx, w, h.cart.LastError(customerID))
		return
	}
	utils.WriteJSON(w, CartViewToJSON(h.cart.View(customerID)), http.StatusOK)
}

// ReportPosition
// @Summary      Report the rider position
// @Description  Stores the position and pushes it to every suborder awaiting pickup or delivery handover. Push failures are reported per suborder.
// @Tags         rider
// @Accept       json
// @Produce      json
// @Param        X-Session-Token  header  string           true  "Session token"
// @Param        request          body    PositionRequest  true  "Position"
// @Success      200  {object}  PositionResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /rider/position [put]
func (h *HTTPHandler) ReportPosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PositionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	pos, res, err := h.tracking.ReportPosition(ctx, h.actor(ctx).ID, geo.Point{Lat: req.Latitude, Lon: req.Longitude})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, PositionResponse{
		Position: Position{Latitude: pos.Point.Lat, Longitude: pos.Point.Lon, CapturedAt: pos.CapturedAt},
		Tracking: BroadcastResultToJSON(res),
	}, http.StatusOK)
}

// RetryTracking
// @Summary      Re-push the last position
// @Description  Without suborder ids the whole active set is retried.
// @Tags         rider
// @Accept       json
// @Produce      json
// @Param        X-Session-Token  header  string        true  "Session token"
// @Param        request          body    RetryRequest  false "Suborders to retry"
// @Success      200  {object}  BroadcastResult
// @Failure      422  {object}  utils.ErrorResponse "No position reported yet"
// @Router       /rider/tracking/retry [post]
func (h *HTTPHandler) RetryTracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RetryRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.tracking.Retry(ctx, h.actor(ctx).ID, req.SuborderIDs)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, BroadcastResultToJSON(res), http.StatusOK)
}

// RiderSuborders
// @Summary      List the rider's assigned suborders
// @Tags         rider
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Success      200  {array}   Suborder
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /rider/suborders [get]
func (h *HTTPHandler) RiderSuborders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.handoff.Suborders(ctx, h.actor(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	res := make([]Suborder, 0, len(views))
	for _, v := range views {
		res = append(res, SuborderViewToJSON(v))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetSuborder
// @Summary      Get a suborder with the actions available to the caller
// @Tags         suborders
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Param        id               path    int     true  "Suborder id"
// @Success      200  {object}  Suborder
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /suborders/{id} [get]
func (h *HTTPHandler) GetSuborder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.suborderID(w, r)
	if !ok {
		return
	}

	view, err := h.handoff.Suborder(ctx, h.actor(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SuborderViewToJSON(view), http.StatusOK)
}

// ApplyAction
// @Summary      Perform a suborder action
// @Description  Actions are start, ready, accept, pickup, handover, depart, deliver, cancel and confirm-payment. Pickup and deliver require the rider to be inside the geofence.
// @Tags         suborders
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Param        id               path    int     true  "Suborder id"
// @Param        action           path    string  true  "Action"
// @Success      200  {object}  Suborder
// @Failure      400  {object}  utils.ErrorResponse "Unknown action or rejected by the server"
// @Failure      403  {object}  utils.ErrorResponse "Actor may not perform the action"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed from the current status"
// @Failure      422  {object}  utils.ErrorResponse "Outside the geofence or no position"
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /suborders/{id}/actions/{action} [post]
func (h *HTTPHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.suborderID(w, r)
	if !ok {
		return
	}
	action, err := handoff.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	sub, err := h.handoff.Apply(ctx, h.actor(ctx), id, action)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SuborderToJSON(sub, nil), http.StatusOK)
}

// SuborderHistory
// @Summary      List the actions attempted on a suborder
// @Tags         suborders
// @Produce      json
// @Param        X-Session-Token  header  string  true  "Session token"
// @Param        id               path    int     true  "Suborder id"
// @Success      200  {array}   ActionRecord
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /suborders/{id}/history [get]
func (h *HTTPHandler) SuborderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.suborderID(w, r)
	if !ok {
		return
	}

	recs, err := h.handoff.History(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	res := make([]ActionRecord, 0, len(recs))
	for _, rec := range recs {
		res = append(res, ActionRecordToJSON(rec))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) actor(ctx context.Context) entities.Actor {
	s, _ := session.FromContext(ctx)
	return s.Actor()
}

func (h *HTTPHandler) suborderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err == nil {
		err = h.validate.Var(id, "gt=0")
	}
	if err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to statuses. Messages from the marketplace API are passed through.
func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var code int
	switch {
	case err == nil:
		code = http.StatusInternalServerError
	case errors.Is(err, entities.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, entities.ErrNoCustomerContext),
		errors.Is(err, entities.ErrNoRiderContext),
		errors.Is(err, entities.ErrActorNotAllowed),
		errors.Is(err, entities.ErrNotAssignedRider):
		code = http.StatusForbidden
	case errors.Is(err, entities.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, entities.ErrNoPosition),
		errors.Is(err, entities.ErrOutOfRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, entities.ErrUnknownAction):
		code = http.StatusBadRequest
	case errors.Is(err, entities.ErrBackend):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	if code == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", code)
		return
	}
	utils.WriteError(w, err.Error(), code)
}
