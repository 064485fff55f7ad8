package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
)

// ActionRequest carries what an action endpoint needs besides the action itself.
type ActionRequest struct {
	SuborderID int64
	Actor      entities.Actor
	// Position is set for actions gated by the rider's location.
	Position *entities.Position
}

func (c *Client) GetSuborder(ctx context.Context, id int64) (entities.Suborder, error) {
	var s Suborder
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/suborders/%d", id), nil, &s); err != nil {
		return entities.Suborder{}, fmt.Errorf("failed to get suborder: %w", err)
	}
	return SuborderToEntity(s)
}

func (c *Client) AssignedSuborders(ctx context.Context, riderID int64) ([]entities.Suborder, error) {
	var resp assignedSubordersResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/deliveryboy/%d/assigned-suborders", riderID), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get assigned suborders: %w", err)
	}

	subs := make([]entities.Suborder, 0, len(resp.Suborders))
	for _, s := range resp.Suborders {
		sub, err := SuborderToEntity(s)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Perform calls the endpoint behind a suborder action.
func (c *Client) Perform(ctx context.Context, action handoff.Action, req ActionRequest) error {
	method, path, body, err := route(action, req)
	if err != nil {
		return err
	}
	if err := c.do(ctx, method, path, body, nil); err != nil {
		return fmt.Errorf("failed to %s suborder %d: %w", action, req.SuborderID, err)
	}
	return nil
}

func route(action handoff.Action, req ActionRequest) (method, path string, body any, err error) {
	id := req.SuborderID

	switch action {
	case handoff.ActionStart:
		return http.MethodPatch, fmt.Sprintf("/vendor/order/%d/in-progress", id), nil, nil
	case handoff.ActionReady:
		return http.MethodPatch, fmt.Sprintf("/vendor/order/%d/ready", id), nil, nil
	case handoff.ActionHandover:
		return http.MethodPatch, fmt.Sprintf("/vendor/order/%d/handover", id), nil, nil
	case handoff.ActionCancel:
		return http.MethodPatch, fmt.Sprintf("/vendor/order/%d/cancel", id), nil, nil
	case handoff.ActionAccept:
		return http.MethodPatch, fmt.Sprintf("/deliveryboy/order/%d/accept", id), acceptBody{DeliveryboyID: req.Actor.ID}, nil
	case handoff.ActionPickup:
		return http.MethodPatch, fmt.Sprintf("/deliveryboy/order/%d/pickup", id), position(req.Position), nil
	case handoff.ActionDepart:
		p := position(req.Position)
		return http.MethodPut, fmt.Sprintf("/deliveryboy/order/%d/location", id), departBody{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Status:    string(entities.StatusInTransit),
		}, nil
	case handoff.ActionDeliver:
		return http.MethodPost, fmt.Sprintf("/deliveryboy/reach-destination/%d/%d", req.Actor.ID, id), position(req.Position), nil
	case handoff.ActionConfirmPayment:
		prefix, ok := paymentPrefix[req.Actor.Role]
		if !ok {
			return "", "", nil, fmt.Errorf("%w: %s cannot confirm payment", entities.ErrActorNotAllowed, req.Actor.Role)
		}
		return http.MethodPost, fmt.Sprintf("/%s/confirm-payment/%d", prefix, id), nil, nil
	}
	return "", "", nil, fmt.Errorf("%w: %q", entities.ErrUnknownAction, action)
}

var paymentPrefix = map[entities.Role]string{
	entities.RoleCustomer: "customer",
	entities.RoleRider:    "deliveryboy",
	entities.RoleVendor:   "vendor",
}

func position(p *entities.Position) positionBody {
	if p == nil {
		return positionBody{}
	}
	return positionBody{Latitude: p.Point.Lat, Longitude: p.Point.Lon}
}

func (c *Client) UpdateLiveTracking(ctx context.Context, riderID, suborderID int64, p geo.Point) error {
	body := liveTrackingBody{
		CourierOrderID: suborderID,
		Latitude:       p.Lat,
		Longitude:      p.Lon,
		DeliveryboyID:  riderID,
	}
	if err := c.do(ctx, http.MethodPost, "/deliveryboy/update-live-tracking", body, nil); err != nil {
		return fmt.Errorf("failed to update live tracking for suborder %d: %w", suborderID, err)
	}
	return nil
}
