package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"eats/internal/core/application/access"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/eventbus"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// WatchOrder handles GET /api/v1/orders/{orderId}/updates - streams every
// status change of one order as server-sent events. Only a party to the order
// may watch it; the visibility check runs once, before the stream opens.
func (s *Server) WatchOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(p, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if _, err = s.getOrderHandler.Handle(ctx.Request().Context(), query); err != nil {
		return errorResponse(ctx, err)
	}

	return s.stream(ctx, eventbus.TopicOrderUpdates, func(ev eventbus.Event) bool {
		return ev.Order != nil && ev.Order.ID().IsEqual(orderID)
	})
}

// PendingOrdersFeed handles GET /api/v1/feeds/pending-orders - streams newly
// placed orders at the calling owner's restaurants.
func (s *Server) PendingOrdersFeed(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	if !access.Allowed(access.PendingOrdersFeed, p.Role()) {
		return errorResponse(ctx, errs.NewPermissionDeniedError("pending orders feed"))
	}

	ownerID := p.ID()
	return s.stream(ctx, eventbus.TopicPendingOrders, func(ev eventbus.Event) bool {
		return ev.OwnerID.IsEqual(ownerID)
	})
}

// CookedOrdersFeed handles GET /api/v1/feeds/cooked-orders - streams orders
// whose food just became ready. Every driver sees the full feed.
func (s *Server) CookedOrdersFeed(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	if !access.Allowed(access.CookedOrdersFeed, p.Role()) {
		return errorResponse(ctx, errs.NewPermissionDeniedError("cooked orders feed"))
	}

	return s.stream(ctx, eventbus.TopicCookedOrders, nil)
}

// stream subscribes to a topic and forwards matching events to the client as
// server-sent events until the client disconnects or the bus shuts down.
func (s *Server) stream(ctx echo.Context, topic eventbus.Topic, pred eventbus.Predicate) error {
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-store")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	reqCtx := ctx.Request().Context()
	events := s.bus.Subscribe(reqCtx, topic, pred)

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case ev, open := <-events:
			if !open {
				return nil
			}
			if err := writeEvent(resp, ev); err != nil {
				return nil
			}
		}
	}
}

func writeEvent(resp *echo.Response, ev eventbus.Event) error {
	payload, err := json.Marshal(orderSnapshot(ev.Order))
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
		return err
	}
	resp.Flush()
	return nil
}
