package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/eventbus"
	"eats/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	editOrderStatusHandler commands.EditOrderStatusCommandHandler
	takeOrderHandler       commands.TakeOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler

	bus *eventbus.Bus
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the event bus backing the streaming endpoints.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderStatusHandler commands.EditOrderStatusCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	bus *eventbus.Bus,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		editOrderStatusHandler: editOrderStatusHandler,
		takeOrderHandler:       takeOrderHandler,
		getOrderHandler:        getOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		bus:                    bus,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromBytes(newOrder.RestaurantId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restaurant id: " + err.Error(),
		})
	}

	items := make([]commands.OrderItemRequest, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		dishID, dishErr := kernel.UUIDFromBytes(item.DishId[:])
		if dishErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid dish id: " + dishErr.Error(),
			})
		}
		items = append(items, commands.OrderItemRequest{
			DishID:     dishID,
			Selections: selectionsFromRequest(item.Selections),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(p, orderID, restaurantID, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	// Read the created order back so the response carries the computed
	// prices. The creator is always a party to the order.
	query, err := queries.NewGetOrderQuery(p, orderID)
	if err != nil {
		return ctx.NoContent(http.StatusCreated)
	}
	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.NoContent(http.StatusCreated)
	}

	return ctx.JSON(http.StatusCreated, orderFromDetail(detail))
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return errorResponse(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(p, statusFilter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, row := range orders {
		response[i] = orderFromListing(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
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

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse(detail))
}

// EditOrderStatus handles PUT /api/v1/orders/{orderId}/status - advances an
// order to the requested status.
func (s *Server) EditOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	var body servers.EditOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	target, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewEditOrderStatusCommand(p, orderID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.editOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TakeOrder handles POST /api/v1/orders/{orderId}/take - claims an order for
// the calling driver.
func (s *Server) TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return unauthenticatedResponse(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTakeOrderCommand(p, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
