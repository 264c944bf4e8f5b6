package http

import (
	"errors"
	"net/http"

	"kandypack/internal/core/application/usecases/commands"
	"kandypack/internal/core/application/usecases/queries"
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/core/domain/model/trip"
	"kandypack/internal/core/domain/services"
	"kandypack/internal/generated/servers"
	"kandypack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	assignOrderHandler  commands.AssignOrderToTrainCommandHandler

	// Query handlers
	getUnplacedOrdersHandler   queries.GetUnplacedOrdersQueryHandler
	getTripAvailabilityHandler queries.GetTripAvailabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignOrderHandler commands.AssignOrderToTrainCommandHandler,
	getUnplacedOrdersHandler queries.GetUnplacedOrdersQueryHandler,
	getTripAvailabilityHandler queries.GetTripAvailabilityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		confirmOrderHandler:        confirmOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		assignOrderHandler:         assignOrderHandler,
		getUnplacedOrdersHandler:   getUnplacedOrdersHandler,
		getTripAvailabilityHandler: getTripAvailabilityHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new order in pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toOrderItems(newOrder.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order items: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		newOrder.DestinationCity,
		newOrder.DestinationStreet,
		items,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId: orderID.Bytes(),
	})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignOrderToTrain handles POST /api/v1/orders/{orderId}/assign-train.
// Runs the allocation transaction against an existing trip or a train target.
func (s *Server) AssignOrderToTrain(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AssignTrainRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := buildAssignCommand(orderID, request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment target: " + err.Error(),
		})
	}

	return s.handleAssignment(ctx, cmd)
}

// buildAssignCommand converts the API request into an allocation command.
func buildAssignCommand(
	orderID kernel.UUID,
	request servers.AssignTrainRequest,
) (commands.AssignOrderToTrainCommand, error) {
	tripID, err := toOptionalUUID(request.TripId)
	if err != nil {
		return commands.AssignOrderToTrainCommand{}, err
	}

	trainID, err := toOptionalUUID(request.TrainId)
	if err != nil {
		return commands.AssignOrderToTrainCommand{}, err
	}

	routeID, err := toOptionalUUID(request.RouteId)
	if err != nil {
		return commands.AssignOrderToTrainCommand{}, err
	}

	return commands.NewAssignOrderToTrainCommand(orderID, tripID, trainID, routeID)
}

// handleAssignment executes the allocation command and maps the outcome to HTTP.
func (s *Server) handleAssignment(ctx echo.Context, cmd commands.AssignOrderToTrainCommand) error {
	result, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)

	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, servers.AllocationResult{
			Order: servers.PlacedOrder{
				OrderId:       result.OrderID.Bytes(),
				Status:        result.OrderStatus.String(),
				RequiredSpace: result.RequiredSpace.Units(),
			},
			Trip: toTripResponse(result.Trip),
		})
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrTripNotFound),
		errors.Is(err, commands.ErrTrainNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidOrderState),
		errors.Is(err, commands.ErrNoAllocatableSpace),
		errors.Is(err, commands.ErrNoRouteConfigured),
		errors.Is(err, commands.ErrInsufficientTrainCapacity),
		errors.Is(err, trip.ErrCapacityExceeded),
		errors.Is(err, services.ErrDestinationStoreNotFound):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Allocation failed",
		})
	}
}

// GetUnplacedOrders handles GET /api/v1/orders/unplaced.
func (s *Server) GetUnplacedOrders(ctx echo.Context) error {
	query := queries.NewGetUnplacedOrdersQuery()

	orders, err := s.getUnplacedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unplaced orders",
		})
	}

	response := make([]servers.UnplacedOrder, len(orders))
	for i, unplaced := range orders {
		response[i] = servers.UnplacedOrder{
			OrderId:           unplaced.ID.Bytes(),
			DestinationCity:   unplaced.DestinationCity,
			DestinationStreet: unplaced.DestinationStreet,
			Status:            unplaced.Status.String(),
			RequiredSpace:     unplaced.RequiredSpace.Units(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrips handles GET /api/v1/trips.
func (s *Server) GetTrips(ctx echo.Context) error {
	query := queries.NewGetTripAvailabilityQuery()

	trips, err := s.getTripAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve trips",
		})
	}

	response := make([]servers.Trip, len(trips))
	for i, availability := range trips {
		response[i] = servers.Trip{
			TripId:            availability.TripID.Bytes(),
			TrainId:           availability.TrainID.Bytes(),
			RouteId:           availability.RouteID.Bytes(),
			StoreId:           availability.StoreID.Bytes(),
			DepartTime:        availability.DepartTime,
			ArriveTime:        availability.ArriveTime,
			Capacity:          availability.Capacity.Units(),
			CapacityUsed:      availability.CapacityUsed.Units(),
			RemainingCapacity: availability.RemainingCapacity.Units(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderTransitionError maps confirm/cancel failures to HTTP responses.
func (s *Server) orderTransitionError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

// toOrderItems converts API order lines to domain items.
func toOrderItems(apiItems []servers.OrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(apiItems))
	for _, apiItem := range apiItems {
		productID, err := kernel.UUIDFromBytes(apiItem.ProductId[:])
		if err != nil {
			return nil, err
		}

		spacePerUnit, err := kernel.NewSpace(apiItem.SpacePerUnit)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(productID, apiItem.Quantity, apiItem.UnitPrice, spacePerUnit)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// toOptionalUUID converts an optional API UUID to a domain UUID pointer.
func toOptionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	return &converted, nil
}

// toTripResponse converts a trip snapshot to its API representation.
func toTripResponse(snapshot commands.TripSnapshot) servers.Trip {
	return servers.Trip{
		TripId:            snapshot.TripID.Bytes(),
		TrainId:           snapshot.TrainID.Bytes(),
		RouteId:           snapshot.RouteID.Bytes(),
		StoreId:           snapshot.StoreID.Bytes(),
		DepartTime:        snapshot.DepartTime,
		ArriveTime:        snapshot.ArriveTime,
		Capacity:          snapshot.Capacity.Units(),
		CapacityUsed:      snapshot.CapacityUsed.Units(),
		RemainingCapacity: snapshot.RemainingCapacity.Units(),
	}
}
