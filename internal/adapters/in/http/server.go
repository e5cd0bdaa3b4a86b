package http

import (
	"errors"
	"net/http"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/model/user"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader identifies the acting user on every order, dish, and
// error-log request.
const userIDHeader = "X-User-ID"

// Server handles HTTP requests for the order system.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	createDishHandler  commands.CreateDishCommandHandler

	// Query handlers
	trackOrderHandler   queries.TrackOrderQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler
	listDishesHandler   queries.ListDishesQueryHandler
	listErrorsHandler   queries.ListErrorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	listDishesHandler queries.ListDishesQueryHandler,
	listErrorsHandler queries.ListErrorsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		createDishHandler:   createDishHandler,
		trackOrderHandler:   trackOrderHandler,
		searchOrdersHandler: searchOrdersHandler,
		listDishesHandler:   listDishesHandler,
		listErrorsHandler:   listErrorsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/search", s.SearchOrders)
	api.GET("/orders/:id", s.TrackOrder)
	api.DELETE("/orders/:id", s.CancelOrder)
	api.GET("/dishes", s.ListDishes)
	api.POST("/dishes", s.CreateDish)
	api.GET("/errors", s.ListErrors)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+userIDHeader+" header")
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dishIDs := make([]kernel.UUID, len(request.DishIDs))
	for i, raw := range request.DishIDs {
		dishID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid dish id: "+raw)
		}
		dishIDs[i] = dishID
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actorID, dishIDs, request.ScheduledFor)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	query, err := queries.NewTrackOrderQuery(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderDTO(created))
}

// TrackOrder handles GET /api/v1/orders/:id - retrieves one order.
// Only the owning user and administrators may read an order.
func (s *Server) TrackOrder(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+userIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDTO(response))
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order.
// Cancellation is rejected once preparation has started.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+userIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchOrders handles POST /api/v1/orders/search - filtered order listing.
func (s *Server) SearchOrders(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+userIDHeader+" header")
	}

	var request SearchOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	statuses := make([]order.Status, len(request.Statuses))
	for i, raw := range request.Statuses {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		statuses[i] = status
	}

	var userFilter *kernel.UUID
	if request.UserID != nil {
		filterID, parseErr := kernel.UUIDFromString(*request.UserID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid user id: "+*request.UserID)
		}
		userFilter = &filterID
	}

	query, err := queries.NewSearchOrdersQuery(actorID, statuses, request.DateFrom, request.DateTo, userFilter)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	responses, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	result := make([]OrderDTO, len(responses))
	for i, response := range responses {
		result[i] = toOrderDTO(response)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ListDishes handles GET /api/v1/dishes - lists the dish catalog.
// With ?available=true only currently available dishes are returned.
func (s *Server) ListDishes(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	query := queries.NewListDishesQuery(availableOnly)

	responses, err := s.listDishesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	result := make([]DishDTO, len(responses))
	for i, response := range responses {
		result[i] = toDishDTO(response)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CreateDish handles POST /api/v1/dishes - adds a dish to the catalog.
func (s *Server) CreateDish(ctx echo.Context) error {
	var request CreateDishRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(dishID, request.Name, request.Description, request.Price, request.Category)
	if err != nil {
		return badRequest(ctx, "Invalid dish data: "+err.Error())
	}

	if handleErr := s.createDishHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": dishID.String()})
}

// ListErrors handles GET /api/v1/errors - lists diagnostic log entries.
// Administrators see every entry, other users only their own.
func (s *Server) ListErrors(ctx echo.Context) error {
	actorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+userIDHeader+" header")
	}

	query, err := queries.NewListErrorsQuery(actorID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	responses, err := s.listErrorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	result := make([]ErrorEntryDTO, len(responses))
	for i, response := range responses {
		result[i] = toErrorEntryDTO(response)
	}

	return ctx.JSON(http.StatusOK, result)
}

// actorID extracts the acting user's identity from the request headers.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorDTO{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application errors onto HTTP status codes. Requests
// rejected by constructors never reach this point, so a remaining invalid
// value means the operation conflicts with the order's current state.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, user.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorDTO{
		Code:    status,
		Message: err.Error(),
	})
}
