// Package http provides the inbound HTTP adapter. Handlers translate JSON
// requests into commands and queries and map application errors onto status
// codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/queries"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP API for order dispatch and geospatial queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	markOrderUrgentHandler   commands.MarkOrderUrgentCommandHandler

	// Query handlers
	checkClientCoverageHandler    queries.CheckClientCoverageQueryHandler
	getNearestDealersHandler      queries.GetNearestDealersQueryHandler
	getClientsBeyondRadiusHandler queries.GetClientsBeyondRadiusQueryHandler
	getFarthestClientHandler      queries.GetFarthestClientQueryHandler
	getMultizoneOrdersHandler     queries.GetMultizoneOrdersQueryHandler
	getDealerActiveOrderHandler   queries.GetDealerActiveOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	markOrderUrgentHandler commands.MarkOrderUrgentCommandHandler,
	checkClientCoverageHandler queries.CheckClientCoverageQueryHandler,
	getNearestDealersHandler queries.GetNearestDealersQueryHandler,
	getClientsBeyondRadiusHandler queries.GetClientsBeyondRadiusQueryHandler,
	getFarthestClientHandler queries.GetFarthestClientQueryHandler,
	getMultizoneOrdersHandler queries.GetMultizoneOrdersQueryHandler,
	getDealerActiveOrderHandler queries.GetDealerActiveOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		assignOrderHandler:            assignOrderHandler,
		changeOrderStatusHandler:      changeOrderStatusHandler,
		markOrderUrgentHandler:        markOrderUrgentHandler,
		checkClientCoverageHandler:    checkClientCoverageHandler,
		getNearestDealersHandler:      getNearestDealersHandler,
		getClientsBeyondRadiusHandler: getClientsBeyondRadiusHandler,
		getFarthestClientHandler:      getFarthestClientHandler,
		getMultizoneOrdersHandler:     getMultizoneOrdersHandler,
		getDealerActiveOrderHandler:   getDealerActiveOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/urgent", s.MarkOrderUrgent)
	api.GET("/orders/multizone", s.GetMultizoneOrders)

	api.GET("/coverage/check", s.CheckClientCoverage)
	api.GET("/dealers/nearest", s.GetNearestDealers)
	api.GET("/dealers/:dealerID/active-order", s.GetDealerActiveOrder)
	api.GET("/clients/beyond-radius", s.GetClientsBeyondRadius)
	api.GET("/clients/farthest", s.GetFarthestClient)
}

// CreateOrder handles POST /api/v1/orders - places a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid client id: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, request.TotalPrice)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrClientNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Client not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign - dispatches a
// pending order to a dealer.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var request AssignOrder
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	dealerID, err := kernel.UUIDFromString(request.DealerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dealer id: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, dealerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	if handleErr := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.assignErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) assignErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, commands.ErrDealerNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrOrderNotPending),
		errors.Is(err, commands.ErrDealerHasActiveOrder),
		errors.Is(err, commands.ErrClientNotCovered):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign order",
		})
	}
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - moves an
// order through its lifecycle. A request without a dealer id acts as an
// administrative override, which can fail an order but not deliver it.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var request ChangeOrderStatus
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	actor := order.NewAdminActor()
	if request.DealerID != "" {
		dealerID, parseErr := kernel.UUIDFromString(request.DealerID)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid dealer id: " + parseErr.Error(),
			})
		}
		actor = order.NewDealerActor(dealerID)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actor)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.statusChangeErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) statusChangeErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAssignRequired),
		errors.Is(err, order.ErrUrgentNotAllowed),
		errors.Is(err, ports.ErrStaleOrder):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change order status",
		})
	}
}

// MarkOrderUrgent handles POST /api/v1/orders/:orderID/urgent - raises the
// priority flag on an active order.
func (s *Server) MarkOrderUrgent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewMarkOrderUrgentCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	if handleErr := s.markOrderUrgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.statusChangeErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckClientCoverage handles GET /api/v1/coverage/check - reports whether a
// client falls inside any of a company's coverage areas.
func (s *Server) CheckClientCoverage(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.QueryParam("client_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid client id: " + err.Error(),
		})
	}
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("company_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid company id: " + err.Error(),
		})
	}

	query, err := queries.NewCheckClientCoverageQuery(clientID, companyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	result, err := s.checkClientCoverageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to check coverage",
		})
	}

	response := CoverageCheck{
		Covered:                 result.Covered,
		DistanceToCompanyMeters: result.DistanceToCompanyMeters,
	}
	if result.MatchedAreaID != nil {
		matched := result.MatchedAreaID.String()
		response.MatchedAreaID = &matched
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearestDealers handles GET /api/v1/dealers/nearest - ranks dealers by
// distance from the given origin.
func (s *Server) GetNearestDealers(ctx echo.Context) error {
	var request NearestDealersParams
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}

	query, err := queries.NewGetNearestDealersQuery(kernel.NewPoint(request.Lon, request.Lat), request.Limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	dealers, err := s.getNearestDealersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve dealers",
		})
	}

	response := make([]RankedDealer, len(dealers))
	for i, d := range dealers {
		response[i] = RankedDealer{
			ID:             d.ID.String(),
			Name:           d.Name,
			Location:       Location{Lon: d.Location.Lon(), Lat: d.Location.Lat()},
			DistanceMeters: d.DistanceMeters,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClientsBeyondRadius handles GET /api/v1/clients/beyond-radius - lists
// clients outside the given radius of every company.
func (s *Server) GetClientsBeyondRadius(ctx echo.Context) error {
	var request BeyondRadiusParams
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}

	query, err := queries.NewGetClientsBeyondRadiusQuery(request.RadiusMeters)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	clients, err := s.getClientsBeyondRadiusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve clients",
		})
	}

	response := make([]RemoteClient, len(clients))
	for i, c := range clients {
		response[i] = RemoteClient{
			ID:                   c.ID.String(),
			Name:                 c.Name,
			Location:             Location{Lon: c.Location.Lon(), Lat: c.Location.Lat()},
			NearestCompanyMeters: c.NearestCompanyMeters,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFarthestClient handles GET /api/v1/clients/farthest - returns the client
// farthest from the given company.
func (s *Server) GetFarthestClient(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("company_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid company id: " + err.Error(),
		})
	}

	query, err := queries.NewGetFarthestClientQuery(companyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	result, err := s.getFarthestClientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve farthest client",
		})
	}

	if !result.Found {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, FarthestClient{
		ID:             result.ID.String(),
		Name:           result.Name,
		Location:       Location{Lon: result.Location.Lon(), Lat: result.Location.Lat()},
		DistanceMeters: result.DistanceMeters,
	})
}

// GetDealerActiveOrder handles GET /api/v1/dealers/:dealerID/active-order -
// returns the order the dealer is currently delivering, if any.
func (s *Server) GetDealerActiveOrder(ctx echo.Context) error {
	dealerID, err := kernel.UUIDFromString(ctx.Param("dealerID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dealer id: " + err.Error(),
		})
	}

	query, err := queries.NewGetDealerActiveOrderQuery(dealerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	result, err := s.getDealerActiveOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve active order",
		})
	}

	if !result.Found {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, ActiveOrder{
		OrderID:    result.OrderID.String(),
		ClientID:   result.ClientID.String(),
		Urgent:     result.Urgent,
		OrderDate:  result.OrderDate.Format(time.RFC3339),
		TotalPrice: result.TotalPrice,
	})
}

// GetMultizoneOrders handles GET /api/v1/orders/multizone - lists orders whose
// estimated route crosses more coverage zones than the threshold.
func (s *Server) GetMultizoneOrders(ctx echo.Context) error {
	var request MultizoneParams
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}

	query, err := queries.NewGetMultizoneOrdersQuery(request.Threshold)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getMultizoneOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve multizone orders",
		})
	}

	response := make([]MultizoneOrder, len(orders))
	for i, o := range orders {
		zones := make([]string, len(o.ZonesCrossed))
		for j, zoneID := range o.ZonesCrossed {
			zones[j] = zoneID.String()
		}
		response[i] = MultizoneOrder{
			OrderID:      o.OrderID.String(),
			ZonesCrossed: zones,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
