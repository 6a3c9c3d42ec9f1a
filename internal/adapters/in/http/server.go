// Package http provides the inbound HTTP adapter.
// It translates HTTP requests into application commands and queries.
package http

import (
	"errors"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Order is the HTTP representation of an order.
type Order struct {
	Id     uuid.UUID `json:"id"`
	Drink  string    `json:"drink"`
	Size   string    `json:"size"`
	Status string    `json:"status"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	Drink string `json:"drink"`
	Size  string `json:"size"`
}

// OrderPlaced is the response body returned after placing an order.
type OrderPlaced struct {
	Id uuid.UUID `json:"id"`
}

// Message is the response body for barista actions.
type Message struct {
	Message string `json:"message"`
}

// Error is the HTTP error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	coffeeShop services.CoffeeShop

	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	prepareOrderHandler commands.PrepareOrderCommandHandler
	serveOrderHandler   commands.ServeOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getUnservedOrdersHandler queries.GetUnservedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	coffeeShop services.CoffeeShop,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnservedOrdersHandler queries.GetUnservedOrdersQueryHandler,
) *Server {
	return &Server{
		coffeeShop:               coffeeShop,
		placeOrderHandler:        placeOrderHandler,
		prepareOrderHandler:      prepareOrderHandler,
		serveOrderHandler:        serveOrderHandler,
		getOrderHandler:          getOrderHandler,
		getUnservedOrdersHandler: getUnservedOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders/active", s.GetUnservedOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/prepare", s.PrepareOrder)
	e.POST("/api/v1/orders/:id/serve", s.ServeOrder)
}

// GetHealth handles GET /health - reports whether the shop is open.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]bool{"isOpen": s.coffeeShop.IsOpen()})
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, newOrder.Drink, newOrder.Size)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderPlaced{Id: orderID.Bytes()})
}

// PrepareOrder handles POST /api/v1/orders/:id/prepare - the barista brews the drink.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewPrepareOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr, "Failed to prepare order")
	}

	resp, err := s.getOrderProjection(ctx, orderID)
	if err != nil {
		return s.orderError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, Message{Message: s.coffeeShop.Brew(resp.Drink)})
}

// ServeOrder handles POST /api/v1/orders/:id/serve - the barista hands over the drink.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr, "Failed to serve order")
	}

	resp, err := s.getOrderProjection(ctx, orderID)
	if err != nil {
		return s.orderError(ctx, err, "Failed to retrieve order")
	}

	served, err := order.RestoreOrder(resp.ID, resp.Drink, resp.Size, resp.Status)
	if err != nil {
		return s.orderError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, Message{Message: s.coffeeShop.Serve(served)})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	resp, err := s.getOrderProjection(ctx, orderID)
	if err != nil {
		return s.orderError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, Order{
		Id:     resp.ID.Bytes(),
		Drink:  resp.Drink,
		Size:   resp.Size,
		Status: resp.Status.String(),
	})
}

// GetUnservedOrders handles GET /api/v1/orders/active - retrieves all unserved orders.
func (s *Server) GetUnservedOrders(ctx echo.Context) error {
	query := queries.NewGetUnservedOrdersQuery()

	orders, err := s.getUnservedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			Id:     o.ID.Bytes(),
			Drink:  o.Drink,
			Size:   o.Size,
			Status: o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getOrderProjection(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) orderError(ctx echo.Context, err error, message string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
