// Package http exposes the dispatch system over a REST API.
// Handlers translate JSON requests into commands and queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server depends on.
type Commands struct {
	CreateArea        commands.CreateAreaCommandHandler
	UpdateArea        commands.UpdateAreaCommandHandler
	DeleteArea        commands.DeleteAreaCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CreatePartner     commands.CreatePartnerCommandHandler
	UpdatePartner     commands.UpdatePartnerCommandHandler
	DeletePartner     commands.DeletePartnerCommandHandler
	RunAssignment     commands.RunAssignmentCommandHandler
}

// Queries groups the query handlers the server depends on.
type Queries struct {
	GetOrders            queries.GetOrdersQueryHandler
	GetActiveOrders      queries.GetActiveOrdersQueryHandler
	GetAreas             queries.GetAreasQueryHandler
	GetPartners          queries.GetPartnersQueryHandler
	GetAvailablePartners queries.GetAvailablePartnersQueryHandler
	GetPartnerMetrics    queries.GetPartnerMetricsQueryHandler
	GetAssignments       queries.GetAssignmentsQueryHandler
	GetRecentAssignments queries.GetRecentAssignmentsQueryHandler
	GetAssignmentMetrics queries.GetAssignmentMetricsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(cmds Commands, qrys Queries) *Server {
	return &Server{
		commands: cmds,
		queries:  qrys,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/areas", s.GetAreas)
	api.POST("/areas", s.CreateArea)
	api.PUT("/areas/:areaId", s.UpdateArea)
	api.DELETE("/areas/:areaId", s.DeleteArea)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)

	api.GET("/partners", s.GetPartners)
	api.POST("/partners", s.CreatePartner)
	api.GET("/partners/available", s.GetAvailablePartners)
	api.PUT("/partners/:partnerId", s.UpdatePartner)
	api.DELETE("/partners/:partnerId", s.DeletePartner)
	api.GET("/partners/:partnerId/metrics", s.GetPartnerMetrics)

	api.GET("/assignments", s.GetAssignments)
	api.GET("/assignments/recent", s.GetRecentAssignments)
	api.GET("/assignments/metrics", s.GetAssignmentMetrics)
	api.POST("/assignments/run", s.RunAssignment)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// writeError maps an application error onto an HTTP status code.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrPartnerEmailAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// writeBadRequest returns a 400 with the given message.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
