package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"

	"github.com/labstack/echo/v4"
)

// GetAssignments handles GET /api/v1/assignments - retrieves a filtered
// page of assignment records. Query parameters: page, pageSize, status
// (comma-separated list), orderId, partnerId, from, to (RFC 3339
// timestamps).
func (s *Server) GetAssignments(ctx echo.Context) error {
	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid pagination parameters")
	}

	// the status filter accepts a comma-separated list, e.g. "SUCCESS,FAILED"
	var statuses []assignment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, statusErr := assignment.StatusFromString(strings.TrimSpace(part))
			if statusErr != nil {
				return writeBadRequest(ctx, "Invalid status filter")
			}
			statuses = append(statuses, status)
		}
	}

	orderID, err := parseOptionalIDQuery(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	partnerID, err := parseOptionalIDQuery(ctx, "partnerId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner ID")
	}

	from, err := parseOptionalTimeQuery(ctx, "from")
	if err != nil {
		return writeBadRequest(ctx, "Invalid from timestamp, expected RFC 3339")
	}

	to, err := parseOptionalTimeQuery(ctx, "to")
	if err != nil {
		return writeBadRequest(ctx, "Invalid to timestamp, expected RFC 3339")
	}

	query, err := queries.NewGetAssignmentsQuery(page, pageSize, statuses, orderID, partnerID, from, to)
	if err != nil {
		return writeBadRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.queries.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := AssignmentsPageResponse{
		Assignments: make([]AssignmentResponse, 0, len(result.Assignments)),
		Total:       result.Total,
		Page:        result.Page,
		PageSize:    result.PageSize,
	}
	for _, a := range result.Assignments {
		response.Assignments = append(response.Assignments, toAssignmentResponse(a))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRecentAssignments handles GET /api/v1/assignments/recent - retrieves
// the five most recent assignment records.
func (s *Server) GetRecentAssignments(ctx echo.Context) error {
	query := queries.NewGetRecentAssignmentsQuery()

	records, err := s.queries.GetRecentAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AssignmentResponse, 0, len(records))
	for _, a := range records {
		response = append(response, toAssignmentResponse(a))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics - summarizes
// dispatch outcomes.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	metrics, err := s.queries.GetAssignmentMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignmentMetricsResponse{
		Total:     metrics.Total,
		Succeeded: metrics.Succeeded,
		Failed:    metrics.Failed,
	})
}

// RunAssignment handles POST /api/v1/assignments/run - triggers a dispatch
// run immediately and returns its summary.
func (s *Server) RunAssignment(ctx echo.Context) error {
	cmd := commands.NewRunAssignmentCommand()

	result, err := s.commands.RunAssignment.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNoPendingOrders):
		return ctx.JSON(http.StatusOK, RunAssignmentResponse{
			Message: "No pending orders",
		})
	case errors.Is(err, commands.ErrNoActivePartners):
		return ctx.JSON(http.StatusOK, RunAssignmentResponse{
			Message: "No available partners",
		})
	case err != nil:
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RunAssignmentResponse{
		Processed: result.Processed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	})
}

func parseOptionalTimeQuery(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
