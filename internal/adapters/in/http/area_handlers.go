package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetAreas handles GET /api/v1/areas - retrieves all delivery areas.
func (s *Server) GetAreas(ctx echo.Context) error {
	query := queries.NewGetAreasQuery()

	areas, err := s.queries.GetAreas.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AreaResponse, 0, len(areas))
	for _, a := range areas {
		response = append(response, AreaResponse{
			ID:   a.ID.String(),
			Name: a.Name,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateArea handles POST /api/v1/areas - creates a new delivery area.
func (s *Server) CreateArea(ctx echo.Context) error {
	var req CreateAreaRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	areaID := kernel.NewUUID()

	cmd, err := commands.NewCreateAreaCommand(areaID, req.Name)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area data: "+err.Error())
	}

	if err = s.commands.CreateArea.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AreaResponse{
		ID:   areaID.String(),
		Name: req.Name,
	})
}

// UpdateArea handles PUT /api/v1/areas/:areaId - renames a delivery area.
func (s *Server) UpdateArea(ctx echo.Context) error {
	areaID, err := parseIDParam(ctx, "areaId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	var req UpdateAreaRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAreaCommand(areaID, req.Name)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area data: "+err.Error())
	}

	if err = s.commands.UpdateArea.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AreaResponse{
		ID:   areaID.String(),
		Name: req.Name,
	})
}

// DeleteArea handles DELETE /api/v1/areas/:areaId - removes a delivery area.
func (s *Server) DeleteArea(ctx echo.Context) error {
	areaID, err := parseIDParam(ctx, "areaId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	cmd, err := commands.NewDeleteAreaCommand(areaID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area data: "+err.Error())
	}

	if err = s.commands.DeleteArea.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
