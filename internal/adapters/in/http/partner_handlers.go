package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/labstack/echo/v4"
)

// GetPartners handles GET /api/v1/partners - retrieves a filtered page of
// delivery partners. Query parameters: page, pageSize, status, search.
func (s *Server) GetPartners(ctx echo.Context) error {
	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid pagination parameters")
	}

	status := partner.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err = partner.StatusFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid status filter")
		}
	}

	query, err := queries.NewGetPartnersQuery(page, pageSize, status, ctx.QueryParam("search"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.queries.GetPartners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := PartnersPageResponse{
		Partners: make([]PartnerResponse, 0, len(result.Partners)),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
	for _, p := range result.Partners {
		response.Partners = append(response.Partners, toPartnerResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners - registers a new delivery
// partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	areaIDs, err := parseAreaIDs(req.AreaIDs)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	shift, err := parseShift(req.Shift)
	if err != nil {
		return writeBadRequest(ctx, "Invalid shift, expected HH:MM times")
	}

	partnerID := kernel.NewUUID()

	cmd, err := commands.NewCreatePartnerCommand(partnerID, req.Name, req.Email, req.Phone, areaIDs, shift)
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.commands.CreatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PartnerResponse{
		ID:          partnerID.String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      partner.Active.String(),
		CurrentLoad: 0,
		AreaIDs:     req.AreaIDs,
		Shift:       req.Shift,
	})
}

// GetAvailablePartners handles GET /api/v1/partners/available - retrieves
// the partners available at a given time. The "at" query parameter defaults
// to the current time of day.
func (s *Server) GetAvailablePartners(ctx echo.Context) error {
	var at kernel.TimeOfDay
	var err error

	if raw := ctx.QueryParam("at"); raw != "" {
		at, err = kernel.ParseTimeOfDay(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid time, expected HH:MM")
		}
	} else {
		now := time.Now()
		at, err = kernel.NewTimeOfDay(now.Hour(), now.Minute())
		if err != nil {
			return writeError(ctx, err)
		}
	}

	query, err := queries.NewGetAvailablePartnersQuery(at)
	if err != nil {
		return writeBadRequest(ctx, "Invalid query: "+err.Error())
	}

	partners, err := s.queries.GetAvailablePartners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		response = append(response, toPartnerResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdatePartner handles PUT /api/v1/partners/:partnerId - updates a
// partner's status, served areas and shift. Omitting the shift clears it.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := parseIDParam(ctx, "partnerId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner ID")
	}

	var req UpdatePartnerRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := partner.StatusFromString(req.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status")
	}

	areaIDs, err := parseAreaIDs(req.AreaIDs)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	shift, err := parseShift(req.Shift)
	if err != nil {
		return writeBadRequest(ctx, "Invalid shift, expected HH:MM times")
	}

	metrics, err := parseMetrics(req.Metrics)
	if err != nil {
		return writeBadRequest(ctx, "Invalid metrics")
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, status, areaIDs, shift, metrics)
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.commands.UpdatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePartner handles DELETE /api/v1/partners/:partnerId - removes a
// delivery partner.
func (s *Server) DeletePartner(ctx echo.Context) error {
	partnerID, err := parseIDParam(ctx, "partnerId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner ID")
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.commands.DeletePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartnerMetrics handles GET /api/v1/partners/:partnerId/metrics -
// retrieves one partner's performance figures.
func (s *Server) GetPartnerMetrics(ctx echo.Context) error {
	partnerID, err := parseIDParam(ctx, "partnerId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner ID")
	}

	query, err := queries.NewGetPartnerMetricsQuery(partnerID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid query: "+err.Error())
	}

	metrics, err := s.queries.GetPartnerMetrics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PartnerMetricsResponse{
		PartnerID:       metrics.PartnerID.String(),
		Rating:          metrics.Rating,
		CompletedOrders: metrics.CompletedOrders,
		CancelledOrders: metrics.CancelledOrders,
		CurrentLoad:     metrics.CurrentLoad,
		TotalDispatches: metrics.TotalDispatches,
	})
}

func parseAreaIDs(raw []string) ([]kernel.UUID, error) {
	areaIDs := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		areaID, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		areaIDs = append(areaIDs, areaID)
	}
	return areaIDs, nil
}

func parseMetrics(req *MetricsRequest) (*partner.Metrics, error) {
	if req == nil {
		return nil, nil
	}

	metrics, err := partner.NewMetrics(req.Rating, req.CompletedOrders, req.CancelledOrders)
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

func parseShift(req *ShiftRequest) (*partner.Shift, error) {
	if req == nil {
		return nil, nil
	}

	start, err := kernel.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := kernel.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, err
	}

	shift, err := partner.NewShift(start, end)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}
