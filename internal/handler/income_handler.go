package handler

import (
	"net/http"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// IncomeHandler handles income entry CRUD.
type IncomeHandler struct {
	incomeService    *service.IncomeService
	dashboardService *service.DashboardService
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService *service.IncomeService, dashboardService *service.DashboardService) *IncomeHandler {
	return &IncomeHandler{
		incomeService:    incomeService,
		dashboardService: dashboardService,
	}
}

// Create handles POST /api/v1/income
func (h *IncomeHandler) Create(c echo.Context) error {
	session := middleware.GetSession(c)

	var in domain.IncomeInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	created, err := h.incomeService.Create(c.Request().Context(), session, &in)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create income entry")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabIngresos)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/income/:id
func (h *IncomeHandler) Update(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}

	var in domain.IncomeInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	updated, err := h.incomeService.Update(c.Request().Context(), session, id, &in)
	if err != nil {
		log.Error().Err(err).Int64("income_id", id).Msg("Failed to update income entry")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabIngresos)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/income/:id
func (h *IncomeHandler) Delete(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.incomeService.Delete(c.Request().Context(), session, id); err != nil {
		log.Error().Err(err).Int64("income_id", id).Msg("Failed to delete income entry")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabIngresos)
	return c.NoContent(http.StatusNoContent)
}
