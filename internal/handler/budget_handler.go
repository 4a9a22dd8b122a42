package handler

import (
	"net/http"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles budget and recurring template mutations.
type BudgetHandler struct {
	budgetService    *service.BudgetService
	dashboardService *service.DashboardService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService *service.BudgetService, dashboardService *service.DashboardService) *BudgetHandler {
	return &BudgetHandler{
		budgetService:    budgetService,
		dashboardService: dashboardService,
	}
}

// Upsert handles PUT /api/v1/budgets
func (h *BudgetHandler) Upsert(c echo.Context) error {
	session := middleware.GetSession(c)

	var in domain.BudgetInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	saved, err := h.budgetService.Upsert(c.Request().Context(), session, &in)
	if err != nil {
		log.Error().Err(err).Int64("category_id", in.CategoryID).Msg("Failed to save budget")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabPresupuesto)
	return c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) Delete(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.budgetService.Delete(c.Request().Context(), session, id); err != nil {
		log.Error().Err(err).Int64("budget_id", id).Msg("Failed to delete budget")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabPresupuesto)
	return c.NoContent(http.StatusNoContent)
}

// CopyResponse reports how many budgets a copy created.
type CopyResponse struct {
	Copied int `json:"copied"`
}

// Copy handles POST /api/v1/budgets/copy?month=YYYY-MM
func (h *BudgetHandler) Copy(c echo.Context) error {
	session := middleware.GetSession(c)

	month, err := domain.ParseMonth(c.QueryParam("month"))
	if err != nil {
		return FromError(c, err)
	}

	copied, err := h.budgetService.CopyFromPrevious(c.Request().Context(), session, month)
	if err != nil {
		log.Error().Err(err).Str("month", month.String()).Msg("Failed to copy budgets")
		return FromError(c, err)
	}

	log.Info().
		Str("from", month.Previous().String()).
		Str("month", month.String()).
		Int("copied", copied).
		Msg("Copied budgets from previous month")
	h.dashboardService.Invalidate(session, domain.TabPresupuesto)
	return c.JSON(http.StatusOK, CopyResponse{Copied: copied})
}

// ListTemplates handles GET /api/v1/recurring-templates?month=YYYY-MM
func (h *BudgetHandler) ListTemplates(c echo.Context) error {
	session := middleware.GetSession(c)

	month := domain.CurrentMonth()
	if monthStr := c.QueryParam("month"); monthStr != "" {
		var err error
		month, err = domain.ParseMonth(monthStr)
		if err != nil {
			return FromError(c, err)
		}
	}

	templates, err := h.budgetService.ListTemplates(c.Request().Context(), session, month)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recurring templates")
		return FromError(c, err)
	}
	return c.JSON(http.StatusOK, templates)
}

// CreateTemplate handles POST /api/v1/recurring-templates
func (h *BudgetHandler) CreateTemplate(c echo.Context) error {
	session := middleware.GetSession(c)

	var in domain.RecurringTemplateInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	created, err := h.budgetService.CreateTemplate(c.Request().Context(), session, &in)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create recurring template")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabPresupuesto)
	return c.JSON(http.StatusCreated, created)
}

// DeleteTemplate handles DELETE /api/v1/recurring-templates/:id
func (h *BudgetHandler) DeleteTemplate(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.budgetService.DeleteTemplate(c.Request().Context(), session, id); err != nil {
		log.Error().Err(err).Int64("template_id", id).Msg("Failed to delete recurring template")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabPresupuesto)
	return c.NoContent(http.StatusNoContent)
}
