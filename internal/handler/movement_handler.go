package handler

import (
	"net/http"
	"strconv"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// MovementHandler handles movement CRUD. Every successful mutation
// invalidates the tabs the movement feeds.
type MovementHandler struct {
	expenseService   *service.ExpenseService
	dashboardService *service.DashboardService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(expenseService *service.ExpenseService, dashboardService *service.DashboardService) *MovementHandler {
	return &MovementHandler{
		expenseService:   expenseService,
		dashboardService: dashboardService,
	}
}

// GetCategoryGroups handles GET /api/v1/category-groups. The filter panel
// uses the result as the universe its category selections are diffed
// against.
func (h *MovementHandler) GetCategoryGroups(c echo.Context) error {
	session := middleware.GetSession(c)

	groups, err := h.expenseService.CategoryGroups(c.Request().Context(), session)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load category groups")
		return FromError(c, err)
	}

	return c.JSON(http.StatusOK, groups)
}

// Create handles POST /api/v1/movements
func (h *MovementHandler) Create(c echo.Context) error {
	session := middleware.GetSession(c)

	var in domain.MovementInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	created, err := h.expenseService.Create(c.Request().Context(), session, &in)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create movement")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabGastos)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/movements/:id
func (h *MovementHandler) Update(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}
	scope, err := parseScope(c)
	if err != nil {
		return FromError(c, err)
	}

	var in domain.MovementInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	updated, err := h.expenseService.Update(c.Request().Context(), session, id, &in, scope)
	if err != nil {
		log.Error().Err(err).Int64("movement_id", id).Msg("Failed to update movement")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabGastos)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/movements/:id
func (h *MovementHandler) Delete(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}
	scope, err := parseScope(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.expenseService.Delete(c.Request().Context(), session, id, scope); err != nil {
		log.Error().Err(err).Int64("movement_id", id).Msg("Failed to delete movement")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabGastos)
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func parseScope(c echo.Context) (*domain.EditScope, error) {
	raw := c.QueryParam("scope")
	if raw == "" {
		return nil, nil
	}
	scope := domain.EditScope(raw)
	if !scope.Valid() {
		return nil, domain.ErrInvalidScope
	}
	return &scope, nil
}
