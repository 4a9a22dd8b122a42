package handler

import (
	"net/http"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the per-tab view models.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetTab handles GET /api/v1/dashboard/:tab
//
// Query parameters: month (YYYY-MM, defaults to current), reload (CSV of
// tabs to seed as stale), and one committed selection per filter dimension
// (members, income_types, categories, payment_methods, loan_people, cards,
// card_owners) — absent means all, "none" means none, a CSV id list means
// that subset.
func (h *DashboardHandler) GetTab(c echo.Context) error {
	session := middleware.GetSession(c)

	tab, err := domain.ParseTab(c.Param("tab"))
	if err != nil {
		return FromError(c, err)
	}

	month := domain.CurrentMonth()
	if monthStr := c.QueryParam("month"); monthStr != "" {
		month, err = domain.ParseMonth(monthStr)
		if err != nil {
			return FromError(c, err)
		}
	}

	filters, err := parseFilters(c)
	if err != nil {
		return FromError(c, err)
	}

	if tabs := domain.ParseTabList(c.QueryParam("reload")); len(tabs) > 0 {
		h.dashboardService.SeedReload(session, tabs)
	}

	payload, err := h.dashboardService.LoadTab(c.Request().Context(), session, tab, month, filters)
	if err != nil {
		if err != domain.ErrStaleLoad {
			log.Error().Err(err).Str("tab", string(tab)).Str("month", month.String()).Msg("Failed to load tab")
		}
		return FromError(c, err)
	}

	return c.JSON(http.StatusOK, payload)
}

func parseFilters(c echo.Context) (domain.FilterSet, error) {
	filters := domain.NewFilterSet()

	var err error
	if filters.Members, err = domain.ParseIDSelection(c.QueryParam("members")); err != nil {
		return filters, err
	}
	filters.IncomeTypes = domain.ParseTypeSelection(c.QueryParam("income_types"))
	if filters.Categories, err = domain.ParseIDSelection(c.QueryParam("categories")); err != nil {
		return filters, err
	}
	if filters.PaymentMethods, err = domain.ParseIDSelection(c.QueryParam("payment_methods")); err != nil {
		return filters, err
	}
	if filters.LoanPeople, err = domain.ParseIDSelection(c.QueryParam("loan_people")); err != nil {
		return filters, err
	}
	if filters.Cards, err = domain.ParseIDSelection(c.QueryParam("cards")); err != nil {
		return filters, err
	}
	if filters.CardOwners, err = domain.ParseIDSelection(c.QueryParam("card_owners")); err != nil {
		return filters, err
	}
	return filters, nil
}
