package handler

import (
	"net/http"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CardHandler serves the lazy card detail and handles card payment
// mutations.
type CardHandler struct {
	cardService      *service.CardService
	dashboardService *service.DashboardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService *service.CardService, dashboardService *service.DashboardService) *CardHandler {
	return &CardHandler{
		cardService:      cardService,
		dashboardService: dashboardService,
	}
}

// GetMovements handles GET /api/v1/cards/:id/movements?cycle_date=YYYY-MM-DD
func (h *CardHandler) GetMovements(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}
	cycleDate, err := parseCycleDate(c)
	if err != nil {
		return FromError(c, err)
	}

	movements, err := h.cardService.LoadMovements(c.Request().Context(), session, id, cycleDate)
	if err != nil {
		log.Error().Err(err).Int64("card_id", id).Msg("Failed to load card movements")
		return FromError(c, err)
	}
	return c.JSON(http.StatusOK, movements)
}

// CreatePayment handles POST /api/v1/card-payments
func (h *CardHandler) CreatePayment(c echo.Context) error {
	session := middleware.GetSession(c)

	var in domain.CardPaymentInput
	if err := c.Bind(&in); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&in); err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.cardService.CreatePayment(c.Request().Context(), session, &in); err != nil {
		log.Error().Err(err).Int64("card_id", in.CardID).Msg("Failed to create card payment")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabTarjetas)
	return c.NoContent(http.StatusCreated)
}

// DeletePayment handles DELETE /api/v1/card-payments/:id
func (h *CardHandler) DeletePayment(c echo.Context) error {
	session := middleware.GetSession(c)

	id, err := parseID(c)
	if err != nil {
		return FromError(c, err)
	}

	if err := h.cardService.DeletePayment(c.Request().Context(), session, id); err != nil {
		log.Error().Err(err).Int64("payment_id", id).Msg("Failed to delete card payment")
		return FromError(c, err)
	}

	h.dashboardService.Invalidate(session, domain.TabTarjetas)
	return c.NoContent(http.StatusNoContent)
}

func parseCycleDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("cycle_date")
	if raw == "" {
		return domain.CurrentMonth().FirstDay(), nil
	}
	cycleDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return cycleDate, nil
}
