package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/hogarlabs/hogar-gateway/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type dashboardFixture struct {
	handler        *DashboardHandler
	state          *service.DashboardState
	movementSource *testutil.MockMovementSource
}

func newDashboardHandlerFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	movementSource := testutil.NewMockMovementSource()
	budgetSource := testutil.NewMockBudgetSource()
	recurringSource := testutil.NewMockRecurringSource()
	catalogSource := testutil.NewMockCatalogSource(domain.Member{ID: 1, Name: "Ana"})

	state := service.NewDashboardState()
	t.Cleanup(state.Stop)

	dashboardService := service.NewDashboardService(
		state,
		service.NewExpenseService(movementSource, budgetSource, recurringSource, catalogSource),
		service.NewIncomeService(testutil.NewMockIncomeSource()),
		service.NewLoanService(testutil.NewMockLoanSource()),
		service.NewBudgetService(budgetSource, movementSource, recurringSource, catalogSource),
		service.NewCardService(testutil.NewMockCardSource(), catalogSource),
	)
	return &dashboardFixture{
		handler:        NewDashboardHandler(dashboardService),
		state:          state,
		movementSource: movementSource,
	}
}

func tabRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", "test-session")
	return c, rec
}

func TestGetTab_Success(t *testing.T) {
	f := newDashboardHandlerFixture(t)
	f.movementSource.AddMovement(&domain.Movement{
		ID: 1, CategoryID: 10, CategoryName: "Mercado", CategoryGroupName: "Casa",
		Amount: decimal.NewFromInt(50000), Type: domain.MovementTypeHousehold, PayerID: 1,
	})

	c, rec := tabRequest("/api/v1/dashboard/gastos?month=2024-12")
	c.SetParamNames("tab")
	c.SetParamValues("gastos")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var payload service.TabPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if payload.Tab != domain.TabGastos || payload.Month != "2024-12" {
		t.Errorf("Expected gastos 2024-12, got %s %s", payload.Tab, payload.Month)
	}
	if payload.Expenses == nil || !payload.Expenses.GrandTotal.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected expense view with grand total 50000, got %+v", payload.Expenses)
	}
}

func TestGetTab_UnknownTab(t *testing.T) {
	f := newDashboardHandlerFixture(t)

	c, rec := tabRequest("/api/v1/dashboard/viajes")
	c.SetParamNames("tab")
	c.SetParamValues("viajes")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetTab_InvalidMonth(t *testing.T) {
	f := newDashboardHandlerFixture(t)

	c, rec := tabRequest("/api/v1/dashboard/gastos?month=diciembre")
	c.SetParamNames("tab")
	c.SetParamValues("gastos")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetTab_InvalidFilterParam(t *testing.T) {
	f := newDashboardHandlerFixture(t)

	c, rec := tabRequest("/api/v1/dashboard/gastos?members=1,abc")
	c.SetParamNames("tab")
	c.SetParamValues("gastos")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if problem.Type != ErrorTypeValidation {
		t.Errorf("Expected validation problem type, got %s", problem.Type)
	}
}

func TestGetTab_ReloadSeedSurfacesOnPayload(t *testing.T) {
	f := newDashboardHandlerFixture(t)

	c, rec := tabRequest("/api/v1/dashboard/gastos?month=2024-12&reload=gastos,presupuesto")
	c.SetParamNames("tab")
	c.SetParamValues("gastos")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var payload service.TabPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !payload.Reloaded {
		t.Error("Expected the seeded tab to report reloaded")
	}
	// the other seeded tab stays marked until visited
	if !f.state.ConsumeReload("test-session", domain.TabPresupuesto) {
		t.Error("Expected presupuesto to stay marked for reload")
	}
}

func TestGetTab_MemberNoneSelection(t *testing.T) {
	f := newDashboardHandlerFixture(t)
	f.movementSource.AddMovement(&domain.Movement{
		ID: 1, CategoryID: 10, CategoryName: "Mercado", Amount: decimal.NewFromInt(50000),
		Type: domain.MovementTypeHousehold, PayerID: 1,
	})

	c, rec := tabRequest("/api/v1/dashboard/gastos?month=2024-12&members=none")
	c.SetParamNames("tab")
	c.SetParamValues("gastos")

	if err := f.handler.GetTab(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var payload service.TabPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(payload.Expenses.Groups) != 0 {
		t.Errorf("Expected an empty view for members=none, got %d groups", len(payload.Expenses.Groups))
	}
}
