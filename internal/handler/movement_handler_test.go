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
)

func newMovementHandlerFixture(t *testing.T) (*MovementHandler, *testutil.MockCatalogSource) {
	t.Helper()
	movementSource := testutil.NewMockMovementSource()
	budgetSource := testutil.NewMockBudgetSource()
	recurringSource := testutil.NewMockRecurringSource()
	catalogSource := testutil.NewMockCatalogSource(domain.Member{ID: 1, Name: "Ana"})

	state := service.NewDashboardState()
	t.Cleanup(state.Stop)

	expenseService := service.NewExpenseService(movementSource, budgetSource, recurringSource, catalogSource)
	dashboardService := service.NewDashboardService(
		state,
		expenseService,
		service.NewIncomeService(testutil.NewMockIncomeSource()),
		service.NewLoanService(testutil.NewMockLoanSource()),
		service.NewBudgetService(budgetSource, movementSource, recurringSource, catalogSource),
		service.NewCardService(testutil.NewMockCardSource(), catalogSource),
	)
	return NewMovementHandler(expenseService, dashboardService), catalogSource
}

func TestGetCategoryGroups(t *testing.T) {
	handler, catalogSource := newMovementHandlerFixture(t)
	catalogSource.Config.CategoryGroups = []domain.CategoryGroup{
		{Name: "Casa", Categories: []domain.Category{
			{ID: 10, Name: "Mercado", GroupName: "Casa"},
			{ID: 11, Name: "Servicios", GroupName: "Casa"},
		}},
		{Name: "Transporte", Categories: []domain.Category{
			{ID: 12, Name: "Gasolina", GroupName: "Transporte"},
		}},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/category-groups", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", "test-session")

	if err := handler.GetCategoryGroups(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var groups []*domain.CategoryGroup
	if err := json.Unmarshal(rec.Body.Bytes(), &groups); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Casa" || len(groups[0].Categories) != 2 {
		t.Errorf("Expected Casa with 2 categories, got %s with %d", groups[0].Name, len(groups[0].Categories))
	}
	if groups[1].Categories[0].ID != 12 {
		t.Errorf("Expected category 12, got %d", groups[1].Categories[0].ID)
	}
}
