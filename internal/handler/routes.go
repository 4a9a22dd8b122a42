package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. Session enforcement and rate
// limiting are wired as group middleware by the caller.
func RegisterRoutes(api *echo.Group, dashboardHandler *DashboardHandler, movementHandler *MovementHandler, incomeHandler *IncomeHandler, budgetHandler *BudgetHandler, cardHandler *CardHandler) {
	// Dashboard tabs
	api.GET("/dashboard/:tab", dashboardHandler.GetTab)

	// Catalog
	api.GET("/category-groups", movementHandler.GetCategoryGroups)

	// Movements
	api.POST("/movements", movementHandler.Create)
	api.PUT("/movements/:id", movementHandler.Update)
	api.DELETE("/movements/:id", movementHandler.Delete)

	// Income entries
	api.POST("/income", incomeHandler.Create)
	api.PUT("/income/:id", incomeHandler.Update)
	api.DELETE("/income/:id", incomeHandler.Delete)

	// Budgets
	api.PUT("/budgets", budgetHandler.Upsert)
	api.DELETE("/budgets/:id", budgetHandler.Delete)
	api.POST("/budgets/copy", budgetHandler.Copy)

	// Recurring templates
	api.GET("/recurring-templates", budgetHandler.ListTemplates)
	api.POST("/recurring-templates", budgetHandler.CreateTemplate)
	api.DELETE("/recurring-templates/:id", budgetHandler.DeleteTemplate)

	// Credit cards
	api.GET("/cards/:id/movements", cardHandler.GetMovements)
	api.POST("/card-payments", cardHandler.CreatePayment)
	api.DELETE("/card-payments/:id", cardHandler.DeletePayment)
}
