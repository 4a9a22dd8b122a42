package service

import (
	"context"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ExpenseService builds the gastos tab view and handles movement mutations.
type ExpenseService struct {
	movementSource  domain.MovementSource
	budgetSource    domain.BudgetSource
	recurringSource domain.RecurringSource
	catalogSource   domain.CatalogSource
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(
	movementSource domain.MovementSource,
	budgetSource domain.BudgetSource,
	recurringSource domain.RecurringSource,
	catalogSource domain.CatalogSource,
) *ExpenseService {
	return &ExpenseService{
		movementSource:  movementSource,
		budgetSource:    budgetSource,
		recurringSource: recurringSource,
		catalogSource:   catalogSource,
	}
}

// ExpenseView is the aggregated gastos tab payload.
type ExpenseView struct {
	Month      string          `json:"month"`
	Groups     []*GroupSummary `json:"groups"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// LoadMonth fetches everything the gastos tab needs in parallel, rewrites
// SPLIT movements to the household share, applies the committed filters, and
// folds the survivors into group -> category summaries with budget progress.
func (s *ExpenseService) LoadMonth(ctx context.Context, session string, month domain.Month, filters domain.FilterSet) (*ExpenseView, error) {
	var (
		household []*domain.Movement
		splits    []*domain.Movement
		budgets   []*domain.Budget
		config    *domain.FormConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		household, _, err = s.movementSource.ListByMonth(gctx, session, month, domain.MovementTypeHousehold)
		return err
	})
	g.Go(func() error {
		var err error
		splits, _, err = s.movementSource.ListByMonth(gctx, session, month, domain.MovementTypeSplit)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetSource.ListByMonth(gctx, session, month)
		return err
	})
	g.Go(func() error {
		var err error
		config, err = s.catalogSource.FormConfig(gctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	movements := append(household, AdjustSplits(splits, config.MemberIDs())...)
	movements = FilterMovements(movements, filters)

	groups := GroupExpenses(movements)
	attachBudgets(groups, budgets)

	grand := decimal.Zero
	for _, group := range groups {
		grand = grand.Add(group.Total)
	}

	return &ExpenseView{
		Month:      month.String(),
		Groups:     groups,
		GrandTotal: grand,
	}, nil
}

func attachBudgets(groups []*GroupSummary, budgets []*domain.Budget) {
	byCategory := make(map[int64]*domain.Budget, len(budgets))
	for _, b := range budgets {
		byCategory[b.CategoryID] = b
	}
	for _, group := range groups {
		for _, cat := range group.Categories {
			cat.Budget = Progress(byCategory[cat.CategoryID], cat.Total)
		}
	}
}

// CategoryGroups returns the category universe the filter panel selects
// from.
func (s *ExpenseService) CategoryGroups(ctx context.Context, session string) ([]*domain.CategoryGroup, error) {
	return s.catalogSource.CategoryGroups(ctx, session)
}

// Create validates and creates a movement.
func (s *ExpenseService) Create(ctx context.Context, session string, in *domain.MovementInput) (*domain.Movement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.movementSource.Create(ctx, session, in)
}

// Update validates and edits a movement. A scope choice is only meaningful
// for template-generated movements; the upstream rejects it elsewhere.
func (s *ExpenseService) Update(ctx context.Context, session string, id int64, in *domain.MovementInput, scope *domain.EditScope) (*domain.Movement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if scope != nil && !scope.Valid() {
		return nil, domain.ErrInvalidScope
	}
	return s.movementSource.Update(ctx, session, id, in, scope)
}

// Delete removes a movement, forwarding the scope choice when present.
func (s *ExpenseService) Delete(ctx context.Context, session string, id int64, scope *domain.EditScope) error {
	if scope != nil && !scope.Valid() {
		return domain.ErrInvalidScope
	}
	return s.movementSource.Delete(ctx, session, id, scope)
}
