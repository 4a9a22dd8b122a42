package service

import (
	"context"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// BudgetService builds the presupuesto tab view and handles budget and
// recurring template mutations.
type BudgetService struct {
	budgetSource    domain.BudgetSource
	movementSource  domain.MovementSource
	recurringSource domain.RecurringSource
	catalogSource   domain.CatalogSource
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(
	budgetSource domain.BudgetSource,
	movementSource domain.MovementSource,
	recurringSource domain.RecurringSource,
	catalogSource domain.CatalogSource,
) *BudgetService {
	return &BudgetService{
		budgetSource:    budgetSource,
		movementSource:  movementSource,
		recurringSource: recurringSource,
		catalogSource:   catalogSource,
	}
}

// BudgetLine is one category's budget joined against what was actually spent
// and what recurring templates have already committed.
type BudgetLine struct {
	Budget    *domain.Budget  `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Committed decimal.Decimal `json:"committed"`
	Progress  *BudgetProgress `json:"progress,omitempty"`
}

// BudgetView is the presupuesto tab payload.
type BudgetView struct {
	Month       string          `json:"month"`
	Lines       []*BudgetLine   `json:"lines"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// LoadMonth fetches budgets, the month's expenses and the recurring
// templates in parallel, then joins them per category.
func (s *BudgetService) LoadMonth(ctx context.Context, session string, month domain.Month) (*BudgetView, error) {
	var (
		budgets   []*domain.Budget
		household []*domain.Movement
		splits    []*domain.Movement
		templates []*domain.RecurringTemplate
		config    *domain.FormConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgetSource.ListByMonth(gctx, session, month)
		return err
	})
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
		templates, err = s.recurringSource.List(gctx, session)
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
	spent := SpentByCategory(movements)
	committed := TemplateFloor(templates)

	view := &BudgetView{
		Month:       month.String(),
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
	}
	for _, b := range budgets {
		line := &BudgetLine{
			Budget:    b,
			Spent:     spent[b.CategoryID],
			Committed: committed[b.CategoryID],
			Progress:  Progress(b, spent[b.CategoryID]),
		}
		view.Lines = append(view.Lines, line)
		view.TotalBudget = view.TotalBudget.Add(b.Amount)
		view.TotalSpent = view.TotalSpent.Add(line.Spent)
	}
	return view, nil
}

// Upsert validates and saves a budget. A budget below the amount committed by
// auto-generated templates for its category is rejected before any upstream
// call.
func (s *BudgetService) Upsert(ctx context.Context, session string, in *domain.BudgetInput) (*domain.Budget, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	templates, err := s.recurringSource.List(ctx, session)
	if err != nil {
		return nil, err
	}
	floor := TemplateFloor(templates)
	if committed, ok := floor[in.CategoryID]; ok && in.Amount.LessThan(committed) {
		return nil, domain.ErrBudgetBelowFloor
	}

	return s.budgetSource.Upsert(ctx, session, in)
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, session string, id int64) error {
	return s.budgetSource.Delete(ctx, session, id)
}

// CopyFromPrevious bulk-copies the previous month's budgets into month.
func (s *BudgetService) CopyFromPrevious(ctx context.Context, session string, month domain.Month) (int, error) {
	return s.budgetSource.CopyFromPrevious(ctx, session, month)
}

// TemplateView pairs a recurring template with the date it generates a
// movement in the viewed month, with the day clamped to short months.
type TemplateView struct {
	Template       *domain.RecurringTemplate `json:"template"`
	GenerationDate string                    `json:"generation_date"`
}

// ListTemplates returns every recurring template with its generation date in
// the given month.
func (s *BudgetService) ListTemplates(ctx context.Context, session string, month domain.Month) ([]*TemplateView, error) {
	templates, err := s.recurringSource.List(ctx, session)
	if err != nil {
		return nil, err
	}
	views := make([]*TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, &TemplateView{
			Template:       t,
			GenerationDate: month.Day(t.DayOfMonth).Format("2006-01-02"),
		})
	}
	return views, nil
}

// CreateTemplate validates and creates a recurring template.
func (s *BudgetService) CreateTemplate(ctx context.Context, session string, in *domain.RecurringTemplateInput) (*domain.RecurringTemplate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.recurringSource.Create(ctx, session, in)
}

// DeleteTemplate removes a recurring template.
func (s *BudgetService) DeleteTemplate(ctx context.Context, session string, id int64) error {
	return s.recurringSource.Delete(ctx, session, id)
}
