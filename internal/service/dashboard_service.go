package service

import (
	"context"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/rs/zerolog/log"
)

// DashboardService orchestrates per-tab loads: sequence-guarded fetches,
// reload marking after mutations, and the ?reload= seed.
type DashboardService struct {
	state    *DashboardState
	expenses *ExpenseService
	income   *IncomeService
	loans    *LoanService
	budgets  *BudgetService
	cards    *CardService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	state *DashboardState,
	expenses *ExpenseService,
	income *IncomeService,
	loans *LoanService,
	budgets *BudgetService,
	cards *CardService,
) *DashboardService {
	return &DashboardService{
		state:    state,
		expenses: expenses,
		income:   income,
		loans:    loans,
		budgets:  budgets,
		cards:    cards,
	}
}

// TabPayload is one tab's view-ready data. Exactly one of the view fields is
// set, matching the tab.
type TabPayload struct {
	Tab      domain.Tab   `json:"tab"`
	Month    string       `json:"month"`
	Reloaded bool         `json:"reloaded"`
	Expenses *ExpenseView `json:"expenses,omitempty"`
	Income   *IncomeView  `json:"income,omitempty"`
	Loans    *LoanView    `json:"loans,omitempty"`
	Budgets  *BudgetView  `json:"budgets,omitempty"`
	Cards    *CardView    `json:"cards,omitempty"`
}

// SeedReload marks tabs stale from the page's ?reload=tab1,tab2 parameter.
func (s *DashboardService) SeedReload(session string, tabs []domain.Tab) {
	if len(tabs) > 0 {
		s.state.MarkForReload(session, tabs...)
	}
}

// LoadTab builds the payload for one tab. Each call begins a new load
// sequence for its (session, tab); if a newer load starts while this one is
// in flight, the finished payload is discarded and ErrStaleLoad returned, so
// rapid month paging can never apply responses out of order.
func (s *DashboardService) LoadTab(ctx context.Context, session string, tab domain.Tab, month domain.Month, filters domain.FilterSet) (*TabPayload, error) {
	seq := s.state.BeginLoad(session, tab)
	reloaded := s.state.ConsumeReload(session, tab)

	payload := &TabPayload{Tab: tab, Month: month.String(), Reloaded: reloaded}

	var err error
	switch tab {
	case domain.TabGastos:
		payload.Expenses, err = s.expenses.LoadMonth(ctx, session, month, filters)
	case domain.TabIngresos:
		payload.Income, err = s.income.LoadMonth(ctx, session, month, filters)
	case domain.TabPrestamos:
		payload.Loans, err = s.loans.LoadMonth(ctx, session, month, filters)
	case domain.TabPresupuesto:
		payload.Budgets, err = s.budgets.LoadMonth(ctx, session, month)
	case domain.TabTarjetas:
		payload.Cards, err = s.cards.LoadCycle(ctx, session, month.FirstDay(), filters)
	default:
		return nil, domain.ErrInvalidTab
	}
	if err != nil {
		return nil, err
	}

	if !s.state.CommitLoad(session, tab, seq) {
		log.Debug().Str("tab", string(tab)).Uint64("seq", seq).Msg("Discarding superseded tab load")
		return nil, domain.ErrStaleLoad
	}
	return payload, nil
}

// AffectedTabs maps a mutation on one resource to the tabs whose data it
// stales. The mutated tab itself is included; the caller reloads the active
// tab immediately and the rest stay marked until visited.
func AffectedTabs(tab domain.Tab) []domain.Tab {
	switch tab {
	case domain.TabGastos:
		// Movements feed expense grouping, loan balances and budget spent.
		return []domain.Tab{domain.TabGastos, domain.TabPrestamos, domain.TabPresupuesto}
	case domain.TabPresupuesto:
		// Budgets also drive the progress bars on the expense cards.
		return []domain.Tab{domain.TabPresupuesto, domain.TabGastos}
	case domain.TabTarjetas:
		// Card payments surface as movements too.
		return []domain.Tab{domain.TabTarjetas, domain.TabGastos}
	default:
		return []domain.Tab{tab}
	}
}

// Invalidate marks every tab affected by a mutation for reload.
func (s *DashboardService) Invalidate(session string, tab domain.Tab) {
	s.state.MarkForReload(session, AffectedTabs(tab)...)
}
