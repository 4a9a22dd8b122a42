package service

import (
	"context"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeService builds the ingresos tab view and handles income mutations.
type IncomeService struct {
	incomeSource domain.IncomeSource
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeSource domain.IncomeSource) *IncomeService {
	return &IncomeService{incomeSource: incomeSource}
}

// IncomeView is the aggregated ingresos tab payload.
type IncomeView struct {
	Month      string          `json:"month"`
	Groups     []*IncomeGroup  `json:"groups"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// LoadMonth fetches a month of income, applies the member and income-type
// selections, and folds the survivors into per-type groups.
func (s *IncomeService) LoadMonth(ctx context.Context, session string, month domain.Month, filters domain.FilterSet) (*IncomeView, error) {
	list, err := s.incomeSource.ListByMonth(ctx, session, month)
	if err != nil {
		return nil, err
	}

	entries := filterIncome(list.Entries, filters)
	groups, grand := GroupIncome(entries)

	return &IncomeView{
		Month:      month.String(),
		Groups:     groups,
		GrandTotal: grand,
	}, nil
}

func filterIncome(entries []*domain.IncomeEntry, f domain.FilterSet) []*domain.IncomeEntry {
	if f.Members.IsNone() || f.IncomeTypes.IsNone() {
		return nil
	}
	out := make([]*domain.IncomeEntry, 0, len(entries))
	for _, e := range entries {
		if !f.Members.Matches(e.MemberID) {
			continue
		}
		if !f.IncomeTypes.Matches(string(e.Type)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Create validates and creates an income entry.
func (s *IncomeService) Create(ctx context.Context, session string, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.incomeSource.Create(ctx, session, in)
}

// Update validates and edits an income entry.
func (s *IncomeService) Update(ctx context.Context, session string, id int64, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.incomeSource.Update(ctx, session, id, in)
}

// Delete removes an income entry.
func (s *IncomeService) Delete(ctx context.Context, session string, id int64) error {
	return s.incomeSource.Delete(ctx, session, id)
}
