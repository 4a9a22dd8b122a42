package service

import (
	"sort"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeGroup is one income type with its entries and share of the month.
type IncomeGroup struct {
	Type       domain.IncomeType     `json:"type"`
	Total      decimal.Decimal       `json:"total"`
	Percentage decimal.Decimal       `json:"percentage"`
	Entries    []*domain.IncomeEntry `json:"entries"`
}

// CategorySummary is one leaf category with its movements and, when a budget
// exists, its progress indicator.
type CategorySummary struct {
	CategoryID   int64              `json:"category_id"`
	CategoryName string             `json:"category_name"`
	Total        decimal.Decimal    `json:"total"`
	Percentage   decimal.Decimal    `json:"percentage"`
	Movements    []*domain.Movement `json:"movements"`
	Budget       *BudgetProgress    `json:"budget,omitempty"`
}

// GroupSummary is one category group with its per-category breakdown.
type GroupSummary struct {
	GroupName  string             `json:"group_name"`
	Total      decimal.Decimal    `json:"total"`
	Categories []*CategorySummary `json:"categories"`
}

// BudgetProgress is the spent-vs-budget indicator for a category.
// Percentage is unbounded above; BarWidth is clamped to 100 for rendering.
type BudgetProgress struct {
	BudgetID   int64             `json:"budget_id"`
	Amount     decimal.Decimal   `json:"amount"`
	Percentage decimal.Decimal   `json:"percentage"`
	Band       domain.BudgetBand `json:"band"`
	BarWidth   int               `json:"bar_width"`
}

// fallbackGroup receives movements whose category has no group.
const fallbackGroup = "Otros"

var hundred = decimal.NewFromInt(100)

// AdjustSplits rewrites SPLIT movements to the household's share: a SPLIT is
// kept only when at least one participant is a household member, and its
// amount becomes the original amount scaled by the sum of household
// participants' percentages. Other movement types pass through unchanged.
// The input slice is not mutated.
func AdjustSplits(movements []*domain.Movement, memberIDs map[int64]struct{}) []*domain.Movement {
	out := make([]*domain.Movement, 0, len(movements))
	for _, m := range movements {
		if m.Type != domain.MovementTypeSplit {
			out = append(out, m)
			continue
		}
		share := decimal.Zero
		kept := false
		for _, p := range m.Participants {
			if p.UserID == nil {
				continue
			}
			if _, ok := memberIDs[*p.UserID]; ok {
				share = share.Add(p.Percentage)
				kept = true
			}
		}
		if !kept {
			continue
		}
		adjusted := *m
		adjusted.Amount = m.Amount.Mul(share)
		out = append(out, &adjusted)
	}
	return out
}

// FilterMovements narrows a movement list by the committed member, category
// and payment-method selections. Any dimension in the None state empties the
// result.
func FilterMovements(movements []*domain.Movement, f domain.FilterSet) []*domain.Movement {
	if f.Members.IsNone() || f.Categories.IsNone() || f.PaymentMethods.IsNone() {
		return nil
	}
	out := make([]*domain.Movement, 0, len(movements))
	for _, m := range movements {
		if !f.Members.Matches(m.PayerID) {
			continue
		}
		if !f.Categories.Matches(m.CategoryID) {
			continue
		}
		if !f.PaymentMethods.Matches(m.PaymentMethodID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// GroupExpenses folds a flat movement list into group -> category summaries.
// Both levels are sorted by running total descending (name ascending on
// ties); movements inside a category are sorted by date descending, and each
// category carries its percentage of the month's grand total at two
// decimals. The fold is deterministic: running it twice on the same input
// yields identical output.
func GroupExpenses(movements []*domain.Movement) []*GroupSummary {
	groups := make(map[string]*GroupSummary)
	categories := make(map[string]map[int64]*CategorySummary)

	for _, m := range movements {
		groupName := m.CategoryGroupName
		if groupName == "" {
			groupName = fallbackGroup
		}
		group, ok := groups[groupName]
		if !ok {
			group = &GroupSummary{GroupName: groupName, Total: decimal.Zero}
			groups[groupName] = group
			categories[groupName] = make(map[int64]*CategorySummary)
		}
		cat, ok := categories[groupName][m.CategoryID]
		if !ok {
			cat = &CategorySummary{
				CategoryID:   m.CategoryID,
				CategoryName: m.CategoryName,
				Total:        decimal.Zero,
			}
			categories[groupName][m.CategoryID] = cat
		}
		group.Total = group.Total.Add(m.Amount)
		cat.Total = cat.Total.Add(m.Amount)
		cat.Movements = append(cat.Movements, m)
	}

	out := make([]*GroupSummary, 0, len(groups))
	for name, group := range groups {
		for _, cat := range categories[name] {
			sort.SliceStable(cat.Movements, func(i, j int) bool {
				return cat.Movements[i].MovementDate.After(cat.Movements[j].MovementDate)
			})
			group.Categories = append(group.Categories, cat)
		}
		sort.Slice(group.Categories, func(i, j int) bool {
			a, b := group.Categories[i], group.Categories[j]
			if !a.Total.Equal(b.Total) {
				return a.Total.GreaterThan(b.Total)
			}
			return a.CategoryName < b.CategoryName
		})
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].GroupName < out[j].GroupName
	})

	grand := decimal.Zero
	for _, group := range out {
		grand = grand.Add(group.Total)
	}
	if grand.IsPositive() {
		for _, group := range out {
			for _, cat := range group.Categories {
				cat.Percentage = cat.Total.Div(grand).Mul(hundred).Round(2)
			}
		}
	}
	return out
}

// GroupIncome folds income entries into per-type groups sorted by total
// descending, each carrying its percentage of the grand total at two
// decimals.
func GroupIncome(entries []*domain.IncomeEntry) ([]*IncomeGroup, decimal.Decimal) {
	byType := make(map[domain.IncomeType]*IncomeGroup)
	grand := decimal.Zero

	for _, e := range entries {
		group, ok := byType[e.Type]
		if !ok {
			group = &IncomeGroup{Type: e.Type, Total: decimal.Zero}
			byType[e.Type] = group
		}
		group.Total = group.Total.Add(e.Amount)
		group.Entries = append(group.Entries, e)
		grand = grand.Add(e.Amount)
	}

	out := make([]*IncomeGroup, 0, len(byType))
	for _, group := range byType {
		if grand.IsPositive() {
			group.Percentage = group.Total.Div(grand).Mul(hundred).Round(2)
		}
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Type < out[j].Type
	})
	return out, grand
}

// Progress builds the budget indicator for a category. A zero budget yields
// no indicator.
func Progress(budget *domain.Budget, spent decimal.Decimal) *BudgetProgress {
	if budget == nil || budget.Amount.IsZero() {
		return nil
	}
	// band and width come from the exact ratio; rounding is display-only
	pct := spent.Div(budget.Amount).Mul(hundred)

	band := domain.BandGreen
	switch {
	case pct.GreaterThan(hundred):
		band = domain.BandRed
	case pct.GreaterThanOrEqual(decimal.NewFromInt(80)):
		band = domain.BandYellow
	}

	width := 100
	if pct.LessThan(hundred) {
		width = int(pct.IntPart())
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Amount:     budget.Amount,
		Percentage: pct.Round(2),
		Band:       band,
		BarWidth:   width,
	}
}

// SpentByCategory sums movement amounts per category id.
func SpentByCategory(movements []*domain.Movement) map[int64]decimal.Decimal {
	spent := make(map[int64]decimal.Decimal)
	for _, m := range movements {
		spent[m.CategoryID] = spent[m.CategoryID].Add(m.Amount)
	}
	return spent
}

// TemplateFloor sums the amounts auto-generated expense templates commit per
// category. Budgets may not be set below this floor. DEBT_PAYMENT templates
// never count: loan repayments do not land on the expense dashboard.
func TemplateFloor(templates []*domain.RecurringTemplate) map[int64]decimal.Decimal {
	floor := make(map[int64]decimal.Decimal)
	for _, t := range templates {
		if !t.AutoGenerate {
			continue
		}
		if t.MovementType != domain.MovementTypeHousehold && t.MovementType != domain.MovementTypeSplit {
			continue
		}
		floor[t.CategoryID] = floor[t.CategoryID].Add(t.Amount)
	}
	return floor
}
