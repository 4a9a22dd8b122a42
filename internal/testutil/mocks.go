// Package testutil provides hand-rolled mocks for the upstream source
// interfaces used by service tests.
package testutil

import (
	"context"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

var (
	_ domain.MovementSource  = (*MockMovementSource)(nil)
	_ domain.IncomeSource    = (*MockIncomeSource)(nil)
	_ domain.LoanSource      = (*MockLoanSource)(nil)
	_ domain.BudgetSource    = (*MockBudgetSource)(nil)
	_ domain.RecurringSource = (*MockRecurringSource)(nil)
	_ domain.CardSource      = (*MockCardSource)(nil)
	_ domain.CatalogSource   = (*MockCatalogSource)(nil)
)

// MockMovementSource is a mock implementation of domain.MovementSource
type MockMovementSource struct {
	Movements map[domain.MovementType][]*domain.Movement
	Groups    []*domain.CategoryGroup
	ListErr   error
	CreateFn  func(in *domain.MovementInput) (*domain.Movement, error)
	UpdateFn  func(id int64, in *domain.MovementInput, scope *domain.EditScope) (*domain.Movement, error)
	DeleteFn  func(id int64, scope *domain.EditScope) error
	ListCalls int
}

// NewMockMovementSource creates a new MockMovementSource
func NewMockMovementSource() *MockMovementSource {
	return &MockMovementSource{
		Movements: make(map[domain.MovementType][]*domain.Movement),
	}
}

// AddMovement registers a movement under its type
func (m *MockMovementSource) AddMovement(mv *domain.Movement) {
	m.Movements[mv.Type] = append(m.Movements[mv.Type], mv)
}

func (m *MockMovementSource) ListByMonth(_ context.Context, _ string, _ domain.Month, typ domain.MovementType) ([]*domain.Movement, []*domain.CategoryGroup, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, nil, m.ListErr
	}
	return m.Movements[typ], m.Groups, nil
}

func (m *MockMovementSource) Create(_ context.Context, _ string, in *domain.MovementInput) (*domain.Movement, error) {
	if m.CreateFn != nil {
		return m.CreateFn(in)
	}
	created := &domain.Movement{
		ID:              1,
		Amount:          in.Amount,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		PaymentMethodID: in.PaymentMethodID,
		MovementDate:    in.MovementDate,
		Type:            in.Type,
		PayerID:         in.PayerID,
		Participants:    in.Participants,
	}
	m.AddMovement(created)
	return created, nil
}

func (m *MockMovementSource) Update(_ context.Context, _ string, id int64, in *domain.MovementInput, scope *domain.EditScope) (*domain.Movement, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(id, in, scope)
	}
	return &domain.Movement{ID: id, Amount: in.Amount, Type: in.Type}, nil
}

func (m *MockMovementSource) Delete(_ context.Context, _ string, id int64, scope *domain.EditScope) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id, scope)
	}
	return nil
}

// MockIncomeSource is a mock implementation of domain.IncomeSource
type MockIncomeSource struct {
	Entries  []*domain.IncomeEntry
	ListErr  error
	CreateFn func(in *domain.IncomeInput) (*domain.IncomeEntry, error)
	DeleteFn func(id int64) error
}

// NewMockIncomeSource creates a new MockIncomeSource
func NewMockIncomeSource() *MockIncomeSource {
	return &MockIncomeSource{}
}

// AddEntry registers an income entry
func (m *MockIncomeSource) AddEntry(e *domain.IncomeEntry) {
	m.Entries = append(m.Entries, e)
}

func (m *MockIncomeSource) ListByMonth(_ context.Context, _ string, _ domain.Month) (*domain.IncomeList, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	list := &domain.IncomeList{Entries: m.Entries}
	for _, e := range m.Entries {
		list.Total = list.Total.Add(e.Amount)
	}
	return list, nil
}

func (m *MockIncomeSource) Create(_ context.Context, _ string, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	if m.CreateFn != nil {
		return m.CreateFn(in)
	}
	created := &domain.IncomeEntry{
		ID:          int64(len(m.Entries) + 1),
		Amount:      in.Amount,
		Type:        in.Type,
		MemberID:    in.MemberID,
		IncomeDate:  in.IncomeDate,
		Description: in.Description,
	}
	m.AddEntry(created)
	return created, nil
}

func (m *MockIncomeSource) Update(_ context.Context, _ string, id int64, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	for _, e := range m.Entries {
		if e.ID == id {
			e.Amount = in.Amount
			e.Type = in.Type
			e.MemberID = in.MemberID
			e.Description = in.Description
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockIncomeSource) Delete(_ context.Context, _ string, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

// MockLoanSource is a mock implementation of domain.LoanSource
type MockLoanSource struct {
	Debts *domain.ConsolidatedDebts
	Err   error
}

// NewMockLoanSource creates a new MockLoanSource
func NewMockLoanSource() *MockLoanSource {
	return &MockLoanSource{Debts: &domain.ConsolidatedDebts{}}
}

// AddBalance registers a pairwise balance
func (m *MockLoanSource) AddBalance(b *domain.LoanBalance) {
	m.Debts.Balances = append(m.Debts.Balances, b)
}

func (m *MockLoanSource) Consolidate(_ context.Context, _ string, _ domain.Month) (*domain.ConsolidatedDebts, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Debts, nil
}

// MockBudgetSource is a mock implementation of domain.BudgetSource
type MockBudgetSource struct {
	Budgets  []*domain.Budget
	ListErr  error
	UpsertFn func(in *domain.BudgetInput) (*domain.Budget, error)
	DeleteFn func(id int64) error
	Copied   int
}

// NewMockBudgetSource creates a new MockBudgetSource
func NewMockBudgetSource() *MockBudgetSource {
	return &MockBudgetSource{}
}

// AddBudget registers a budget
func (m *MockBudgetSource) AddBudget(b *domain.Budget) {
	m.Budgets = append(m.Budgets, b)
}

func (m *MockBudgetSource) ListByMonth(_ context.Context, _ string, _ domain.Month) ([]*domain.Budget, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Budgets, nil
}

func (m *MockBudgetSource) Upsert(_ context.Context, _ string, in *domain.BudgetInput) (*domain.Budget, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(in)
	}
	saved := &domain.Budget{
		ID:         int64(len(m.Budgets) + 1),
		CategoryID: in.CategoryID,
		Month:      in.Month,
		Amount:     in.Amount,
	}
	m.AddBudget(saved)
	return saved, nil
}

func (m *MockBudgetSource) Delete(_ context.Context, _ string, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

func (m *MockBudgetSource) CopyFromPrevious(_ context.Context, _ string, _ domain.Month) (int, error) {
	return m.Copied, nil
}

// MockRecurringSource is a mock implementation of domain.RecurringSource
type MockRecurringSource struct {
	Templates []*domain.RecurringTemplate
	ListErr   error
}

// NewMockRecurringSource creates a new MockRecurringSource
func NewMockRecurringSource() *MockRecurringSource {
	return &MockRecurringSource{}
}

// AddTemplate registers a recurring template
func (m *MockRecurringSource) AddTemplate(t *domain.RecurringTemplate) {
	m.Templates = append(m.Templates, t)
}

func (m *MockRecurringSource) List(_ context.Context, _ string) ([]*domain.RecurringTemplate, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Templates, nil
}

func (m *MockRecurringSource) Create(_ context.Context, _ string, in *domain.RecurringTemplateInput) (*domain.RecurringTemplate, error) {
	created := &domain.RecurringTemplate{
		ID:           int64(len(m.Templates) + 1),
		Description:  in.Description,
		Amount:       in.Amount,
		CategoryID:   in.CategoryID,
		MovementType: in.MovementType,
		DayOfMonth:   in.DayOfMonth,
		AutoGenerate: in.AutoGenerate,
	}
	m.AddTemplate(created)
	return created, nil
}

func (m *MockRecurringSource) Delete(_ context.Context, _ string, _ int64) error {
	return nil
}

// MockCardSource is a mock implementation of domain.CardSource
type MockCardSource struct {
	Cards        []*domain.CardSummary
	Detail       *domain.CardMovements
	SummaryErr   error
	SummaryCalls int
	LastCardIDs  []int64
	LastOwnerIDs []int64
}

// NewMockCardSource creates a new MockCardSource
func NewMockCardSource() *MockCardSource {
	return &MockCardSource{Detail: &domain.CardMovements{}}
}

// AddCard registers a card summary
func (m *MockCardSource) AddCard(c *domain.CardSummary) {
	m.Cards = append(m.Cards, c)
}

func (m *MockCardSource) Summary(_ context.Context, _ string, _ time.Time, cardIDs, ownerIDs []int64) ([]*domain.CardSummary, error) {
	m.SummaryCalls++
	m.LastCardIDs = cardIDs
	m.LastOwnerIDs = ownerIDs
	if m.SummaryErr != nil {
		return nil, m.SummaryErr
	}
	return m.Cards, nil
}

func (m *MockCardSource) Movements(_ context.Context, _ string, _ int64, _ time.Time) (*domain.CardMovements, error) {
	return m.Detail, nil
}

func (m *MockCardSource) CreatePayment(_ context.Context, _ string, _ *domain.CardPaymentInput) error {
	return nil
}

func (m *MockCardSource) DeletePayment(_ context.Context, _ string, _ int64) error {
	return nil
}

// MockCatalogSource is a mock implementation of domain.CatalogSource
type MockCatalogSource struct {
	Config      *domain.FormConfig
	AccountList []*domain.Account
}

// NewMockCatalogSource creates a MockCatalogSource with the given household
// members
func NewMockCatalogSource(members ...domain.Member) *MockCatalogSource {
	return &MockCatalogSource{
		Config: &domain.FormConfig{Members: members},
	}
}

func (m *MockCatalogSource) FormConfig(_ context.Context, _ string) (*domain.FormConfig, error) {
	return m.Config, nil
}

func (m *MockCatalogSource) CategoryGroups(_ context.Context, _ string) ([]*domain.CategoryGroup, error) {
	groups := make([]*domain.CategoryGroup, len(m.Config.CategoryGroups))
	for i := range m.Config.CategoryGroups {
		groups[i] = &m.Config.CategoryGroups[i]
	}
	return groups, nil
}

func (m *MockCatalogSource) Accounts(_ context.Context, _ string) ([]*domain.Account, error) {
	return m.AccountList, nil
}
