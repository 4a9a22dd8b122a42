package service

import (
	"context"
	"testing"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestIncomeService_LoadMonth_GroupsByType(t *testing.T) {
	source := testutil.NewMockIncomeSource()
	source.AddEntry(&domain.IncomeEntry{ID: 1, Amount: decimal.NewFromInt(4000000), Type: domain.IncomeSalario, MemberID: 1})
	source.AddEntry(&domain.IncomeEntry{ID: 2, Amount: decimal.NewFromInt(1000000), Type: domain.IncomeArriendo, MemberID: 2})

	svc := NewIncomeService(source)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), domain.NewFilterSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !view.GrandTotal.Equal(decimal.NewFromInt(5000000)) {
		t.Errorf("expected grand total 5000000, got %s", view.GrandTotal)
	}
	if len(view.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(view.Groups))
	}
	if view.Groups[0].Type != domain.IncomeSalario {
		t.Errorf("largest group first: expected SALARIO, got %s", view.Groups[0].Type)
	}
	if !view.Groups[0].Percentage.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected 80%% for SALARIO, got %s", view.Groups[0].Percentage)
	}
}

func TestIncomeService_LoadMonth_MemberFilterNarrows(t *testing.T) {
	source := testutil.NewMockIncomeSource()
	source.AddEntry(&domain.IncomeEntry{ID: 1, Amount: decimal.NewFromInt(4000000), Type: domain.IncomeSalario, MemberID: 1})
	source.AddEntry(&domain.IncomeEntry{ID: 2, Amount: decimal.NewFromInt(1000000), Type: domain.IncomeSalario, MemberID: 2})

	filters := domain.NewFilterSet()
	filters.Members = domain.SelectSubset([]int64{2})

	svc := NewIncomeService(source)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), filters)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.GrandTotal.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("expected grand total 1000000, got %s", view.GrandTotal)
	}
}

func TestIncomeService_LoadMonth_TypeNoneEmptiesView(t *testing.T) {
	source := testutil.NewMockIncomeSource()
	source.AddEntry(&domain.IncomeEntry{ID: 1, Amount: decimal.NewFromInt(4000000), Type: domain.IncomeSalario, MemberID: 1})

	filters := domain.NewFilterSet()
	filters.IncomeTypes = domain.SelectNone[string]()

	svc := NewIncomeService(source)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), filters)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(view.Groups) != 0 || !view.GrandTotal.IsZero() {
		t.Errorf("None selection must render an empty view, got %d groups total %s", len(view.Groups), view.GrandTotal)
	}
}

func TestIncomeService_Create_RejectsInvalidInput(t *testing.T) {
	svc := NewIncomeService(testutil.NewMockIncomeSource())

	_, err := svc.Create(context.Background(), "s", &domain.IncomeInput{
		Amount: decimal.Zero, Type: domain.IncomeSalario, MemberID: 1,
	})
	if err != domain.ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Create(context.Background(), "s", &domain.IncomeInput{
		Amount: decimal.NewFromInt(100), Type: "LOTERIA", MemberID: 1,
	})
	if err != domain.ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput for unknown type, got %v", err)
	}
}
