package service

import (
	"context"
	"testing"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/hogarlabs/hogar-gateway/internal/testutil"
	"github.com/shopspring/decimal"
)

func testMonth() domain.Month {
	m, _ := domain.ParseMonth("2024-12")
	return m
}

func pairBalance() *domain.LoanBalance {
	return &domain.LoanBalance{
		DebtorID:     1,
		DebtorName:   "Ana",
		CreditorID:   2,
		CreditorName: "Luis",
		Amount:       decimal.NewFromInt(35000),
		Movements: []*domain.Movement{
			{ID: 10, Type: domain.MovementTypeSplit, PayerID: 2, Amount: decimal.NewFromInt(50000), Description: "Mercado"},
			{ID: 11, Type: domain.MovementTypeDebtPayment, PayerID: 1, Amount: decimal.NewFromInt(-15000), Description: "Abono"},
		},
	}
}

func TestLoanService_LoadMonth_BuildsDrilldown(t *testing.T) {
	loanSource := testutil.NewMockLoanSource()
	loanSource.AddBalance(pairBalance())
	loanSource.Debts.Summary = domain.LoanSummary{TheyOweUs: decimal.NewFromInt(35000)}

	svc := NewLoanService(loanSource)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), domain.NewFilterSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(view.Rows))
	}
	row := view.Rows[0]
	if row.Settled {
		t.Error("35000 outstanding must not read as settled")
	}

	// two populated buckets, empty ones omitted
	if len(row.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(row.Buckets))
	}
	if row.Buckets[0].Direction != domain.DirectionDebtorOwesSplit {
		t.Errorf("expected debtor-owes-split first, got %s", row.Buckets[0].Direction)
	}
	if !row.Buckets[0].Total.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected bucket total 50000, got %s", row.Buckets[0].Total)
	}
	if row.Buckets[1].Direction != domain.DirectionDebtorPaidCreditor {
		t.Errorf("expected debtor-paid-creditor second, got %s", row.Buckets[1].Direction)
	}
	// repayment amount displayed positive
	if !row.Buckets[1].Total.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("expected bucket total 15000, got %s", row.Buckets[1].Total)
	}
	if !row.Buckets[1].Movements[0].Amount.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("expected level-3 amount 15000, got %s", row.Buckets[1].Movements[0].Amount)
	}

	if !view.Summary.TheyOweUs.Equal(decimal.NewFromInt(35000)) {
		t.Errorf("summary must pass through, got %s", view.Summary.TheyOweUs)
	}
}

func TestLoanService_LoadMonth_SettledRow(t *testing.T) {
	loanSource := testutil.NewMockLoanSource()
	loanSource.AddBalance(&domain.LoanBalance{DebtorID: 1, CreditorID: 2, Amount: decimal.RequireFromString("0.5")})

	svc := NewLoanService(loanSource)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), domain.NewFilterSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.Rows[0].Settled {
		t.Error("0.5 outstanding must read as settled")
	}
}

func TestLoanService_LoadMonth_PeopleFilterANDSemantics(t *testing.T) {
	loanSource := testutil.NewMockLoanSource()
	loanSource.AddBalance(&domain.LoanBalance{DebtorID: 1, CreditorID: 3, Amount: decimal.NewFromInt(10000)})
	loanSource.AddBalance(&domain.LoanBalance{DebtorID: 1, CreditorID: 2, Amount: decimal.NewFromInt(20000)})

	filters := domain.NewFilterSet()
	filters.LoanPeople = domain.SelectSubset([]int64{1, 2})

	svc := NewLoanService(loanSource)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), filters)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 row after AND filter, got %d", len(view.Rows))
	}
	if view.Rows[0].CreditorID != 2 {
		t.Errorf("expected the 1-2 pair to survive, got creditor %d", view.Rows[0].CreditorID)
	}
}

func TestLoanService_LoadMonth_BucketsPartitionWithoutOverlap(t *testing.T) {
	balance := pairBalance()
	loanSource := testutil.NewMockLoanSource()
	loanSource.AddBalance(balance)

	svc := NewLoanService(loanSource)
	view, err := svc.LoadMonth(context.Background(), "s", testMonth(), domain.NewFilterSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	seen := make(map[int64]int)
	for _, bucket := range view.Rows[0].Buckets {
		for _, m := range bucket.Movements {
			seen[m.ID]++
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("movement %d appears in %d buckets", id, count)
		}
	}
	if len(seen) != len(balance.Movements) {
		t.Errorf("expected all %d movements bucketed, got %d", len(balance.Movements), len(seen))
	}
}
