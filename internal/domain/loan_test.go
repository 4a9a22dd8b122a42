package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoanBalance_Settled(t *testing.T) {
	tests := []struct {
		amount  string
		settled bool
	}{
		{"0", true},
		{"0.5", true},
		{"-0.5", true},
		{"0.99", true},
		{"1", false},
		{"1.5", false},
		{"80000", false},
	}

	for _, tt := range tests {
		b := &LoanBalance{Amount: decimal.RequireFromString(tt.amount)}
		if got := b.Settled(); got != tt.settled {
			t.Errorf("amount %s: expected settled=%v, got %v", tt.amount, tt.settled, got)
		}
	}
}

func TestLoanDirection_Partition(t *testing.T) {
	balance := &LoanBalance{DebtorID: 1, CreditorID: 2}

	movements := []*Movement{
		// creditor paid a shared expense: debtor owes
		{ID: 10, Type: MovementTypeSplit, PayerID: 2, Amount: decimal.NewFromInt(50000)},
		// debtor paid a shared expense: offsets the debt
		{ID: 11, Type: MovementTypeSplit, PayerID: 1, Amount: decimal.NewFromInt(20000)},
		// debtor repaid the creditor
		{ID: 12, Type: MovementTypeDebtPayment, PayerID: 1, Amount: decimal.NewFromInt(-10000)},
		// creditor paid the debtor back
		{ID: 13, Type: MovementTypeDebtPayment, PayerID: 2, Amount: decimal.NewFromInt(-5000)},
		// a household movement in the pair's list matches no bucket
		{ID: 14, Type: MovementTypeHousehold, PayerID: 1, Amount: decimal.NewFromInt(999)},
	}

	expected := map[int64]LoanDirection{
		10: DirectionDebtorOwesSplit,
		11: DirectionCreditorOwesSplit,
		12: DirectionDebtorPaidCreditor,
		13: DirectionCreditorPaidDebtor,
	}

	for _, m := range movements {
		var matched []LoanDirection
		for _, d := range LoanDirections {
			if d.Matches(balance, m) {
				matched = append(matched, d)
			}
		}
		want, ok := expected[m.ID]
		if !ok {
			if len(matched) != 0 {
				t.Errorf("movement %d: expected no bucket, matched %v", m.ID, matched)
			}
			continue
		}
		if len(matched) != 1 {
			t.Fatalf("movement %d: expected exactly one bucket, matched %v", m.ID, matched)
		}
		if matched[0] != want {
			t.Errorf("movement %d: expected bucket %s, got %s", m.ID, want, matched[0])
		}
	}
}

func TestLoanDirection_PositiveDebtPaymentMatchesNothing(t *testing.T) {
	balance := &LoanBalance{DebtorID: 1, CreditorID: 2}
	m := &Movement{Type: MovementTypeDebtPayment, PayerID: 1, Amount: decimal.NewFromInt(10000)}

	for _, d := range LoanDirections {
		if d.Matches(balance, m) {
			t.Errorf("positive DEBT_PAYMENT must not land in bucket %s", d)
		}
	}
}
