package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// settledThreshold is the display-only cutoff under which a pairwise balance
// reads as settled. Residues below one currency unit come from percentage
// rounding upstream and are not worth collecting.
var settledThreshold = decimal.NewFromInt(1)

// LoanBalance is a server-computed pairwise net amount between a debtor and a
// creditor, carrying the movements that produced it for drill-down. It is
// never mutated directly; the upstream recomputes it per month.
type LoanBalance struct {
	DebtorID     int64           `json:"debtor_id"`
	DebtorName   string          `json:"debtor_name"`
	CreditorID   int64           `json:"creditor_id"`
	CreditorName string          `json:"creditor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Movements    []*Movement     `json:"movements"`
}

// Settled reports whether the outstanding amount is below the display
// threshold of one currency unit.
func (b *LoanBalance) Settled() bool {
	return b.Amount.Abs().LessThan(settledThreshold)
}

// LoanSummary is the upstream's aggregate over all pairs.
type LoanSummary struct {
	TheyOweUs decimal.Decimal `json:"they_owe_us"`
	WeOwe     decimal.Decimal `json:"we_owe"`
}

// ConsolidatedDebts is the /movements/debts/consolidate response shape.
type ConsolidatedDebts struct {
	Balances []*LoanBalance `json:"balances"`
	Summary  LoanSummary    `json:"summary"`
}

// LoanDirection tags one of the four fixed drill-down buckets a pair's
// movements partition into.
type LoanDirection string

const (
	// DirectionDebtorOwesSplit: shared expenses the creditor paid, building
	// up the debtor's obligation.
	DirectionDebtorOwesSplit LoanDirection = "debtor-owes-split"
	// DirectionDebtorPaidCreditor: repayments the debtor made.
	DirectionDebtorPaidCreditor LoanDirection = "debtor-paid-creditor"
	// DirectionCreditorOwesSplit: shared expenses the debtor paid, offsetting
	// the debt.
	DirectionCreditorOwesSplit LoanDirection = "creditor-owes-split"
	// DirectionCreditorPaidDebtor: repayments the creditor made back.
	DirectionCreditorPaidDebtor LoanDirection = "creditor-paid-debtor"
)

// LoanDirections lists the buckets in display order.
var LoanDirections = []LoanDirection{
	DirectionDebtorOwesSplit,
	DirectionDebtorPaidCreditor,
	DirectionCreditorOwesSplit,
	DirectionCreditorPaidDebtor,
}

// Matches reports whether a movement of the pair belongs to this bucket.
// SPLIT buckets key on who paid the shared expense; DEBT_PAYMENT buckets
// additionally require a negative amount, the upstream's sign convention for
// repayments. Every movement lands in at most one bucket.
func (d LoanDirection) Matches(b *LoanBalance, m *Movement) bool {
	switch d {
	case DirectionDebtorOwesSplit:
		return m.Type == MovementTypeSplit && m.PayerID == b.CreditorID
	case DirectionDebtorPaidCreditor:
		return m.Type == MovementTypeDebtPayment && m.Amount.IsNegative() && m.PayerID == b.DebtorID
	case DirectionCreditorOwesSplit:
		return m.Type == MovementTypeSplit && m.PayerID == b.DebtorID
	case DirectionCreditorPaidDebtor:
		return m.Type == MovementTypeDebtPayment && m.Amount.IsNegative() && m.PayerID == b.CreditorID
	}
	return false
}

// LoanSource is the upstream view of the consolidated debts resource.
type LoanSource interface {
	Consolidate(ctx context.Context, session string, month Month) (*ConsolidatedDebts, error)
}
