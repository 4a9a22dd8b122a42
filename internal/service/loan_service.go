package service

import (
	"context"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanService builds the prestamos tab view: the full three-level disclosure
// tree over the server-computed pairwise balances.
type LoanService struct {
	loanSource domain.LoanSource
}

// NewLoanService creates a new LoanService.
func NewLoanService(loanSource domain.LoanSource) *LoanService {
	return &LoanService{loanSource: loanSource}
}

// LoanMovementRow is a level-3 drill-down row. Amount is always positive for
// display; repayments carry a negative sign upstream.
type LoanMovementRow struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	MovementDate time.Time       `json:"movement_date"`
	FromTemplate bool            `json:"from_template"`
}

// DirectionBucket is a level-2 drill-down bucket: one of the four fixed
// who-owes-whom x split-vs-payment partitions of a pair's movements.
type DirectionBucket struct {
	Direction domain.LoanDirection `json:"direction"`
	Total     decimal.Decimal      `json:"total"`
	Movements []*LoanMovementRow   `json:"movements"`
}

// LoanRow is a level-1 balance row with its full drill-down attached.
type LoanRow struct {
	DebtorID     int64              `json:"debtor_id"`
	DebtorName   string             `json:"debtor_name"`
	CreditorID   int64              `json:"creditor_id"`
	CreditorName string             `json:"creditor_name"`
	Amount       decimal.Decimal    `json:"amount"`
	Settled      bool               `json:"settled"`
	Buckets      []*DirectionBucket `json:"buckets"`
}

// LoanView is the prestamos tab payload.
type LoanView struct {
	Month   string             `json:"month"`
	Rows    []*LoanRow         `json:"rows"`
	Summary domain.LoanSummary `json:"summary"`
}

// LoadMonth fetches the consolidated balances and builds the disclosure tree.
// The people filter keeps a pair only when both debtor and creditor are
// selected.
func (s *LoanService) LoadMonth(ctx context.Context, session string, month domain.Month, filters domain.FilterSet) (*LoanView, error) {
	debts, err := s.loanSource.Consolidate(ctx, session, month)
	if err != nil {
		return nil, err
	}

	rows := make([]*LoanRow, 0, len(debts.Balances))
	for _, balance := range debts.Balances {
		if !filters.LoanPeople.MatchesPair(balance.DebtorID, balance.CreditorID) {
			continue
		}
		rows = append(rows, buildLoanRow(balance))
	}

	return &LoanView{
		Month:   month.String(),
		Rows:    rows,
		Summary: debts.Summary,
	}, nil
}

func buildLoanRow(balance *domain.LoanBalance) *LoanRow {
	row := &LoanRow{
		DebtorID:     balance.DebtorID,
		DebtorName:   balance.DebtorName,
		CreditorID:   balance.CreditorID,
		CreditorName: balance.CreditorName,
		Amount:       balance.Amount,
		Settled:      balance.Settled(),
	}
	for _, direction := range domain.LoanDirections {
		if bucket := buildBucket(balance, direction); bucket != nil {
			row.Buckets = append(row.Buckets, bucket)
		}
	}
	return row
}

// buildBucket partitions by re-applying the direction predicate, the same
// predicate the level-3 listing derives from the direction tag. A bucket with
// no movements is omitted.
func buildBucket(balance *domain.LoanBalance, direction domain.LoanDirection) *DirectionBucket {
	bucket := &DirectionBucket{Direction: direction, Total: decimal.Zero}
	for _, m := range balance.Movements {
		if !direction.Matches(balance, m) {
			continue
		}
		bucket.Total = bucket.Total.Add(m.Amount.Abs())
		bucket.Movements = append(bucket.Movements, &LoanMovementRow{
			ID:           m.ID,
			Description:  m.Description,
			Amount:       m.Amount.Abs(),
			MovementDate: m.MovementDate,
			FromTemplate: m.FromTemplate(),
		})
	}
	if len(bucket.Movements) == 0 {
		return nil
	}
	return bucket
}
