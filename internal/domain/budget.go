package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly target amount.
type Budget struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Month        string          `json:"month"`
	Amount       decimal.Decimal `json:"amount"`
}

type BudgetInput struct {
	CategoryID int64           `json:"category_id" validate:"required,gt=0"`
	Month      string          `json:"month" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
}

func (in *BudgetInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if _, err := ParseMonth(in.Month); err != nil {
		return err
	}
	return nil
}

// BudgetBand is the color band of a budget progress indicator.
type BudgetBand string

const (
	BandGreen  BudgetBand = "green"
	BandYellow BudgetBand = "yellow"
	BandRed    BudgetBand = "red"
)

// BudgetSource is the upstream view of the budgets resource.
type BudgetSource interface {
	ListByMonth(ctx context.Context, session string, month Month) ([]*Budget, error)
	Upsert(ctx context.Context, session string, in *BudgetInput) (*Budget, error)
	Delete(ctx context.Context, session string, id int64) error
	CopyFromPrevious(ctx context.Context, session string, month Month) (int, error)
}
