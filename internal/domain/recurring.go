package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// RecurringTemplate is a predefined recurring movement definition. Auto-
// generated templates commit their amount against the category's budget
// before any manual spending.
type RecurringTemplate struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   int64           `json:"category_id"`
	MovementType MovementType    `json:"movement_type"`
	DayOfMonth   int             `json:"day_of_month"`
	AutoGenerate bool            `json:"auto_generate"`
}

type RecurringTemplateInput struct {
	Description  string          `json:"description" validate:"required,max=200"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	CategoryID   int64           `json:"category_id" validate:"required,gt=0"`
	MovementType MovementType    `json:"movement_type" validate:"required,oneof=HOUSEHOLD SPLIT DEBT_PAYMENT"`
	DayOfMonth   int             `json:"day_of_month" validate:"required,min=1,max=31"`
	AutoGenerate bool            `json:"auto_generate"`
}

func (in *RecurringTemplateInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if in.DayOfMonth < 1 || in.DayOfMonth > 31 {
		return ErrInvalidInput
	}
	return nil
}

// RecurringSource is the upstream view of the recurring templates resource.
type RecurringSource interface {
	List(ctx context.Context, session string) ([]*RecurringTemplate, error)
	Create(ctx context.Context, session string, in *RecurringTemplateInput) (*RecurringTemplate, error)
	Delete(ctx context.Context, session string, id int64) error
}
