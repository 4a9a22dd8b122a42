package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType is one of the fixed income categories the backend accepts.
type IncomeType string

const (
	IncomeSalario    IncomeType = "SALARIO"
	IncomeHonorarios IncomeType = "HONORARIOS"
	IncomeArriendo   IncomeType = "ARRIENDO"
	IncomeIntereses  IncomeType = "INTERESES"
	IncomePrima      IncomeType = "PRIMA"
	IncomeCesantias  IncomeType = "CESANTIAS"
	IncomeOtros      IncomeType = "OTROS"
)

// IncomeTypes lists every accepted income type.
var IncomeTypes = []IncomeType{
	IncomeSalario,
	IncomeHonorarios,
	IncomeArriendo,
	IncomeIntereses,
	IncomePrima,
	IncomeCesantias,
	IncomeOtros,
}

func (t IncomeType) Valid() bool {
	for _, v := range IncomeTypes {
		if t == v {
			return true
		}
	}
	return false
}

type IncomeEntry struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        IncomeType      `json:"type"`
	MemberID    int64           `json:"member_id"`
	IncomeDate  time.Time       `json:"income_date"`
	Description string          `json:"description"`
}

// IncomeList is the upstream response shape for a month of income.
type IncomeList struct {
	Entries []*IncomeEntry  `json:"income_entries"`
	Total   decimal.Decimal `json:"total_amount"`
}

type IncomeInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        IncomeType      `json:"type" validate:"required"`
	MemberID    int64           `json:"member_id" validate:"required,gt=0"`
	IncomeDate  time.Time       `json:"income_date" validate:"required"`
	Description string          `json:"description" validate:"max=200"`
}

func (in *IncomeInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !in.Type.Valid() {
		return ErrInvalidInput
	}
	return nil
}

// IncomeSource is the upstream view of the income resource.
type IncomeSource interface {
	ListByMonth(ctx context.Context, session string, month Month) (*IncomeList, error)
	Create(ctx context.Context, session string, in *IncomeInput) (*IncomeEntry, error)
	Update(ctx context.Context, session string, id int64, in *IncomeInput) (*IncomeEntry, error)
	Delete(ctx context.Context, session string, id int64) error
}
