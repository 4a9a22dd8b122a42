package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BillingCycle is the date range a credit-card statement covers.
type BillingCycle struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CardSummary is the upstream's per-card aggregate for one billing cycle.
// Charge and payment lists live behind CardSource.Movements and are loaded
// lazily on expansion.
type CardSummary struct {
	CardID       int64           `json:"card_id"`
	CardName     string          `json:"card_name"`
	OwnerID      int64           `json:"owner_id"`
	OwnerName    string          `json:"owner_name"`
	NetDebt      decimal.Decimal `json:"net_debt"`
	BillingCycle BillingCycle    `json:"billing_cycle"`
}

// CardMovements is the lazy detail for one card and cycle.
type CardMovements struct {
	Charges  []*Movement `json:"charges"`
	Payments []*Movement `json:"payments"`
}

type CardPaymentInput struct {
	CardID      int64           `json:"card_id" validate:"required,gt=0"`
	AccountID   int64           `json:"account_id" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate time.Time       `json:"payment_date" validate:"required"`
}

func (in *CardPaymentInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// CardSource is the upstream view of the credit-card resources.
type CardSource interface {
	Summary(ctx context.Context, session string, cycleDate time.Time, cardIDs, ownerIDs []int64) ([]*CardSummary, error)
	Movements(ctx context.Context, session string, cardID int64, cycleDate time.Time) (*CardMovements, error)
	CreatePayment(ctx context.Context, session string, in *CardPaymentInput) error
	DeletePayment(ctx context.Context, session string, id int64) error
}
