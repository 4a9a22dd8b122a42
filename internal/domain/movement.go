package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementTypeHousehold   MovementType = "HOUSEHOLD"
	MovementTypeSplit       MovementType = "SPLIT"
	MovementTypeDebtPayment MovementType = "DEBT_PAYMENT"
)

// EditScope selects how far an edit or delete of a template-generated
// movement cascades. The upstream owns the cascade semantics; the gateway
// only validates and forwards the choice.
type EditScope string

const (
	ScopeThis   EditScope = "THIS"
	ScopeFuture EditScope = "FUTURE"
	ScopeAll    EditScope = "ALL"
)

func (s EditScope) Valid() bool {
	switch s {
	case ScopeThis, ScopeFuture, ScopeAll:
		return true
	}
	return false
}

// Participant is one party of a SPLIT movement. Exactly one of UserID and
// ContactID is set; household members arrive as users, external parties as
// contacts. Percentage is a fraction of the full ticket (0.3 = 30%).
type Participant struct {
	UserID     *int64          `json:"participant_user_id,omitempty"`
	ContactID  *int64          `json:"participant_contact_id,omitempty"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Movement is an expense or transfer record as served by the upstream
// backend. The gateway never persists movements; it reads month-scoped lists
// and derives adjusted views.
type Movement struct {
	ID                int64           `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	CategoryID        int64           `json:"category_id"`
	CategoryName      string          `json:"category_name"`
	CategoryGroupName string          `json:"category_group_name"`
	PaymentMethodID   int64           `json:"payment_method_id"`
	PaymentMethodName string          `json:"payment_method_name"`
	MovementDate      time.Time       `json:"movement_date"`
	Type              MovementType    `json:"type"`
	PayerID           int64           `json:"payer_id"`
	Participants      []Participant   `json:"participants,omitempty"`
	TemplateID        *int64          `json:"generated_from_template_id,omitempty"`
}

// FromTemplate reports whether the movement was generated from a recurring
// template and therefore carries the THIS/FUTURE/ALL scope choice on edit.
func (m *Movement) FromTemplate() bool {
	return m.TemplateID != nil
}

// MovementInput is the payload for creating or editing a movement.
type MovementInput struct {
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Description     string          `json:"description" validate:"max=200"`
	CategoryID      int64           `json:"category_id" validate:"required,gt=0"`
	PaymentMethodID int64           `json:"payment_method_id" validate:"required,gt=0"`
	MovementDate    time.Time       `json:"movement_date" validate:"required"`
	Type            MovementType    `json:"type" validate:"required,oneof=HOUSEHOLD SPLIT DEBT_PAYMENT"`
	PayerID         int64           `json:"payer_id"`
	Participants    []Participant   `json:"participants,omitempty"`
}

// Validate enforces the rules the original surfaced before any network call.
func (in *MovementInput) Validate() error {
	if in.Amount.IsZero() {
		return ErrInvalidAmount
	}
	if in.Type == MovementTypeSplit {
		total := decimal.Zero
		for _, p := range in.Participants {
			total = total.Add(p.Percentage)
		}
		if !total.Equal(decimal.NewFromInt(1)) {
			return ErrSplitPercentages
		}
	}
	return nil
}

// MovementSource is the upstream view of the movements resource.
type MovementSource interface {
	ListByMonth(ctx context.Context, session string, month Month, typ MovementType) ([]*Movement, []*CategoryGroup, error)
	Create(ctx context.Context, session string, in *MovementInput) (*Movement, error)
	Update(ctx context.Context, session string, id int64, in *MovementInput, scope *EditScope) (*Movement, error)
	Delete(ctx context.Context, session string, id int64, scope *EditScope) error
}
