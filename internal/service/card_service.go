package service

import (
	"context"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CardService builds the tarjetas tab view and handles card payment
// mutations.
type CardService struct {
	cardSource    domain.CardSource
	catalogSource domain.CatalogSource
}

// NewCardService creates a new CardService.
func NewCardService(cardSource domain.CardSource, catalogSource domain.CatalogSource) *CardService {
	return &CardService{cardSource: cardSource, catalogSource: catalogSource}
}

// CardView is the tarjetas tab payload. Charge/payment detail is not
// included; it is loaded lazily per card via LoadMovements.
type CardView struct {
	CycleDate string                `json:"cycle_date"`
	Cards     []*domain.CardSummary `json:"cards"`
	Accounts  []*domain.Account     `json:"accounts"`
}

// LoadCycle fetches the card summaries for a cycle date alongside the
// payment accounts. The card and owner selections translate to upstream
// query filters; a None selection short-circuits to an empty card list
// without calling the summary endpoint.
func (s *CardService) LoadCycle(ctx context.Context, session string, cycleDate time.Time, filters domain.FilterSet) (*CardView, error) {
	view := &CardView{CycleDate: cycleDate.Format("2006-01-02")}

	if filters.Cards.IsNone() || filters.CardOwners.IsNone() {
		accounts, err := s.catalogSource.Accounts(ctx, session)
		if err != nil {
			return nil, err
		}
		view.Accounts = accounts
		return view, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Cards, err = s.cardSource.Summary(gctx, session, cycleDate, filters.Cards.IDs(), filters.CardOwners.IDs())
		return err
	})
	g.Go(func() error {
		var err error
		view.Accounts, err = s.catalogSource.Accounts(gctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// LoadMovements fetches the lazy charge/payment detail for one card.
func (s *CardService) LoadMovements(ctx context.Context, session string, cardID int64, cycleDate time.Time) (*domain.CardMovements, error) {
	return s.cardSource.Movements(ctx, session, cardID, cycleDate)
}

// CreatePayment validates and records a card payment.
func (s *CardService) CreatePayment(ctx context.Context, session string, in *domain.CardPaymentInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.cardSource.CreatePayment(ctx, session, in)
}

// DeletePayment removes a card payment.
func (s *CardService) DeletePayment(ctx context.Context, session string, id int64) error {
	return s.cardSource.DeletePayment(ctx, session, id)
}
