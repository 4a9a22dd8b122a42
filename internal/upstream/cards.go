package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// CardClient implements domain.CardSource against the credit-card endpoints.
type CardClient struct {
	client *Client
}

// NewCardClient creates a new CardClient.
func NewCardClient(client *Client) *CardClient {
	return &CardClient{client: client}
}

type cardSummaryResponse struct {
	Cards []*domain.CardSummary `json:"cards"`
}

// Summary fetches the per-card cycle summaries. Card and owner filters are
// passed through to the upstream as CSV id lists when present.
func (r *CardClient) Summary(ctx context.Context, session string, cycleDate time.Time, cardIDs, ownerIDs []int64) ([]*domain.CardSummary, error) {
	query := url.Values{}
	query.Set("cycle_date", cycleDate.Format("2006-01-02"))
	if len(cardIDs) > 0 {
		query.Set("card_ids", joinIDs(cardIDs))
	}
	if len(ownerIDs) > 0 {
		query.Set("owner_ids", joinIDs(ownerIDs))
	}

	var resp cardSummaryResponse
	if err := r.client.get(ctx, session, "/credit-cards/summary", query, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

// Movements fetches the lazy charge/payment detail for one card and cycle.
func (r *CardClient) Movements(ctx context.Context, session string, cardID int64, cycleDate time.Time) (*domain.CardMovements, error) {
	query := url.Values{}
	query.Set("cycle_date", cycleDate.Format("2006-01-02"))

	var resp domain.CardMovements
	if err := r.client.get(ctx, session, fmt.Sprintf("/credit-cards/%d/movements", cardID), query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePayment records a card payment.
func (r *CardClient) CreatePayment(ctx context.Context, session string, in *domain.CardPaymentInput) error {
	return r.client.post(ctx, session, "/credit-card-payments", nil, in, nil)
}

// DeletePayment removes a card payment.
func (r *CardClient) DeletePayment(ctx context.Context, session string, id int64) error {
	return r.client.delete(ctx, session, fmt.Sprintf("/credit-card-payments/%d", id), nil)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
