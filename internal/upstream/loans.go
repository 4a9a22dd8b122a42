package upstream

import (
	"context"
	"net/url"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// LoanClient implements domain.LoanSource against the consolidated debts
// endpoint.
type LoanClient struct {
	client *Client
}

// NewLoanClient creates a new LoanClient.
func NewLoanClient(client *Client) *LoanClient {
	return &LoanClient{client: client}
}

// Consolidate fetches the server-computed pairwise balances for a month.
func (r *LoanClient) Consolidate(ctx context.Context, session string, month domain.Month) (*domain.ConsolidatedDebts, error) {
	query := url.Values{}
	query.Set("month", month.String())

	var resp domain.ConsolidatedDebts
	if err := r.client.get(ctx, session, "/movements/debts/consolidate", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
