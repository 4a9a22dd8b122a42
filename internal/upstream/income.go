package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeClient implements domain.IncomeSource against /income.
type IncomeClient struct {
	client *Client
}

// NewIncomeClient creates a new IncomeClient.
func NewIncomeClient(client *Client) *IncomeClient {
	return &IncomeClient{client: client}
}

type incomeListResponse struct {
	IncomeEntries []*domain.IncomeEntry `json:"income_entries"`
	Totals        struct {
		TotalAmount decimal.Decimal `json:"total_amount"`
	} `json:"totals"`
}

// ListByMonth fetches the month-scoped income list.
func (r *IncomeClient) ListByMonth(ctx context.Context, session string, month domain.Month) (*domain.IncomeList, error) {
	query := url.Values{}
	query.Set("month", month.String())

	var resp incomeListResponse
	if err := r.client.get(ctx, session, "/income", query, &resp); err != nil {
		return nil, err
	}
	return &domain.IncomeList{
		Entries: resp.IncomeEntries,
		Total:   resp.Totals.TotalAmount,
	}, nil
}

// Create creates an income entry.
func (r *IncomeClient) Create(ctx context.Context, session string, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	var created domain.IncomeEntry
	if err := r.client.post(ctx, session, "/income", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update edits an income entry.
func (r *IncomeClient) Update(ctx context.Context, session string, id int64, in *domain.IncomeInput) (*domain.IncomeEntry, error) {
	var updated domain.IncomeEntry
	if err := r.client.put(ctx, session, fmt.Sprintf("/income/%d", id), nil, in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an income entry.
func (r *IncomeClient) Delete(ctx context.Context, session string, id int64) error {
	return r.client.delete(ctx, session, fmt.Sprintf("/income/%d", id), nil)
}
