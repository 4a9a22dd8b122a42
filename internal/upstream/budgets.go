package upstream

import (
	"context"
	"fmt"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// BudgetClient implements domain.BudgetSource against /budgets.
type BudgetClient struct {
	client *Client
}

// NewBudgetClient creates a new BudgetClient.
func NewBudgetClient(client *Client) *BudgetClient {
	return &BudgetClient{client: client}
}

type budgetListResponse struct {
	Budgets []*domain.Budget `json:"budgets"`
}

// ListByMonth fetches the budgets defined for a month.
func (r *BudgetClient) ListByMonth(ctx context.Context, session string, month domain.Month) ([]*domain.Budget, error) {
	var resp budgetListResponse
	if err := r.client.get(ctx, session, "/budgets/"+month.String(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Budgets, nil
}

// Upsert creates or replaces the budget for a category and month.
func (r *BudgetClient) Upsert(ctx context.Context, session string, in *domain.BudgetInput) (*domain.Budget, error) {
	var saved domain.Budget
	if err := r.client.put(ctx, session, "/budgets", nil, in, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes one budget.
func (r *BudgetClient) Delete(ctx context.Context, session string, id int64) error {
	return r.client.delete(ctx, session, fmt.Sprintf("/budgets/%d", id), nil)
}

type copyBudgetsRequest struct {
	Month string `json:"month"`
}

type copyBudgetsResponse struct {
	Copied int `json:"copied"`
}

// CopyFromPrevious bulk-copies the previous month's budgets into the given
// month. The copy itself is an upstream operation; only the count comes back.
func (r *BudgetClient) CopyFromPrevious(ctx context.Context, session string, month domain.Month) (int, error) {
	var resp copyBudgetsResponse
	if err := r.client.post(ctx, session, "/budgets/copy", nil, copyBudgetsRequest{Month: month.String()}, &resp); err != nil {
		return 0, err
	}
	return resp.Copied, nil
}
