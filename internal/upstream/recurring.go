package upstream

import (
	"context"
	"fmt"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// RecurringClient implements domain.RecurringSource against
// /api/recurring-movements.
type RecurringClient struct {
	client *Client
}

// NewRecurringClient creates a new RecurringClient.
func NewRecurringClient(client *Client) *RecurringClient {
	return &RecurringClient{client: client}
}

type recurringListResponse struct {
	Templates []*domain.RecurringTemplate `json:"templates"`
}

// List fetches every recurring template.
func (r *RecurringClient) List(ctx context.Context, session string) ([]*domain.RecurringTemplate, error) {
	var resp recurringListResponse
	if err := r.client.get(ctx, session, "/api/recurring-movements", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

// Create creates a recurring template.
func (r *RecurringClient) Create(ctx context.Context, session string, in *domain.RecurringTemplateInput) (*domain.RecurringTemplate, error) {
	var created domain.RecurringTemplate
	if err := r.client.post(ctx, session, "/api/recurring-movements", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a recurring template.
func (r *RecurringClient) Delete(ctx context.Context, session string, id int64) error {
	return r.client.delete(ctx, session, fmt.Sprintf("/api/recurring-movements/%d", id), nil)
}
