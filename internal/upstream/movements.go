package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// MovementClient implements domain.MovementSource against /movements.
type MovementClient struct {
	client *Client
}

// NewMovementClient creates a new MovementClient.
func NewMovementClient(client *Client) *MovementClient {
	return &MovementClient{client: client}
}

type movementListResponse struct {
	Movements      []*domain.Movement      `json:"movements"`
	CategoryGroups []*domain.CategoryGroup `json:"category_groups"`
}

// ListByMonth fetches the month-scoped movement list for one movement type.
func (r *MovementClient) ListByMonth(ctx context.Context, session string, month domain.Month, typ domain.MovementType) ([]*domain.Movement, []*domain.CategoryGroup, error) {
	query := url.Values{}
	query.Set("month", month.String())
	query.Set("type", string(typ))

	var resp movementListResponse
	if err := r.client.get(ctx, session, "/movements", query, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Movements, resp.CategoryGroups, nil
}

// Create creates a movement.
func (r *MovementClient) Create(ctx context.Context, session string, in *domain.MovementInput) (*domain.Movement, error) {
	var created domain.Movement
	if err := r.client.post(ctx, session, "/movements", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update edits a movement. For template-generated movements the scope choice
// is forwarded as a query parameter; the upstream interprets the cascade.
func (r *MovementClient) Update(ctx context.Context, session string, id int64, in *domain.MovementInput, scope *domain.EditScope) (*domain.Movement, error) {
	var updated domain.Movement
	if err := r.client.put(ctx, session, fmt.Sprintf("/movements/%d", id), scopeQuery(scope), in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a movement, forwarding the scope choice when present.
func (r *MovementClient) Delete(ctx context.Context, session string, id int64, scope *domain.EditScope) error {
	return r.client.delete(ctx, session, fmt.Sprintf("/movements/%d", id), scopeQuery(scope))
}

func scopeQuery(scope *domain.EditScope) url.Values {
	if scope == nil {
		return nil
	}
	query := url.Values{}
	query.Set("scope", string(*scope))
	return query
}
