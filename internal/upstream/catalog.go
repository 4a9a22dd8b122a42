package upstream

import (
	"context"

	"github.com/hogarlabs/hogar-gateway/internal/domain"
)

// CatalogClient implements domain.CatalogSource over the reference-data
// endpoints.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a new CatalogClient.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// FormConfig fetches the movement form reference data.
func (r *CatalogClient) FormConfig(ctx context.Context, session string) (*domain.FormConfig, error) {
	var resp domain.FormConfig
	if err := r.client.get(ctx, session, "/movement-form-config", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type categoryGroupsResponse struct {
	CategoryGroups []*domain.CategoryGroup `json:"category_groups"`
}

// CategoryGroups fetches the category group tree.
func (r *CatalogClient) CategoryGroups(ctx context.Context, session string) ([]*domain.CategoryGroup, error) {
	var resp categoryGroupsResponse
	if err := r.client.get(ctx, session, "/category-groups", nil, &resp); err != nil {
		return nil, err
	}
	return resp.CategoryGroups, nil
}

type accountsResponse struct {
	Accounts []*domain.Account `json:"accounts"`
}

// Accounts fetches the payment accounts.
func (r *CatalogClient) Accounts(ctx context.Context, session string) ([]*domain.Account, error) {
	var resp accountsResponse
	if err := r.client.get(ctx, session, "/accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
