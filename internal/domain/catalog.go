package domain

import "context"

// Member belongs to the budgeting household. Contacts are external parties
// that only appear as SPLIT participants or loan counterparties.
type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Contact struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"group_name"`
}

type CategoryGroup struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

type PaymentMethod struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Account struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// FormConfig is the reference data the movement form needs: who can pay, how,
// and against which categories. Served whole by /movement-form-config.
type FormConfig struct {
	Members        []Member        `json:"members"`
	Contacts       []Contact       `json:"contacts"`
	CategoryGroups []CategoryGroup `json:"category_groups"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

// MemberIDs returns the household member ids, the set that decides whether a
// SPLIT participant counts toward the household share.
func (c *FormConfig) MemberIDs() map[int64]struct{} {
	ids := make(map[int64]struct{}, len(c.Members))
	for _, m := range c.Members {
		ids[m.ID] = struct{}{}
	}
	return ids
}

// CatalogSource serves the upstream reference data endpoints.
type CatalogSource interface {
	FormConfig(ctx context.Context, session string) (*FormConfig, error)
	CategoryGroups(ctx context.Context, session string) ([]*CategoryGroup, error)
	Accounts(ctx context.Context, session string) ([]*Account, error)
}
