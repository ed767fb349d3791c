package openapi

import (
	"context"

	"github.com/juev/tinvest/domain"
)

// Accounts lists the broker accounts of the token owner.
func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	v, err := fetch[domain.Accounts](ctx, c, accountsRoute(), nil, "accounts")
	if err != nil {
		return nil, err
	}
	return v.Accounts, nil
}
