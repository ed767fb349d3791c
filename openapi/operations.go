package openapi

import (
	"context"
	"errors"
	"time"

	"github.com/juev/tinvest/domain"
)

// Operations returns ledger events of acct between from and to, optionally
// restricted to one figi.
func (c *Client) Operations(ctx context.Context, acct BrokerAccount, from, to time.Time, figi string) ([]domain.Operation, error) {
	if from.After(to) {
		return nil, errors.New("from must not be after to")
	}
	v, err := fetch[domain.Operations](ctx, c, operationsRoute(acct, from, to, figi), nil, "operations")
	if err != nil {
		return nil, err
	}
	return v.Operations, nil
}
