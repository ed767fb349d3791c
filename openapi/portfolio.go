package openapi

import (
	"context"

	"github.com/juev/tinvest/domain"
)

// Portfolio fetches positions and then currency balances of acct.
//
// The two halves are separate requests. If the account changes in between,
// the result may mix states; the API offers no way to read both atomically.
func (c *Client) Portfolio(ctx context.Context, acct BrokerAccount) (domain.Portfolio, error) {
	positions, err := c.PositionsPortfolio(ctx, acct)
	if err != nil {
		return domain.Portfolio{}, err
	}
	currencies, err := c.CurrenciesPortfolio(ctx, acct)
	if err != nil {
		return domain.Portfolio{}, err
	}
	return domain.Portfolio{Positions: positions, Currencies: currencies}, nil
}

func (c *Client) PositionsPortfolio(ctx context.Context, acct BrokerAccount) ([]domain.PositionBalance, error) {
	v, err := fetch[domain.PositionBalances](ctx, c, positionsRoute(acct), nil, "positions")
	if err != nil {
		return nil, err
	}
	return v.Positions, nil
}

func (c *Client) CurrenciesPortfolio(ctx context.Context, acct BrokerAccount) ([]domain.CurrencyBalance, error) {
	v, err := fetch[domain.CurrencyBalances](ctx, c, portfolioCurrenciesRoute(acct), nil, "currency balances")
	if err != nil {
		return nil, err
	}
	return v.Currencies, nil
}
