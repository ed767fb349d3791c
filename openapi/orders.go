package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/juev/tinvest/domain"
)

type limitOrderBody struct {
	Lots      int64                `json:"lots"`
	Operation domain.OperationType `json:"operation"`
	Price     float64              `json:"price"`
}

type marketOrderBody struct {
	Lots      int64                `json:"lots"`
	Operation domain.OperationType `json:"operation"`
}

// Orders lists the live orders of acct.
//
// Unlike every other read, a payload that does not decode is not an error
// here: the listing comes back empty and a warning is logged. Transport and
// API errors are still returned.
func (c *Client) Orders(ctx context.Context, acct BrokerAccount) ([]domain.Order, error) {
	raw, err := c.call(ctx, ordersRoute(acct), nil)
	if err != nil {
		return nil, err
	}
	v, err := decode[domain.Orders](c, raw, "orders", tolerantDecode)
	if err != nil {
		return nil, err
	}
	if v.Orders == nil {
		return []domain.Order{}, nil
	}
	return v.Orders, nil
}

// LimitOrder places a limit order for lots of figi at price.
func (c *Client) LimitOrder(ctx context.Context, acct BrokerAccount, figi string, lots int64, op domain.OperationType, price float64) (domain.PlacedOrder, error) {
	if err := checkOrder(figi, lots, op); err != nil {
		return domain.PlacedOrder{}, err
	}
	if price <= 0 {
		return domain.PlacedOrder{}, errors.New("price must be positive")
	}
	body := limitOrderBody{Lots: lots, Operation: op, Price: price}
	return fetch[domain.PlacedOrder](ctx, c, limitOrderRoute(acct, figi), body, "placed order")
}

// MarketOrder places a market order for lots of figi.
func (c *Client) MarketOrder(ctx context.Context, acct BrokerAccount, figi string, lots int64, op domain.OperationType) (domain.PlacedOrder, error) {
	if err := checkOrder(figi, lots, op); err != nil {
		return domain.PlacedOrder{}, err
	}
	body := marketOrderBody{Lots: lots, Operation: op}
	return fetch[domain.PlacedOrder](ctx, c, marketOrderRoute(acct, figi), body, "placed order")
}

// CancelOrder cancels orderID. Success is any 2xx status; the body is not
// read as an envelope, so an empty or non-JSON 2xx body is fine.
func (c *Client) CancelOrder(ctx context.Context, acct BrokerAccount, orderID string) error {
	if orderID == "" {
		return errors.New("order id is required")
	}
	_, err := c.do(ctx, cancelOrderRoute(acct, orderID), nil)
	return err
}

func checkOrder(figi string, lots int64, op domain.OperationType) error {
	switch {
	case figi == "":
		return errors.New("figi is required")
	case lots <= 0:
		return errors.New("lots must be positive")
	case !op.IsTradeSide():
		return fmt.Errorf("operation must be Buy or Sell, got %q", op)
	}
	return nil
}
