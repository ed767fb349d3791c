// Package journal keeps a local record of the order actions taken through
// the CLI. The API client never writes to it.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/juev/tinvest/domain"
)

// ErrNotFound is returned when an entry id is unknown.
var ErrNotFound = errors.New("journal entry not found")

// Action is the kind of order action recorded.
type Action string

const (
	ActionLimitOrder  Action = "limit_order"
	ActionMarketOrder Action = "market_order"
	ActionCancel      Action = "cancel"
)

// OrderAction is one journal entry. Operation, Status, lot counts and Price
// are empty for cancellations.
type OrderAction struct {
	EntryID       string
	RecordedAt    time.Time
	Action        Action
	Account       string // empty for the default account
	FIGI          string
	OrderID       string
	Operation     domain.OperationType
	Status        domain.OrderStatus
	RequestedLots int64
	ExecutedLots  int64
	Price         float64
	Message       string
}

// Placed builds the entry for an accepted limit or market order.
func Placed(action Action, account, figi string, price float64, o domain.PlacedOrder) OrderAction {
	msg := o.Message
	if o.RejectReason != "" {
		msg = o.RejectReason
	}
	return OrderAction{
		Action:        action,
		Account:       account,
		FIGI:          figi,
		OrderID:       o.ID,
		Operation:     o.Operation,
		Status:        o.Status,
		RequestedLots: o.RequestedLots,
		ExecutedLots:  o.ExecutedLots,
		Price:         price,
		Message:       msg,
	}
}

// Cancelled builds the entry for a cancelled order.
func Cancelled(account, orderID string) OrderAction {
	return OrderAction{Action: ActionCancel, Account: account, OrderID: orderID}
}

type Journal interface {
	Record(ctx context.Context, a OrderAction) (OrderAction, error)
	Get(ctx context.Context, entryID string) (OrderAction, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]OrderAction, error)
	Close() error
}
