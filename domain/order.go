package domain

import (
	"bytes"
	"encoding/json"
)

// Order is a live order. Status is whatever the server reports; no
// transition logic exists on the client.
type Order struct {
	ID            string        `json:"orderId"`
	FIGI          string        `json:"figi"`
	Operation     OperationType `json:"operation"`
	Status        OrderStatus   `json:"status"`
	RequestedLots int64         `json:"requestedLots"`
	ExecutedLots  int64         `json:"executedLots"`
	Type          OrderType     `json:"type"`
	Price         float64       `json:"price"`
}

type orderWire struct {
	ID            *string        `json:"orderId" validate:"required"`
	FIGI          *string        `json:"figi" validate:"required"`
	Operation     *OperationType `json:"operation" validate:"required"`
	Status        *OrderStatus   `json:"status" validate:"required"`
	RequestedLots *int64         `json:"requestedLots" validate:"required"`
	ExecutedLots  *int64         `json:"executedLots" validate:"required"`
	Type          *OrderType     `json:"type" validate:"required"`
	Price         *float64       `json:"price" validate:"required"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var w orderWire
	if err := decodeWire(data, &w, "order"); err != nil {
		return err
	}
	*o = Order{
		ID:            *w.ID,
		FIGI:          *w.FIGI,
		Operation:     *w.Operation,
		Status:        *w.Status,
		RequestedLots: *w.RequestedLots,
		ExecutedLots:  *w.ExecutedLots,
		Type:          *w.Type,
		Price:         *w.Price,
	}
	return nil
}

// Orders is the payload of the orders listing. The live API sends a bare
// array; the object form {"orders": [...]} is accepted as well.
type Orders struct {
	Orders []Order `json:"orders" validate:"required"`
}

func (o *Orders) UnmarshalJSON(data []byte) error {
	if b := bytes.TrimSpace(data); len(b) > 0 && b[0] == '[' {
		var list []Order
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		o.Orders = list
		return nil
	}
	type plain Orders
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Orders(p)
	return nil
}

// PlacedOrder is the server's answer to a limit or market order.
type PlacedOrder struct {
	ID            string        `json:"orderId"`
	Operation     OperationType `json:"operation"`
	Status        OrderStatus   `json:"status"`
	RejectReason  string        `json:"rejectReason"`
	RequestedLots int64         `json:"requestedLots"`
	ExecutedLots  int64         `json:"executedLots"`
	Commission    MoneyAmount   `json:"commission"`
	Message       string        `json:"message"`
}

type placedOrderWire struct {
	ID            *string        `json:"orderId" validate:"required"`
	Operation     *OperationType `json:"operation" validate:"required"`
	Status        *OrderStatus   `json:"status" validate:"required"`
	RejectReason  *string        `json:"rejectReason" validate:"required"`
	RequestedLots *int64         `json:"requestedLots" validate:"required"`
	ExecutedLots  *int64         `json:"executedLots" validate:"required"`
	Commission    *MoneyAmount   `json:"commission" validate:"required"`
	Message       *string        `json:"message" validate:"required"`
}

func (p *PlacedOrder) UnmarshalJSON(data []byte) error {
	var w placedOrderWire
	if err := decodeWire(data, &w, "placed order"); err != nil {
		return err
	}
	*p = PlacedOrder{
		ID:            *w.ID,
		Operation:     *w.Operation,
		Status:        *w.Status,
		RejectReason:  *w.RejectReason,
		RequestedLots: *w.RequestedLots,
		ExecutedLots:  *w.ExecutedLots,
		Commission:    *w.Commission,
		Message:       *w.Message,
	}
	return nil
}
