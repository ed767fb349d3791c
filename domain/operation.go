package domain

import "time"

// Trade is a single fill inside an operation.
type Trade struct {
	ID       string    `json:"tradeId"`
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	Quantity int64     `json:"quantity"`
}

type tradeWire struct {
	ID       *string    `json:"tradeId" validate:"required"`
	Date     *time.Time `json:"date" validate:"required"`
	Price    *float64   `json:"price" validate:"required"`
	Quantity *int64     `json:"quantity" validate:"required"`
}

func (t *Trade) UnmarshalJSON(data []byte) error {
	var w tradeWire
	if err := decodeWire(data, &w, "trade"); err != nil {
		return err
	}
	*t = Trade{ID: *w.ID, Date: *w.Date, Price: *w.Price, Quantity: *w.Quantity}
	return nil
}

// Operation is a historical ledger event. Trades is empty for operations
// that are not fills, such as commissions or dividends.
type Operation struct {
	ID               string          `json:"id"`
	Status           OperationStatus `json:"status"`
	Trades           []Trade         `json:"trades"`
	Commission       MoneyAmount     `json:"commission"`
	Currency         Currency        `json:"currency"`
	Payment          float64         `json:"payment"`
	Price            float64         `json:"price"`
	Quantity         int64           `json:"quantity"`
	QuantityExecuted int64           `json:"quantityExecuted"`
	FIGI             string          `json:"figi"`
	InstrumentType   InstrumentType  `json:"instrumentType"`
	IsMarginCall     bool            `json:"isMarginCall"`
	Date             time.Time       `json:"date"`
	OperationType    OperationType   `json:"operationType"`
}

type operationWire struct {
	ID               *string          `json:"id" validate:"required"`
	Status           *OperationStatus `json:"status" validate:"required"`
	Trades           []Trade          `json:"trades" validate:"required"`
	Commission       *MoneyAmount     `json:"commission" validate:"required"`
	Currency         *Currency        `json:"currency" validate:"required"`
	Payment          *float64         `json:"payment" validate:"required"`
	Price            *float64         `json:"price" validate:"required"`
	Quantity         *int64           `json:"quantity" validate:"required"`
	QuantityExecuted *int64           `json:"quantityExecuted" validate:"required"`
	FIGI             *string          `json:"figi" validate:"required"`
	InstrumentType   *InstrumentType  `json:"instrumentType" validate:"required"`
	IsMarginCall     *bool            `json:"isMarginCall" validate:"required"`
	Date             *time.Time       `json:"date" validate:"required"`
	OperationType    *OperationType   `json:"operationType" validate:"required"`
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	var w operationWire
	if err := decodeWire(data, &w, "operation"); err != nil {
		return err
	}
	*o = Operation{
		ID:               *w.ID,
		Status:           *w.Status,
		Trades:           w.Trades,
		Commission:       *w.Commission,
		Currency:         *w.Currency,
		Payment:          *w.Payment,
		Price:            *w.Price,
		Quantity:         *w.Quantity,
		QuantityExecuted: *w.QuantityExecuted,
		FIGI:             *w.FIGI,
		InstrumentType:   *w.InstrumentType,
		IsMarginCall:     *w.IsMarginCall,
		Date:             *w.Date,
		OperationType:    *w.OperationType,
	}
	return nil
}

// Operations is the payload of the operations endpoint.
type Operations struct {
	Operations []Operation `json:"operations" validate:"required"`
}
