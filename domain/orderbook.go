package domain

// PriceQuantity is one level of an order book ladder.
type PriceQuantity struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type priceQuantityWire struct {
	Price    *float64 `json:"price" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"required"`
}

func (p *PriceQuantity) UnmarshalJSON(data []byte) error {
	var w priceQuantityWire
	if err := decodeWire(data, &w, "price quantity"); err != nil {
		return err
	}
	*p = PriceQuantity{Price: *w.Price, Quantity: *w.Quantity}
	return nil
}

// OrderBook is a depth snapshot. FIGI, Depth, Bids and Asks are always
// present; the remaining fields are only filled by the REST endpoint and
// stay zero when the server leaves them out.
type OrderBook struct {
	FIGI              string          `json:"figi"`
	Depth             int             `json:"depth"`
	Bids              []PriceQuantity `json:"bids"`
	Asks              []PriceQuantity `json:"asks"`
	TradeStatus       TradingStatus   `json:"tradeStatus,omitempty"`
	MinPriceIncrement float64         `json:"minPriceIncrement,omitempty"`
	LastPrice         float64         `json:"lastPrice,omitempty"`
	ClosePrice        float64         `json:"closePrice,omitempty"`
	LimitUp           float64         `json:"limitUp,omitempty"`
	LimitDown         float64         `json:"limitDown,omitempty"`
	FaceValue         float64         `json:"faceValue,omitempty"`
}

type orderBookWire struct {
	FIGI              *string         `json:"figi" validate:"required"`
	Depth             *int            `json:"depth" validate:"required"`
	Bids              []PriceQuantity `json:"bids" validate:"required"`
	Asks              []PriceQuantity `json:"asks" validate:"required"`
	TradeStatus       TradingStatus   `json:"tradeStatus"`
	MinPriceIncrement float64         `json:"minPriceIncrement"`
	LastPrice         float64         `json:"lastPrice"`
	ClosePrice        float64         `json:"closePrice"`
	LimitUp           float64         `json:"limitUp"`
	LimitDown         float64         `json:"limitDown"`
	FaceValue         float64         `json:"faceValue"`
}

func (b *OrderBook) UnmarshalJSON(data []byte) error {
	var w orderBookWire
	if err := decodeWire(data, &w, "order book"); err != nil {
		return err
	}
	*b = OrderBook{
		FIGI:              *w.FIGI,
		Depth:             *w.Depth,
		Bids:              w.Bids,
		Asks:              w.Asks,
		TradeStatus:       w.TradeStatus,
		MinPriceIncrement: w.MinPriceIncrement,
		LastPrice:         w.LastPrice,
		ClosePrice:        w.ClosePrice,
		LimitUp:           w.LimitUp,
		LimitDown:         w.LimitDown,
		FaceValue:         w.FaceValue,
	}
	return nil
}

// Spread returns best ask minus best bid, or 0 when either side is empty.
func (b OrderBook) Spread() float64 {
	if len(b.Bids) == 0 || len(b.Asks) == 0 {
		return 0
	}
	return b.Asks[0].Price - b.Bids[0].Price
}
