package domain

import "time"

// Message shapes of the streaming market-data API. Only the shapes are
// modelled here; the streaming protocol itself lives elsewhere.

// StreamEvent is the header every streaming message carries.
type StreamEvent struct {
	Event string    `json:"event"`
	Time  time.Time `json:"time"`
}

type CandleEvent struct {
	StreamEvent
	Candle Candle `json:"payload"`
}

type OrderBookEvent struct {
	StreamEvent
	OrderBook OrderBook `json:"payload"`
}

type InstrumentInfoEvent struct {
	StreamEvent
	Info InstrumentInfo `json:"payload"`
}

// InstrumentInfo uses the snake_case field names of the streaming API.
type InstrumentInfo struct {
	FIGI              string        `json:"figi"`
	TradeStatus       TradingStatus `json:"trade_status"`
	MinPriceIncrement float64       `json:"min_price_increment"`
	Lot               float64       `json:"lot"`
	AccruedInterest   float64       `json:"accrued_interest,omitempty"`
	LimitUp           float64       `json:"limit_up,omitempty"`
	LimitDown         float64       `json:"limit_down,omitempty"`
}

type ErrorEvent struct {
	StreamEvent
	Error StreamError `json:"payload"`
}

type StreamError struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}
