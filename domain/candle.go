package domain

import "time"

// Candle is one OHLCV bar.
type Candle struct {
	FIGI     string         `json:"figi"`
	Interval CandleInterval `json:"interval"`
	Open     float64        `json:"o"`
	Close    float64        `json:"c"`
	High     float64        `json:"h"`
	Low      float64        `json:"l"`
	Volume   float64        `json:"v"`
	Time     time.Time      `json:"time"`
}

type candleWire struct {
	FIGI     *string         `json:"figi" validate:"required"`
	Interval *CandleInterval `json:"interval" validate:"required"`
	Open     *float64        `json:"o" validate:"required"`
	Close    *float64        `json:"c" validate:"required"`
	High     *float64        `json:"h" validate:"required"`
	Low      *float64        `json:"l" validate:"required"`
	Volume   *float64        `json:"v" validate:"required"`
	Time     *time.Time      `json:"time" validate:"required"`
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var w candleWire
	if err := decodeWire(data, &w, "candle"); err != nil {
		return err
	}
	*c = Candle{
		FIGI:     *w.FIGI,
		Interval: *w.Interval,
		Open:     *w.Open,
		Close:    *w.Close,
		High:     *w.High,
		Low:      *w.Low,
		Volume:   *w.Volume,
		Time:     *w.Time,
	}
	return nil
}

// Candles is the payload of the market/candles endpoint.
type Candles struct {
	FIGI     string         `json:"figi"`
	Interval CandleInterval `json:"interval"`
	Candles  []Candle       `json:"candles"`
}

type candlesWire struct {
	FIGI     *string         `json:"figi" validate:"required"`
	Interval *CandleInterval `json:"interval" validate:"required"`
	Candles  []Candle        `json:"candles" validate:"required"`
}

func (c *Candles) UnmarshalJSON(data []byte) error {
	var w candlesWire
	if err := decodeWire(data, &w, "candles"); err != nil {
		return err
	}
	*c = Candles{FIGI: *w.FIGI, Interval: *w.Interval, Candles: w.Candles}
	return nil
}
