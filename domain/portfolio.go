package domain

import "github.com/shopspring/decimal"

// MoneyAmount is a value tagged with its currency.
type MoneyAmount struct {
	Currency Currency `json:"currency"`
	Value    float64  `json:"value"`
}

type moneyAmountWire struct {
	Currency *Currency `json:"currency" validate:"required"`
	Value    *float64  `json:"value" validate:"required"`
}

func (m *MoneyAmount) UnmarshalJSON(data []byte) error {
	var w moneyAmountWire
	if err := decodeWire(data, &w, "money amount"); err != nil {
		return err
	}
	*m = MoneyAmount{Currency: *w.Currency, Value: *w.Value}
	return nil
}

// Decimal returns the value as an exact decimal for summation.
func (m MoneyAmount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(m.Value)
}

// PositionBalance is one held instrument. Balance is negative for shorts.
type PositionBalance struct {
	FIGI                      string         `json:"figi"`
	Ticker                    string         `json:"ticker"`
	ISIN                      string         `json:"isin"`
	InstrumentType            InstrumentType `json:"instrumentType"`
	Balance                   float64        `json:"balance"`
	Blocked                   float64        `json:"blocked"`
	Lots                      int64          `json:"lots"`
	ExpectedYield             MoneyAmount    `json:"expectedYield"`
	AveragePositionPrice      MoneyAmount    `json:"averagePositionPrice"`
	AveragePositionPriceNoNkd MoneyAmount    `json:"averagePositionPriceNoNkd"`
	Name                      string         `json:"name"`
}

type positionBalanceWire struct {
	FIGI                      *string         `json:"figi" validate:"required"`
	Ticker                    *string         `json:"ticker" validate:"required"`
	ISIN                      *string         `json:"isin" validate:"required"`
	InstrumentType            *InstrumentType `json:"instrumentType" validate:"required"`
	Balance                   *float64        `json:"balance" validate:"required"`
	Blocked                   *float64        `json:"blocked" validate:"required"`
	Lots                      *int64          `json:"lots" validate:"required"`
	ExpectedYield             *MoneyAmount    `json:"expectedYield" validate:"required"`
	AveragePositionPrice      *MoneyAmount    `json:"averagePositionPrice" validate:"required"`
	AveragePositionPriceNoNkd *MoneyAmount    `json:"averagePositionPriceNoNkd" validate:"required"`
	Name                      *string         `json:"name" validate:"required"`
}

func (p *PositionBalance) UnmarshalJSON(data []byte) error {
	var w positionBalanceWire
	if err := decodeWire(data, &w, "position balance"); err != nil {
		return err
	}
	*p = PositionBalance{
		FIGI:                      *w.FIGI,
		Ticker:                    *w.Ticker,
		ISIN:                      *w.ISIN,
		InstrumentType:            *w.InstrumentType,
		Balance:                   *w.Balance,
		Blocked:                   *w.Blocked,
		Lots:                      *w.Lots,
		ExpectedYield:             *w.ExpectedYield,
		AveragePositionPrice:      *w.AveragePositionPrice,
		AveragePositionPriceNoNkd: *w.AveragePositionPriceNoNkd,
		Name:                      *w.Name,
	}
	return nil
}

// CurrencyBalance is the cash held in one currency.
type CurrencyBalance struct {
	Currency Currency `json:"currency"`
	Balance  float64  `json:"balance"`
	Blocked  float64  `json:"blocked"` // optional, 0 when absent
}

type currencyBalanceWire struct {
	Currency *Currency `json:"currency" validate:"required"`
	Balance  *float64  `json:"balance" validate:"required"`
	Blocked  float64   `json:"blocked"`
}

func (c *CurrencyBalance) UnmarshalJSON(data []byte) error {
	var w currencyBalanceWire
	if err := decodeWire(data, &w, "currency balance"); err != nil {
		return err
	}
	*c = CurrencyBalance{Currency: *w.Currency, Balance: *w.Balance, Blocked: w.Blocked}
	return nil
}

// PositionBalances is the payload of the portfolio endpoint.
type PositionBalances struct {
	Positions []PositionBalance `json:"positions" validate:"required"`
}

// CurrencyBalances is the payload of the portfolio/currencies endpoint.
type CurrencyBalances struct {
	Currencies []CurrencyBalance `json:"currencies" validate:"required"`
}

// Portfolio combines positions and cash balances. The two halves come from
// separate requests and are not guaranteed to describe the same instant.
type Portfolio struct {
	Positions  []PositionBalance `json:"positions"`
	Currencies []CurrencyBalance `json:"currencies"`
}

// ExpectedYield sums the expected yield of all positions per currency.
func (p Portfolio) ExpectedYield() map[Currency]decimal.Decimal {
	out := make(map[Currency]decimal.Decimal)
	for _, pos := range p.Positions {
		y := pos.ExpectedYield
		out[y.Currency] = out[y.Currency].Add(y.Decimal())
	}
	return out
}
