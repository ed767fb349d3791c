// Package domain holds the records exchanged with the Tinkoff Invest
// OpenAPI and the closed enumerations they use.
//
// Records are decoded with an explicit field-presence policy: fields with a
// documented default may be missing from the payload, every other field is
// required and its absence fails decoding with a *MissingFieldsError.
package domain

// Instrument is a tradable security. FIGI is its stable identity.
type Instrument struct {
	FIGI              string         `json:"figi"`
	Ticker            string         `json:"ticker"`
	ISIN              string         `json:"isin"`              // optional, "" when absent
	Name              string         `json:"name"`
	MinPriceIncrement float64        `json:"minPriceIncrement"` // optional, 0 when absent
	Lot               int64          `json:"lot"`
	Currency          Currency       `json:"currency"`
	Type              InstrumentType `json:"type"`
}

type instrumentWire struct {
	FIGI              *string         `json:"figi" validate:"required"`
	Ticker            *string         `json:"ticker" validate:"required"`
	ISIN              string          `json:"isin"`
	Name              *string         `json:"name" validate:"required"`
	MinPriceIncrement float64         `json:"minPriceIncrement"`
	Lot               *int64          `json:"lot" validate:"required"`
	Currency          *Currency       `json:"currency" validate:"required"`
	Type              *InstrumentType `json:"type" validate:"required"`
}

func (i *Instrument) UnmarshalJSON(data []byte) error {
	var w instrumentWire
	if err := decodeWire(data, &w, "instrument"); err != nil {
		return err
	}
	*i = Instrument{
		FIGI:              *w.FIGI,
		Ticker:            *w.Ticker,
		ISIN:              w.ISIN,
		Name:              *w.Name,
		MinPriceIncrement: w.MinPriceIncrement,
		Lot:               *w.Lot,
		Currency:          *w.Currency,
		Type:              *w.Type,
	}
	return nil
}

// Instruments is a search result set in server order.
type Instruments struct {
	Instruments []Instrument `json:"instruments" validate:"required"`
}
