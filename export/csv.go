// Package export writes API records as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/juev/tinvest/domain"
)

func f(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// WriteCandlesCSV writes candles in the given order and returns the number
// of data rows written.
func WriteCandlesCSV(w io.Writer, candles []domain.Candle) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "figi", "interval", "o", "h", "l", "c", "v"}); err != nil {
		return 0, err
	}

	written := 0
	for _, cd := range candles {
		row := []string{
			cd.Time.UTC().Format(time.RFC3339),
			cd.FIGI,
			string(cd.Interval),
			f(cd.Open), f(cd.High), f(cd.Low), f(cd.Close),
			f(cd.Volume),
		}
		if err := cw.Write(row); err != nil {
			return written, err
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, err
	}
	return written, nil
}

// WriteOperationsCSV writes one row per operation. The commission column
// holds the value only; its currency matches the operation in practice.
func WriteOperationsCSV(w io.Writer, ops []domain.Operation) (int, error) {
	cw := csv.NewWriter(w)
	header := []string{
		"date", "id", "operation_type", "status", "figi", "currency",
		"payment", "price", "quantity", "quantity_executed", "commission",
	}
	if err := cw.Write(header); err != nil {
		return 0, err
	}

	written := 0
	for _, op := range ops {
		row := []string{
			op.Date.UTC().Format(time.RFC3339),
			op.ID,
			string(op.OperationType),
			string(op.Status),
			op.FIGI,
			string(op.Currency),
			f(op.Payment),
			f(op.Price),
			strconv.FormatInt(op.Quantity, 10),
			strconv.FormatInt(op.QuantityExecuted, 10),
			f(op.Commission.Value),
		}
		if err := cw.Write(row); err != nil {
			return written, err
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, err
	}
	return written, nil
}
