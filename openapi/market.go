package openapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juev/tinvest/domain"
)

// InstrumentByFIGI looks up a single instrument.
func (c *Client) InstrumentByFIGI(ctx context.Context, figi string) (domain.Instrument, error) {
	if figi == "" {
		return domain.Instrument{}, errors.New("figi is required")
	}
	return fetch[domain.Instrument](ctx, c, instrumentByFIGIRoute(figi), nil, "instrument")
}

// InstrumentByTicker returns every instrument listed under ticker.
func (c *Client) InstrumentByTicker(ctx context.Context, ticker string) ([]domain.Instrument, error) {
	if ticker == "" {
		return nil, errors.New("ticker is required")
	}
	return c.instruments(ctx, instrumentByTickerRoute(ticker))
}

func (c *Client) Currencies(ctx context.Context) ([]domain.Instrument, error) {
	return c.instruments(ctx, marketListRoute("currencies"))
}

func (c *Client) ETFs(ctx context.Context) ([]domain.Instrument, error) {
	return c.instruments(ctx, marketListRoute("etfs"))
}

func (c *Client) Bonds(ctx context.Context) ([]domain.Instrument, error) {
	return c.instruments(ctx, marketListRoute("bonds"))
}

func (c *Client) Stocks(ctx context.Context) ([]domain.Instrument, error) {
	return c.instruments(ctx, marketListRoute("stocks"))
}

func (c *Client) instruments(ctx context.Context, rt route) ([]domain.Instrument, error) {
	v, err := fetch[domain.Instruments](ctx, c, rt, nil, "instruments")
	if err != nil {
		return nil, err
	}
	return v.Instruments, nil
}

// Candles returns bars of the given interval in [from, to). An empty figi
// leaves the request unfiltered.
func (c *Client) Candles(ctx context.Context, from, to time.Time, interval domain.CandleInterval, figi string) ([]domain.Candle, error) {
	if !interval.Valid() {
		return nil, fmt.Errorf("unknown candle interval %q", interval)
	}
	if from.After(to) {
		return nil, errors.New("from must not be after to")
	}
	v, err := fetch[domain.Candles](ctx, c, candlesRoute(interval, from, to, figi), nil, "candles")
	if err != nil {
		return nil, err
	}
	return v.Candles, nil
}

// OrderBook returns a depth snapshot. A depth outside [1, MaxOrderBookDepth]
// makes no request and returns an OrderBook holding only the requested depth
// and empty ladders; use ValidDepth to tell it apart from an empty market.
func (c *Client) OrderBook(ctx context.Context, depth int, figi string) (domain.OrderBook, error) {
	if !ValidDepth(depth) {
		return domain.OrderBook{
			Depth: depth,
			Bids:  []domain.PriceQuantity{},
			Asks:  []domain.PriceQuantity{},
		}, nil
	}
	return fetch[domain.OrderBook](ctx, c, orderBookRoute(depth, figi), nil, "order book")
}
