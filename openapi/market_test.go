package openapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juev/tinvest/domain"
)

func TestInstrumentByFIGI(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, ok(instrumentJSON))

	inst, err := c.InstrumentByFIGI(context.Background(), "BBG000B9XRY4")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", inst.Ticker)
	assert.Equal(t, 0.01, inst.MinPriceIncrement)
	assert.Equal(t, domain.USD, inst.Currency)

	req := rec.last(t)
	assert.Equal(t, "/openapi/market/search/by-figi", req.Path)
	assert.Equal(t, "figi=BBG000B9XRY4", req.Query)

	_, err = c.InstrumentByFIGI(context.Background(), "")
	assert.Error(t, err)
	assert.Len(t, rec.all(), 1)
}

func TestInstrumentByTicker(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, ok(`{"instruments":[`+instrumentJSON+`],"total":1}`))

	list, err := c.InstrumentByTicker(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BBG000B9XRY4", list[0].FIGI)
	assert.Equal(t, "ticker=AAPL", rec.last(t).Query)
}

func TestMarketLists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lists := map[string]func(*Client) ([]domain.Instrument, error){
		"/openapi/market/stocks":     func(c *Client) ([]domain.Instrument, error) { return c.Stocks(ctx) },
		"/openapi/market/bonds":      func(c *Client) ([]domain.Instrument, error) { return c.Bonds(ctx) },
		"/openapi/market/etfs":       func(c *Client) ([]domain.Instrument, error) { return c.ETFs(ctx) },
		"/openapi/market/currencies": func(c *Client) ([]domain.Instrument, error) { return c.Currencies(ctx) },
	}

	for path, list := range lists {
		t.Run(path, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, ok(`{"instruments":[`+instrumentJSON+`,`+instrumentJSON+`]}`))

			got, err := list(c)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			assert.Equal(t, path, rec.last(t).Path)
			assert.Empty(t, rec.last(t).Query)
		})
	}
}

func TestMarketList_EmptyIsNotError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.StatusOK, ok(`{"instruments":[]}`))
	got, err := c.Stocks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandles(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, ok(`{"figi":"F1","interval":"day","candles":[
		{"figi":"F1","interval":"day","o":10,"c":11,"h":12,"l":9,"v":1000,"time":"2024-01-02T07:00:00Z"}]}`))

	candles, err := c.Candles(context.Background(), testFrom, testTo, domain.Interval1Day, "F1")
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.Equal(t, 12.0, candles[0].High)
	assert.Equal(t, domain.Interval1Day, candles[0].Interval)

	q, err := url.ParseQuery(rec.last(t).Query)
	require.NoError(t, err)
	assert.Equal(t, "day", q.Get("interval"))
	assert.Equal(t, "2024-01-01T00:00:00Z", q.Get("from"))
	assert.Equal(t, "2024-01-31T12:30:00Z", q.Get("to"))
	assert.Equal(t, "F1", q.Get("figi"))
}

func TestCandles_RejectsBadInput(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, ok(`{}`))

	_, err := c.Candles(context.Background(), testFrom, testTo, domain.CandleInterval("7min"), "F1")
	assert.Error(t, err)
	_, err = c.Candles(context.Background(), testTo, testFrom, domain.Interval1Day, "F1")
	assert.Error(t, err)
	assert.Empty(t, rec.all())
}

func TestOrderBook_InvalidDepthMakesNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, err := NewClient("tok", WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, assert.AnError
	})))
	require.NoError(t, err)

	for _, depth := range []int{0, -3, 21, 100} {
		ob, err := c.OrderBook(context.Background(), depth, "F1")
		require.NoError(t, err)
		assert.Equal(t, depth, ob.Depth)
		assert.NotNil(t, ob.Bids)
		assert.NotNil(t, ob.Asks)
		assert.Empty(t, ob.Bids)
		assert.Empty(t, ob.Asks)
		assert.Empty(t, ob.FIGI)
	}
	assert.Zero(t, calls.Load())
}

func TestOrderBook_ValidDepth(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{1, 20} {
		c, rec := newTestClient(t, http.StatusOK, ok(`{"figi":"F1","depth":1,
			"bids":[{"price":99.5,"quantity":3}],"asks":[{"price":100,"quantity":7}],
			"tradeStatus":"NormalTrading","minPriceIncrement":0.5,"lastPrice":99.5}`))

		ob, err := c.OrderBook(context.Background(), depth, "F1")
		require.NoError(t, err)
		assert.Equal(t, "F1", ob.FIGI)
		assert.Equal(t, 0.5, ob.Spread())
		assert.Equal(t, domain.TradingStatusNormalTrading, ob.TradeStatus)

		q, err := url.ParseQuery(rec.last(t).Query)
		require.NoError(t, err)
		assert.Equal(t, []string{"depth", "figi"}, keysInOrder(rec.last(t).Query))
		assert.Equal(t, "F1", q.Get("figi"))
	}
}

func keysInOrder(raw string) []string {
	var keys []string
	for _, kv := range strings.Split(raw, "&") {
		k, _, _ := strings.Cut(kv, "=")
		keys = append(keys, k)
	}
	return keys
}
