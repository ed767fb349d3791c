package openapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/juev/tinvest/domain"
)

const (
	// ProductionURL is the base URL of the live trading environment.
	ProductionURL = "https://api-invest.tinkoff.ru/openapi/"
	// SandboxURL is the base URL of the sandbox environment.
	SandboxURL = "https://api-invest.tinkoff.ru/openapi/sandbox/"

	// MaxOrderBookDepth is the deepest order book the server serves.
	MaxOrderBookDepth = 20
)

// BrokerAccount selects the account a scoped request runs against.
// The zero value is the default account.
type BrokerAccount struct {
	id       string
	explicit bool
}

// DefaultAccount lets the server pick the caller's default account.
func DefaultAccount() BrokerAccount { return BrokerAccount{} }

// Account selects a concrete broker account. An empty id selects the
// default account.
func Account(id string) BrokerAccount {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultAccount()
	}
	return BrokerAccount{id: id, explicit: true}
}

func (a BrokerAccount) IsDefault() bool { return !a.explicit }

// ID returns the account id, or "" for the default account.
func (a BrokerAccount) ID() string { return a.id }

func (a BrokerAccount) String() string {
	if a.IsDefault() {
		return "default"
	}
	return a.id
}

// ValidDepth reports whether depth is an order book depth the server accepts.
func ValidDepth(depth int) bool {
	return depth >= 1 && depth <= MaxOrderBookDepth
}

type param struct {
	key, value string
}

// query is an ordered list of parameters. Encoding keeps insertion order so
// request URLs are deterministic.
type query []param

func (q query) get(key string) (string, bool) {
	for _, p := range q {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

func (q query) encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// route is the method, path suffix and query of one API call.
type route struct {
	method string
	path   string
	query  query
}

func get(path string) route  { return route{method: http.MethodGet, path: path} }
func post(path string) route { return route{method: http.MethodPost, path: path} }

func (r route) with(key, value string) route {
	r.query = append(r.query[:len(r.query):len(r.query)], param{key, value})
	return r
}

// filter appends key only when value is set; an empty filter means unfiltered.
func (r route) filter(key, value string) route {
	if value == "" {
		return r
	}
	return r.with(key, value)
}

// scoped appends brokerAccountId unless acct is the default account.
func (r route) scoped(acct BrokerAccount) route {
	if acct.IsDefault() {
		return r
	}
	return r.with("brokerAccountId", acct.id)
}

func (r route) period(from, to time.Time) route {
	return r.with("from", from.Format(time.RFC3339)).with("to", to.Format(time.RFC3339))
}

func instrumentByFIGIRoute(figi string) route {
	return get("market/search/by-figi").with("figi", figi)
}

func instrumentByTickerRoute(ticker string) route {
	return get("market/search/by-ticker").with("ticker", ticker)
}

// marketListRoute serves market/currencies, market/etfs, market/bonds and
// market/stocks.
func marketListRoute(kind string) route {
	return get("market/" + kind)
}

func candlesRoute(interval domain.CandleInterval, from, to time.Time, figi string) route {
	return get("market/candles").
		with("interval", string(interval)).
		period(from, to).
		filter("figi", figi)
}

func orderBookRoute(depth int, figi string) route {
	return get("market/orderbook").
		with("depth", strconv.Itoa(depth)).
		filter("figi", figi)
}

func operationsRoute(acct BrokerAccount, from, to time.Time, figi string) route {
	return get("operations").period(from, to).filter("figi", figi).scoped(acct)
}

func positionsRoute(acct BrokerAccount) route {
	return get("portfolio").scoped(acct)
}

func portfolioCurrenciesRoute(acct BrokerAccount) route {
	return get("portfolio/currencies").scoped(acct)
}

func ordersRoute(acct BrokerAccount) route {
	return get("orders").scoped(acct)
}

func limitOrderRoute(acct BrokerAccount, figi string) route {
	return post("orders/limit-order").with("figi", figi).scoped(acct)
}

func marketOrderRoute(acct BrokerAccount, figi string) route {
	return post("orders/market-order").with("figi", figi).scoped(acct)
}

func cancelOrderRoute(acct BrokerAccount, orderID string) route {
	return post("orders/cancel").with("orderId", orderID).scoped(acct)
}

func accountsRoute() route {
	return get("user/accounts")
}

// resolve joins r onto base. base must end with a slash.
func (r route) resolve(base *url.URL) string {
	u := base.ResolveReference(&url.URL{Path: r.path})
	u.RawQuery = r.query.encode()
	return u.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: errMissingHost}
	}
	return u, nil
}
