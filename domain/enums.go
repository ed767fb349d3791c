package domain

import "fmt"

// enum is the closed set of wire strings accepted for one enumeration.
type enum[T ~string] struct {
	name    string
	order   []T
	values  map[T]struct{}
	aliases map[string]T
}

func newEnum[T ~string](name string, vs ...T) enum[T] {
	e := enum[T]{name: name, order: vs, values: make(map[T]struct{}, len(vs))}
	for _, v := range vs {
		e.values[v] = struct{}{}
	}
	return e
}

// alias maps an alternative wire spelling onto v. Decoding normalizes to v.
func (e enum[T]) alias(wire string, v T) enum[T] {
	if e.aliases == nil {
		e.aliases = make(map[string]T)
	}
	e.aliases[wire] = v
	return e
}

func (e enum[T]) valid(v T) bool {
	_, ok := e.values[v]
	return ok
}

func (e enum[T]) parse(b []byte, dst *T) error {
	v := T(b)
	if e.valid(v) {
		*dst = v
		return nil
	}
	if a, ok := e.aliases[string(b)]; ok {
		*dst = a
		return nil
	}
	return fmt.Errorf("unknown %s %q", e.name, string(b))
}

func (e enum[T]) list() []T {
	out := make([]T, len(e.order))
	copy(out, e.order)
	return out
}

// Currency is an ISO currency code as used by the API.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
	TRY Currency = "TRY"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
	CHF Currency = "CHF"
	GBP Currency = "GBP"
	HKD Currency = "HKD"
)

var currencies = newEnum("currency", RUB, USD, EUR, TRY, JPY, CNY, CHF, GBP, HKD)

func (c Currency) Valid() bool                   { return currencies.valid(c) }
func (c *Currency) UnmarshalText(b []byte) error { return currencies.parse(b, c) }

// OperationType is the kind of a ledger operation. Buy and Sell are also
// the only values accepted when placing an order.
type OperationType string

const (
	OperationTypeBuy                OperationType = "Buy"
	OperationTypeSell               OperationType = "Sell"
	OperationTypeBrokerCommission   OperationType = "BrokerCommission"
	OperationTypeExchangeCommission OperationType = "ExchangeCommission"
	OperationTypeServiceCommission  OperationType = "ServiceCommission"
	OperationTypeMarginCommission   OperationType = "MarginCommission"
	OperationTypeOtherCommission    OperationType = "OtherCommission"
	OperationTypePayIn              OperationType = "PayIn"
	OperationTypePayOut             OperationType = "PayOut"
	OperationTypeTax                OperationType = "Tax"
	OperationTypeTaxLucre           OperationType = "TaxLucre"
	OperationTypeTaxDividend        OperationType = "TaxDividend"
	OperationTypeTaxCoupon          OperationType = "TaxCoupon"
	OperationTypeTaxBack            OperationType = "TaxBack"
	OperationTypeRepayment          OperationType = "Repayment"
	OperationTypePartRepayment      OperationType = "PartRepayment"
	OperationTypeCoupon             OperationType = "Coupon"
	OperationTypeDividend           OperationType = "Dividend"
	OperationTypeSecurityIn         OperationType = "SecurityIn"
	OperationTypeSecurityOut        OperationType = "SecurityOut"
	OperationTypeBuyCard            OperationType = "BuyCard"
)

var operationTypes = newEnum("operation type",
	OperationTypeBuy, OperationTypeSell,
	OperationTypeBrokerCommission, OperationTypeExchangeCommission,
	OperationTypeServiceCommission, OperationTypeMarginCommission,
	OperationTypeOtherCommission, OperationTypePayIn, OperationTypePayOut,
	OperationTypeTax, OperationTypeTaxLucre, OperationTypeTaxDividend,
	OperationTypeTaxCoupon, OperationTypeTaxBack, OperationTypeRepayment,
	OperationTypePartRepayment, OperationTypeCoupon, OperationTypeDividend,
	OperationTypeSecurityIn, OperationTypeSecurityOut, OperationTypeBuyCard,
)

func (o OperationType) Valid() bool                   { return operationTypes.valid(o) }
func (o *OperationType) UnmarshalText(b []byte) error { return operationTypes.parse(b, o) }

// IsTradeSide reports whether o can be used to place an order.
func (o OperationType) IsTradeSide() bool {
	return o == OperationTypeBuy || o == OperationTypeSell
}

// ParseOperationType maps a wire string to an OperationType.
func ParseOperationType(s string) (OperationType, error) {
	var o OperationType
	err := o.UnmarshalText([]byte(s))
	return o, err
}

type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "New"
	OrderStatusPartiallyFill  OrderStatus = "PartiallyFill"
	OrderStatusFill           OrderStatus = "Fill"
	OrderStatusCancelled      OrderStatus = "Cancelled"
	OrderStatusReplaced       OrderStatus = "Replaced"
	OrderStatusPendingCancel  OrderStatus = "PendingCancel"
	OrderStatusRejected       OrderStatus = "Rejected"
	OrderStatusPendingReplace OrderStatus = "PendingReplace"
	OrderStatusPendingNew     OrderStatus = "PendingNew"
)

var orderStatuses = newEnum("order status",
	OrderStatusNew, OrderStatusPartiallyFill, OrderStatusFill,
	OrderStatusCancelled, OrderStatusReplaced, OrderStatusPendingCancel,
	OrderStatusRejected, OrderStatusPendingReplace, OrderStatusPendingNew,
)

func (s OrderStatus) Valid() bool                   { return orderStatuses.valid(s) }
func (s *OrderStatus) UnmarshalText(b []byte) error { return orderStatuses.parse(b, s) }

type OperationStatus string

const (
	OperationStatusDone     OperationStatus = "Done"
	OperationStatusDecline  OperationStatus = "Decline"
	OperationStatusProgress OperationStatus = "Progress"
)

var operationStatuses = newEnum("operation status",
	OperationStatusDone, OperationStatusDecline, OperationStatusProgress)

func (s OperationStatus) Valid() bool                   { return operationStatuses.valid(s) }
func (s *OperationStatus) UnmarshalText(b []byte) error { return operationStatuses.parse(b, s) }

type InstrumentType string

const (
	InstrumentTypeStock    InstrumentType = "Stock"
	InstrumentTypeCurrency InstrumentType = "Currency"
	InstrumentTypeBond     InstrumentType = "Bond"
	InstrumentTypeEtf      InstrumentType = "Etf"
)

// Older API revisions spell the currency type in lower case.
var instrumentTypes = newEnum("instrument type",
	InstrumentTypeStock, InstrumentTypeCurrency, InstrumentTypeBond, InstrumentTypeEtf).
	alias("currency", InstrumentTypeCurrency)

func (t InstrumentType) Valid() bool                   { return instrumentTypes.valid(t) }
func (t *InstrumentType) UnmarshalText(b []byte) error { return instrumentTypes.parse(b, t) }

type OrderType string

const (
	OrderTypeLimit  OrderType = "Limit"
	OrderTypeMarket OrderType = "Market"
)

var orderTypes = newEnum("order type", OrderTypeLimit, OrderTypeMarket)

func (t OrderType) Valid() bool                   { return orderTypes.valid(t) }
func (t *OrderType) UnmarshalText(b []byte) error { return orderTypes.parse(b, t) }

// TradingStatus is the trading state of an instrument. The REST order book
// reports the CamelCase values, the streaming API the snake_case ones.
type TradingStatus string

const (
	TradingStatusNormalTrading          TradingStatus = "NormalTrading"
	TradingStatusNotAvailableForTrading TradingStatus = "NotAvailableForTrading"

	StreamBreakInTrading               TradingStatus = "break_in_trading"
	StreamNormalTrading                TradingStatus = "normal_trading"
	StreamNotAvailableForTrading       TradingStatus = "not_available_for_trading"
	StreamClosingAuction               TradingStatus = "closing_auction"
	StreamClosingPeriod                TradingStatus = "closing_period"
	StreamDarkPoolAuction              TradingStatus = "dark_pool_auction"
	StreamDiscreteAuction              TradingStatus = "discrete_auction"
	StreamOpeningPeriod                TradingStatus = "opening_period"
	StreamOpeningAuctionPeriod         TradingStatus = "opening_auction_period"
	StreamTradingAtClosingAuctionPrice TradingStatus = "trading_at_closing_auction_price"
)

var tradingStatuses = newEnum("trading status",
	TradingStatusNormalTrading, TradingStatusNotAvailableForTrading,
	StreamBreakInTrading, StreamNormalTrading, StreamNotAvailableForTrading,
	StreamClosingAuction, StreamClosingPeriod, StreamDarkPoolAuction,
	StreamDiscreteAuction, StreamOpeningPeriod, StreamOpeningAuctionPeriod,
	StreamTradingAtClosingAuctionPrice,
)

func (s TradingStatus) Valid() bool                   { return tradingStatuses.valid(s) }
func (s *TradingStatus) UnmarshalText(b []byte) error { return tradingStatuses.parse(b, s) }

type AccountType string

const (
	AccountTinkoff    AccountType = "Tinkoff"
	AccountTinkoffIIS AccountType = "TinkoffIis"
)

var accountTypes = newEnum("account type", AccountTinkoff, AccountTinkoffIIS)

func (t AccountType) Valid() bool                   { return accountTypes.valid(t) }
func (t *AccountType) UnmarshalText(b []byte) error { return accountTypes.parse(b, t) }

// CandleInterval is the bar width of a candle.
type CandleInterval string

const (
	Interval1Min   CandleInterval = "1min"
	Interval2Min   CandleInterval = "2min"
	Interval3Min   CandleInterval = "3min"
	Interval5Min   CandleInterval = "5min"
	Interval10Min  CandleInterval = "10min"
	Interval15Min  CandleInterval = "15min"
	Interval30Min  CandleInterval = "30min"
	Interval1Hour  CandleInterval = "hour"
	Interval2Hour  CandleInterval = "2hour"
	Interval4Hour  CandleInterval = "4hour"
	Interval1Day   CandleInterval = "day"
	Interval1Week  CandleInterval = "week"
	Interval1Month CandleInterval = "month"
)

var candleIntervals = newEnum("candle interval",
	Interval1Min, Interval2Min, Interval3Min, Interval5Min, Interval10Min,
	Interval15Min, Interval30Min, Interval1Hour, Interval2Hour, Interval4Hour,
	Interval1Day, Interval1Week, Interval1Month,
)

func (i CandleInterval) Valid() bool                   { return candleIntervals.valid(i) }
func (i *CandleInterval) UnmarshalText(b []byte) error { return candleIntervals.parse(b, i) }

// CandleIntervals lists every interval in ascending width.
func CandleIntervals() []CandleInterval { return candleIntervals.list() }

// ParseCandleInterval maps a wire string to a CandleInterval.
func ParseCandleInterval(s string) (CandleInterval, error) {
	var i CandleInterval
	err := i.UnmarshalText([]byte(s))
	return i, err
}
