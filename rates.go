package landedcost

import (
	"errors"

	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// ErrRatesUnavailable is returned by every computation that needs to convert an amount when no
// exchange-rate table was supplied. Callers must show a "rates unavailable" state, not zeros.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// Quote is a pair of buy ("compra") and sell ("venda") rates, in BRL per unit of foreign currency.
type Quote struct {
	Compra decimal.Decimal `json:"compra"`
	Venda  decimal.Decimal `json:"venda"`
}

// ExchangeRateTable holds the BRL rates valid at a single valuation date.
//
// Costs are always converted with the sell rate; the buy rate is carried for display only.
type ExchangeRateTable struct {
	Date date.Date       `json:"date"`
	USD  Quote           `json:"usd"`
	EUR  Quote           `json:"eur"`
	CNY  decimal.Decimal `json:"cny"`
}

// Rate returns the multiplier that converts one unit of cur into BRL.
// BRL and any unrecognized currency tag convert at 1: they are treated as already in BRL.
func (t *ExchangeRateTable) Rate(cur Currency) decimal.Decimal {
	switch cur {
	case USD:
		return t.USD.Venda
	case EUR:
		return t.EUR.Venda
	case CNY:
		return t.CNY
	default:
		return decimal.NewFromInt(1)
	}
}

// Convert converts amount, expressed in cur, into BRL.
func (t *ExchangeRateTable) Convert(amount decimal.Decimal, cur Currency) Money {
	switch cur {
	case USD, EUR, CNY:
		return brl(amount.Mul(t.Rate(cur)))
	default:
		return brl(amount)
	}
}

// Convert converts amount, expressed in cur, into BRL using rates.
// It returns ErrRatesUnavailable if rates is nil.
func Convert(amount decimal.Decimal, cur Currency, rates *ExchangeRateTable) (Money, error) {
	if rates == nil {
		return Money{}, ErrRatesUnavailable
	}
	return rates.Convert(amount, cur), nil
}
