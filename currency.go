package landedcost

// Currency is the ISO code of a cost line item's currency.
type Currency string

const (
	USD Currency = "USD"
	BRL Currency = "BRL"
	EUR Currency = "EUR"
	CNY Currency = "CNY"
)

// ReportingCurrency is the single currency every breakdown and projection is expressed in.
const ReportingCurrency = BRL

// Known reports whether c is one of the currencies an ExchangeRateTable can convert.
func (c Currency) Known() bool {
	switch c {
	case USD, BRL, EUR, CNY:
		return true
	}
	return false
}
