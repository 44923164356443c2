package landedcost

import (
	"testing"

	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for test to create decimals from const strings.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// BRLs is a helper for test to create reais from const
func BRLs(v float64) Money { return M(v, BRL) }

// USDs is a helper for test to create dollars from const
func USDs(v float64) Money { return M(v, USD) }

// testRates is the rate table used by most tests: USD 5.0, EUR 5.5, CNY 0.7 (sell rates).
func testRates() *ExchangeRateTable {
	return &ExchangeRateTable{
		Date: date.New(2024, 3, 1),
		USD:  Quote{Compra: dec("4.9"), Venda: dec("5.0")},
		EUR:  Quote{Compra: dec("5.4"), Venda: dec("5.5")},
		CNY:  dec("0.7"),
	}
}

// item is a helper to create an approved cost line item.
func item(id string, c Category, value string, cur Currency) CostLineItem {
	return CostLineItem{ID: id, Category: c, Value: dec(value), Currency: cur, Status: Approved}
}

func datePtr(s string) *date.Date {
	d, err := date.Parse(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// assertMoney fails if got is not equal to want (value and currency).
func assertMoney(t *testing.T, what string, got, want Money) {
	t.Helper()
	if !got.Value().Equal(want.Value()) || got.Currency() != want.Currency() {
		t.Errorf("%s = %s %s, want %s %s", what, got.Value(), got.Currency(), want.Value(), want.Currency())
	}
}

// sampleItems is a small, realistic import: goods, freight, insurance, duties and fees.
func sampleItems() []CostLineItem {
	return []CostLineItem{
		item("fob", FOB, "20000", USD),
		item("freight", InternationalFreight, "3000", USD),
		item("insurance", Insurance, "200", EUR),
		item("ii", II, "12000", BRL),
		item("ipi", IPI, "5000", BRL),
		item("broker", BrokerFees, "1500", BRL),
		item("port", PortFees, "1000", CNY),
		item("ii-extra", II, "100", USD),
	}
}
