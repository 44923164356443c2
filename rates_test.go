package landedcost

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExchangeRateTable_Convert(t *testing.T) {
	rates := testRates()
	tests := []struct {
		name   string
		amount string
		cur    Currency
		want   Money
	}{
		{"USD uses the sell rate", "1000", USD, BRLs(5000)},
		{"EUR uses the sell rate", "100", EUR, BRLs(550)},
		{"CNY flat rate", "1000", CNY, BRLs(700)},
		{"BRL is identity", "1234.56", BRL, BRLs(1234.56)},
		// unknown tags are deliberately passed through as if already in BRL.
		{"unknown currency is identity", "42", Currency("JPY"), BRLs(42)},
		{"empty currency is identity", "42", Currency(""), BRLs(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, "Convert()", rates.Convert(dec(tt.amount), tt.cur), tt.want)
		})
	}
}

func TestConvert_IsLinear(t *testing.T) {
	rates := testRates()
	a := dec("123.45")
	for _, cur := range []Currency{USD, EUR, CNY, BRL, "XYZ"} {
		for _, k := range []string{"0.5", "2", "3.75", "1000"} {
			scaled, err := Convert(a.Mul(dec(k)), cur, rates)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			base, _ := Convert(a, cur, rates)
			if !scaled.Value().Equal(base.Value().Mul(dec(k))) {
				t.Errorf("Convert(%s·a, %s) = %s, want %s", k, cur, scaled.Value(), base.Value().Mul(dec(k)))
			}
		}
	}
}

func TestConvert_NeverUsesBuyRate(t *testing.T) {
	rates := testRates()
	rates.USD.Compra = dec("1")
	assertMoney(t, "Convert()", rates.Convert(decimal.NewFromInt(10), USD), BRLs(50))
}

func TestConvert_RatesUnavailable(t *testing.T) {
	_, err := Convert(dec("10"), USD, nil)
	if !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("Convert(nil rates) error = %v, want ErrRatesUnavailable", err)
	}
}

func TestExchangeRateTable_Validate(t *testing.T) {
	if err := testRates().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	bad := testRates()
	bad.EUR.Venda = decimal.Zero
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with a zero sell rate should fail")
	}
}
