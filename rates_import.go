package landedcost

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// RatePaths locates the fields of an ExchangeRateTable in an arbitrary JSON rate document, as
// JSONPath expressions.
type RatePaths struct {
	Date      string `json:"date" yaml:"date" toml:"date"`
	USDCompra string `json:"usdCompra" yaml:"usdCompra" toml:"usdCompra"`
	USDVenda  string `json:"usdVenda" yaml:"usdVenda" toml:"usdVenda"`
	EURCompra string `json:"eurCompra" yaml:"eurCompra" toml:"eurCompra"`
	EURVenda  string `json:"eurVenda" yaml:"eurVenda" toml:"eurVenda"`
	CNY       string `json:"cny" yaml:"cny" toml:"cny"`
}

// DefaultRatePaths matches the table's own JSON format.
var DefaultRatePaths = RatePaths{
	Date:      "$.date",
	USDCompra: "$.usd.compra",
	USDVenda:  "$.usd.venda",
	EURCompra: "$.eur.compra",
	EURVenda:  "$.eur.venda",
	CNY:       "$.cny",
}

// ImportRates extracts an exchange-rate table from a saved rate document.
//
// Values may be JSON numbers or strings; strings may use a comma as the decimal separator. An
// empty path leaves the field at zero, which Validate then reports for the sell rates.
func ImportRates(r io.Reader, paths RatePaths) (*ExchangeRateTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode rate document: %w", err)
	}

	var t ExchangeRateTable
	if paths.Date != "" {
		s, err := lookupString(jobj, paths.Date)
		if err != nil {
			return nil, err
		}
		if t.Date, err = date.Parse(s); err != nil {
			return nil, fmt.Errorf("invalid rate date at %q: %w", paths.Date, err)
		}
	}

	fields := []struct {
		path string
		dst  *decimal.Decimal
	}{
		{paths.USDCompra, &t.USD.Compra},
		{paths.USDVenda, &t.USD.Venda},
		{paths.EURCompra, &t.EUR.Compra},
		{paths.EURVenda, &t.EUR.Venda},
		{paths.CNY, &t.CNY},
	}
	for _, f := range fields {
		if f.path == "" {
			continue
		}
		d, err := lookupDecimal(jobj, f.path)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// lookup evaluates path against jobj.
func lookup(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("no value at %q", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func lookupString(jobj any, path string) (string, error) {
	jval, err := lookup(jobj, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}

func lookupDecimal(jobj any, path string) (decimal.Decimal, error) {
	jval, err := lookup(jobj, path)
	if err != nil {
		return decimal.Zero, err
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("value at %q is not a number: %w", path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("value at %q is neither a number nor a string: %v", path, jval)
	}
}
