package landedcost

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// CostBreakdown is the BRL total per category and overall.
//
// Only categories that received at least one item are present: an absent category and a
// category that sums to zero are different things.
type CostBreakdown struct {
	totals map[Category]Money
	total  Money
}

// Get returns the total of category c, and whether it is present in the breakdown.
func (b CostBreakdown) Get(c Category) (Money, bool) {
	m, ok := b.totals[c]
	return m, ok
}

// Amount returns the total of category c, zero when absent.
func (b CostBreakdown) Amount(c Category) Money {
	if m, ok := b.totals[c]; ok {
		return m
	}
	return brl(zero)
}

// Has reports whether category c is present.
func (b CostBreakdown) Has(c Category) bool {
	_, ok := b.totals[c]
	return ok
}

// Total returns the sum of every category total.
func (b CostBreakdown) Total() Money { return b.total }

// Categories returns the present categories in display order.
func (b CostBreakdown) Categories() []Category {
	cats := slices.Collect(maps.Keys(b.totals))
	slices.SortFunc(cats, func(x, y Category) int { return categoryOrder[x] - categoryOrder[y] })
	return cats
}

// CIF returns the customs value: FOB, international freight and insurance, absent ones counting as 0.
func (b CostBreakdown) CIF() Money {
	cif := brl(zero)
	for _, c := range CIFCategories {
		cif = cif.Add(b.Amount(c))
	}
	return cif
}

// Equal reports whether both breakdowns have the same categories with the same totals.
func (b CostBreakdown) Equal(o CostBreakdown) bool {
	return b.total.Equal(o.total) && maps.EqualFunc(b.totals, o.totals, Money.Equal)
}

// with returns a copy of b with amount added to category c.
func (b CostBreakdown) with(c Category, amount Money) CostBreakdown {
	totals := maps.Clone(b.totals)
	if totals == nil {
		totals = make(map[Category]Money)
	}
	totals[c] = totals[c].Add(amount)
	return CostBreakdown{totals: totals, total: b.total.Add(amount)}
}

// MarshalJSON writes the totals in display order followed by the grand total.
func (b CostBreakdown) MarshalJSON() ([]byte, error) {
	var totals jsonObjectWriter
	for _, c := range b.Categories() {
		totals.Append(string(c), b.totals[c])
	}
	var w jsonObjectWriter
	w.Append("perCategoryTotalsBRL", &totals)
	w.Append("totalBRL", b.total)
	return w.MarshalJSON()
}

// Aggregate converts every item into BRL and sums them per category.
//
// It returns ErrRatesUnavailable if rates is nil, and never a zeroed breakdown in that case.
func Aggregate(items []CostLineItem, rates *ExchangeRateTable) (CostBreakdown, error) {
	return aggregate(items, rates, nil)
}

// aggregate is Aggregate with an optional per-item factor applied after conversion.
func aggregate(items []CostLineItem, rates *ExchangeRateTable, factor func(CostLineItem) decimal.Decimal) (CostBreakdown, error) {
	if rates == nil {
		return CostBreakdown{}, ErrRatesUnavailable
	}
	// sums are kept as raw decimals, decimal addition is exact hence order independent.
	sums := make(map[Category]decimal.Decimal)
	for _, item := range items {
		v := rates.Convert(item.Value, item.Currency).Value()
		if factor != nil {
			v = v.Mul(factor(item))
		}
		sums[item.Category] = sums[item.Category].Add(v)
	}

	b := CostBreakdown{totals: make(map[Category]Money, len(sums)), total: brl(zero)}
	for c, v := range sums {
		b.totals[c] = brl(v)
		b.total = b.total.Add(brl(v))
	}
	return b, nil
}
