package landedcost

import (
	"fmt"
	"slices"

	"github.com/luizmugnaicomex-art/landedcost/date"
)

// ImportItem is a cost line item tagged with the import it belongs to.
type ImportItem struct {
	ImportID string       `json:"importId"`
	Item     CostLineItem `json:"item"`
}

// CashFlowMonth is the projected and actual BRL expense of a calendar month.
type CashFlowMonth struct {
	Month     string // "2006-01"
	Start     date.Date
	Projected Money
	Actual    Money
}

func (m CashFlowMonth) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("monthLabel", m.Month)
	w.Append("projectedBRL", m.Projected)
	w.Append("actualBRL", m.Actual)
	return w.MarshalJSON()
}

// CashFlowProjection is the result of ProjectCashFlow.
type CashFlowProjection struct {
	Range   date.Range      // month-truncated window
	Series  []CashFlowMonth // one entry per calendar month of Range, in order
	Pending []ImportItem    // outstanding items due in Range, by due date
}

// TotalProjected returns the sum of the projected series.
func (p CashFlowProjection) TotalProjected() Money {
	total := brl(zero)
	for _, m := range p.Series {
		total = total.Add(m.Projected)
	}
	return total
}

// TotalActual returns the sum of the actual series.
func (p CashFlowProjection) TotalActual() Money {
	total := brl(zero)
	for _, m := range p.Series {
		total = total.Add(m.Actual)
	}
	return total
}

// Month returns the bucket labeled label ("2006-01").
func (p CashFlowProjection) Month(label string) (CashFlowMonth, bool) {
	for _, m := range p.Series {
		if m.Month == label {
			return m, true
		}
	}
	return CashFlowMonth{}, false
}

func (p CashFlowProjection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("from", p.Range.From)
	w.Append("to", p.Range.To)
	w.Append("series", p.Series)
	w.Append("pendingLedger", p.Pending)
	return w.MarshalJSON()
}

// ProjectedAmount returns the BRL amount an outstanding item contributes to its due month.
//
// An explicit, strictly positive MonthlyProvision wins over the converted face value.
func ProjectedAmount(item CostLineItem, rates *ExchangeRateTable) Money {
	if item.MonthlyProvision != nil && item.MonthlyProvision.IsPositive() {
		return brl(*item.MonthlyProvision)
	}
	return rates.Convert(item.Value, item.Currency)
}

// isPending reports whether item is outstanding and due within r.
func isPending(item CostLineItem, r date.Range) bool {
	return item.Status.Outstanding() && item.DueDate != nil && r.Contains(*item.DueDate)
}

// isSettled reports whether item was paid within r.
func isSettled(item CostLineItem, r date.Range) bool {
	return item.Status == Paid && item.PaymentDate != nil && r.Contains(*item.PaymentDate)
}

// ProjectCashFlow buckets items per calendar month between start and end (both truncated to
// their month, swapped if reversed).
//
// Paid items add their converted value to the Actual of their payment month. Outstanding items
// (neither Paid nor Cancelled) add their ProjectedAmount to the Projected of their due month and
// are listed in the pending ledger with their original value. Items without the relevant date
// are ignored. Every month of the window is present, even without activity.
func ProjectCashFlow(items []ImportItem, start, end date.Date, rates *ExchangeRateTable) (CashFlowProjection, error) {
	if rates == nil {
		return CashFlowProjection{}, fmt.Errorf("cannot project cash flow: %w", ErrRatesUnavailable)
	}
	p := CashFlowProjection{Range: date.MonthRange(start, end)}

	index := make(map[string]int)
	for m := range p.Range.Months() {
		index[m.MonthLabel()] = len(p.Series)
		p.Series = append(p.Series, CashFlowMonth{Month: m.MonthLabel(), Start: m, Projected: brl(zero), Actual: brl(zero)})
	}

	for _, it := range items {
		item := it.Item
		if isSettled(item, p.Range) {
			i := index[item.PaymentDate.MonthLabel()]
			p.Series[i].Actual = p.Series[i].Actual.Add(rates.Convert(item.Value, item.Currency))
		}
		if isPending(item, p.Range) {
			i := index[item.DueDate.MonthLabel()]
			p.Series[i].Projected = p.Series[i].Projected.Add(ProjectedAmount(item, rates))
			p.Pending = append(p.Pending, it)
		}
	}

	slices.SortStableFunc(p.Pending, func(a, b ImportItem) int {
		return a.Item.DueDate.Sub(*b.Item.DueDate)
	})
	return p, nil
}
