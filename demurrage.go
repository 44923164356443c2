package landedcost

import (
	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// DefaultDemurrageDailyRateUSD is the reference daily charge used to preview demurrage when no
// other rate is configured.
var DefaultDemurrageDailyRateUSD = decimal.NewFromInt(100)

// DemurrageExposure is derived from the arrival milestone and the day of evaluation; it has no
// identity of its own.
type DemurrageExposure struct {
	FreeTimeEnd   date.Date
	DaysRemaining int    // positive while still within free time, negative once overdue
	EstimatedCost *Money // in USD, nil while within free time
}

// Overdue reports whether the free time has been exceeded.
func (e DemurrageExposure) Overdue() bool { return e.DaysRemaining < 0 }

func (e DemurrageExposure) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("freeTimeEndDate", e.FreeTimeEnd)
	w.Append("daysRemaining", e.DaysRemaining)
	w.Optional("estimatedCostUSD", e.EstimatedCost)
	return w.MarshalJSON()
}

// ComputeDemurrageExposure returns the demurrage exposure on day today, and false when no
// ArrivalAtPort milestone exists yet: the exposure is then not computable.
//
// The free time ends freeTimeDays calendar days after arrival. Once exceeded, the estimated cost
// is the number of overdue days times dailyRateUSD; this is a preview, not a booked charge.
// A negative freeTimeDays is treated as 0.
func ComputeDemurrageExposure(milestones []Milestone, freeTimeDays int, today date.Date, dailyRateUSD decimal.Decimal) (DemurrageExposure, bool) {
	arrived, ok := arrival(milestones)
	if !ok {
		return DemurrageExposure{}, false
	}
	freeTimeDays = max(freeTimeDays, 0)

	e := DemurrageExposure{FreeTimeEnd: arrived.Add(freeTimeDays)}
	e.DaysRemaining = e.FreeTimeEnd.Sub(today)
	if e.DaysRemaining < 0 {
		cost := M(dailyRateUSD.Mul(decimal.NewFromInt(int64(-e.DaysRemaining))), USD)
		e.EstimatedCost = &cost
	}
	return e, true
}
