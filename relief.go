package landedcost

import "github.com/shopspring/decimal"

// ApplyDutyRelief aggregates items like Aggregate, except that when enabled every import duty
// (II) item is reduced by exTariffPercent before being accumulated.
//
// The percentage is clamped to [0, 100]: the relief never increases the duty nor makes it
// negative. Other categories are passed through unchanged.
func ApplyDutyRelief(items []CostLineItem, exTariffPercent decimal.Decimal, enabled bool, rates *ExchangeRateTable) (CostBreakdown, error) {
	if !enabled {
		return Aggregate(items, rates)
	}
	f := ReliefFactor(exTariffPercent)
	return aggregate(items, rates, func(item CostLineItem) decimal.Decimal {
		if item.Category != II {
			return decimal.NewFromInt(1)
		}
		return f
	})
}

// ReliefFactor returns the multiplier (100 - percent) / 100 applied to import duties, within [0, 1].
func ReliefFactor(percent decimal.Decimal) decimal.Decimal {
	return hundred.Sub(clamp(percent, zero, hundred)).Div(hundred)
}
