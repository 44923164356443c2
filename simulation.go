package landedcost

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulationParameters are the "what if" knobs applied on top of the real figures.
type SimulationParameters struct {
	ApplyExTariff     bool
	AdditionalFeesBRL decimal.Decimal
	WarehouseSchedule *WarehouseFeeSchedule // nil when no bonded storage is simulated
	StorageDays       int
}

// Comparison puts the real breakdown and the simulated one side by side.
type Comparison struct {
	Original     CostBreakdown
	Simulated    CostBreakdown
	WarehouseFee Money // zero when no schedule was selected
}

// Savings returns Original.Total - Simulated.Total. It is negative when the simulation costs more.
func (c Comparison) Savings() Money { return c.Original.Total().Sub(c.Simulated.Total()) }

// Delta returns the simulated minus the original total of category cat.
func (c Comparison) Delta(cat Category) Money {
	return c.Simulated.Amount(cat).Sub(c.Original.Amount(cat))
}

// Categories returns the categories present in either breakdown, in display order.
func (c Comparison) Categories() []Category {
	var cats []Category
	for _, cat := range allCategories {
		if c.Original.Has(cat) || c.Simulated.Has(cat) {
			cats = append(cats, cat)
		}
	}
	return cats
}

func (c Comparison) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("original", c.Original)
	w.Append("simulated", c.Simulated)
	w.Append("warehouseFeeBRL", c.WarehouseFee)
	w.Append("savingsBRL", c.Savings())
	return w.MarshalJSON()
}

// Simulate compares the profile's real breakdown with the one obtained under params.
//
// The simulated breakdown applies the EX-tariff relief (if requested), then adds the
// bonded-warehouse fee under SimulatedWarehouse whenever a schedule is selected, and the
// additional fees under SimulatedAdditionalFees when they are positive.
func Simulate(p ImportCostProfile, params SimulationParameters, rates *ExchangeRateTable) (Comparison, error) {
	original, err := Aggregate(p.Items, rates)
	if err != nil {
		return Comparison{}, fmt.Errorf("cannot compute the original breakdown: %w", err)
	}
	simulated, err := ApplyDutyRelief(p.Items, p.ExTariffPercent, params.ApplyExTariff, rates)
	if err != nil {
		return Comparison{}, fmt.Errorf("cannot compute the simulated breakdown: %w", err)
	}

	cmp := Comparison{Original: original, WarehouseFee: brl(zero)}
	if params.WarehouseSchedule != nil {
		cmp.WarehouseFee = SimulateWarehouseFee(original, *params.WarehouseSchedule, params.StorageDays)
		simulated = simulated.with(SimulatedWarehouse, cmp.WarehouseFee)
	}
	if params.AdditionalFeesBRL.IsPositive() {
		simulated = simulated.with(SimulatedAdditionalFees, brl(params.AdditionalFeesBRL))
	}
	cmp.Simulated = simulated
	return cmp, nil
}
