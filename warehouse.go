package landedcost

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BillingPeriodDays is the length of a bonded-warehouse billing block. A partial block is billed
// as a full one.
const BillingPeriodDays = 15

// WarehouseFeeSchedule is an operator's storage tariff: a percentage of the CIF value per
// billing period, with a minimum charge per period.
type WarehouseFeeSchedule struct {
	Name          string          `json:"name"`
	PercentOfCIF  decimal.Decimal `json:"percentOfCIF"` // a ratio, 0.003 is 0.3%
	MinimumFeeBRL decimal.Decimal `json:"minimumFeeBRL"`
}

// StoragePeriods returns the number of billing periods for storageDays, rounding up.
// Zero and negative durations bill no period at all.
func StoragePeriods(storageDays int) int {
	if storageDays <= 0 {
		return 0
	}
	return (storageDays + BillingPeriodDays - 1) / BillingPeriodDays
}

// FeePerPeriod returns the fee of a single billing period for a given CIF value.
func (s WarehouseFeeSchedule) FeePerPeriod(cif Money) Money {
	return brl(decimal.Max(cif.Value().Mul(s.PercentOfCIF), s.MinimumFeeBRL))
}

// SimulateWarehouseFee returns the total bonded-warehouse fee for storing the goods of b for
// storageDays under schedule s. The minimum applies to each period, not once overall.
//
// Note that storageDays=0 bills nothing even though a schedule was selected.
func SimulateWarehouseFee(b CostBreakdown, s WarehouseFeeSchedule, storageDays int) Money {
	periods := StoragePeriods(storageDays)
	return s.FeePerPeriod(b.CIF()).Mul(decimal.NewFromInt(int64(periods)))
}

// Catalog is a list of named warehouse fee schedules.
type Catalog []WarehouseFeeSchedule

// DefaultCatalog returns the built-in schedules.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "port-terminal", PercentOfCIF: decimal.RequireFromString("0.003"), MinimumFeeBRL: decimal.NewFromInt(500)},
		{Name: "dry-port", PercentOfCIF: decimal.RequireFromString("0.0025"), MinimumFeeBRL: decimal.NewFromInt(450)},
		{Name: "logistics-center", PercentOfCIF: decimal.RequireFromString("0.002"), MinimumFeeBRL: decimal.NewFromInt(650)},
	}
}

// Lookup returns the schedule with the given name, case-insensitively.
func (c Catalog) Lookup(name string) (WarehouseFeeSchedule, error) {
	for _, s := range c {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return WarehouseFeeSchedule{}, fmt.Errorf("unknown warehouse schedule %q%s", name, suggest(name, names))
}

// Validate checks that every schedule has a unique name and non-negative parameters.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, s := range c {
		key := strings.ToLower(s.Name)
		switch {
		case s.Name == "":
			return fmt.Errorf("warehouse schedule without a name")
		case seen[key]:
			return fmt.Errorf("warehouse schedule %q is defined twice", s.Name)
		case s.PercentOfCIF.IsNegative(), s.MinimumFeeBRL.IsNegative():
			return fmt.Errorf("warehouse schedule %q has negative parameters", s.Name)
		}
		seen[key] = true
	}
	return nil
}
