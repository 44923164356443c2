package landedcost

import (
	"errors"
	"fmt"

	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// Stage names a routing milestone.
type Stage string

const (
	Booked            Stage = "Booked"
	DepartedOrigin    Stage = "Departed Origin"
	ArrivalAtPort     Stage = "Arrival at Port" // starts the demurrage free time
	CustomsCleared    Stage = "Customs Cleared"
	DeliveredDomestic Stage = "Delivered"
)

// Milestone is a dated routing event of an import.
type Milestone struct {
	Stage Stage     `json:"stage"`
	Date  date.Date `json:"date"`
}

// ImportCostProfile is the part of an import record the engine works on.
type ImportCostProfile struct {
	ID                    string
	Items                 []CostLineItem
	ExTariffPercent       decimal.Decimal // granted duty relief, 0 to 100
	Milestones            []Milestone     // in the order they happened
	DemurrageFreeTimeDays int
}

// Arrival returns the date of the earliest dated ArrivalAtPort milestone, and false if the
// container has not arrived yet.
func (p ImportCostProfile) Arrival() (date.Date, bool) {
	return arrival(p.Milestones)
}

func arrival(milestones []Milestone) (arrived date.Date, ok bool) {
	for _, m := range milestones {
		if m.Stage == ArrivalAtPort && !m.Date.IsZero() && (!ok || m.Date.Before(arrived)) {
			arrived, ok = m.Date, true
		}
	}
	return arrived, ok
}

// Breakdown aggregates the profile's items.
func (p ImportCostProfile) Breakdown(rates *ExchangeRateTable) (CostBreakdown, error) {
	return Aggregate(p.Items, rates)
}

// Demurrage computes the demurrage exposure of the profile on day today.
func (p ImportCostProfile) Demurrage(today date.Date, dailyRateUSD decimal.Decimal) (DemurrageExposure, bool) {
	return ComputeDemurrageExposure(p.Milestones, p.DemurrageFreeTimeDays, today, dailyRateUSD)
}

// ImportItems pairs every item with the profile ID, as expected by ProjectCashFlow.
func (p ImportCostProfile) ImportItems() []ImportItem {
	items := make([]ImportItem, len(p.Items))
	for i, item := range p.Items {
		items[i] = ImportItem{ImportID: p.ID, Item: item}
	}
	return items
}

// Validate checks the profile and all its items, and returns all failures joined.
func (p ImportCostProfile) Validate() error {
	var errs []error
	if p.ExTariffPercent.IsNegative() || p.ExTariffPercent.GreaterThan(hundred) {
		errs = append(errs, fmt.Errorf("ex-tariff percent %s is outside [0, 100]", p.ExTariffPercent))
	}
	if p.DemurrageFreeTimeDays < 0 {
		errs = append(errs, fmt.Errorf("free time %d days is negative", p.DemurrageFreeTimeDays))
	}
	for i, m := range p.Milestones {
		if m.Date.IsZero() {
			errs = append(errs, fmt.Errorf("milestone #%d %q has no date", i+1, m.Stage))
		}
	}
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid import %q: %w", p.ID, err)
	}
	return nil
}
