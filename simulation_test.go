package landedcost

import (
	"errors"
	"slices"
	"testing"
)

func TestSimulate(t *testing.T) {
	profile := ImportCostProfile{
		ID:              "IMP-001",
		Items:           sampleItems(),
		ExTariffPercent: dec("100"),
	}
	schedule := WarehouseFeeSchedule{Name: "port-terminal", PercentOfCIF: dec("0.003"), MinimumFeeBRL: dec("500")}

	tests := []struct {
		name        string
		params      SimulationParameters
		wantII      Money
		wantFee     Money
		wantSavings Money
		wantCats    []Category
	}{
		{
			name:        "nothing simulated",
			params:      SimulationParameters{},
			wantII:      BRLs(12500),
			wantFee:     BRLs(0),
			wantSavings: BRLs(0),
			wantCats:    []Category{FOB, InternationalFreight, Insurance, II, IPI, BrokerFees, PortFees},
		},
		{
			name:        "ex-tariff only",
			params:      SimulationParameters{ApplyExTariff: true},
			wantII:      BRLs(0),
			wantFee:     BRLs(0),
			wantSavings: BRLs(12500),
			wantCats:    []Category{FOB, InternationalFreight, Insurance, II, IPI, BrokerFees, PortFees},
		},
		{
			// CIF is 116100, 0.3% is 348.30 so the 500 minimum applies, twice.
			name:        "ex-tariff, storage and fees",
			params:      SimulationParameters{ApplyExTariff: true, WarehouseSchedule: &schedule, StorageDays: 20, AdditionalFeesBRL: dec("250")},
			wantII:      BRLs(0),
			wantFee:     BRLs(1000),
			wantSavings: BRLs(12500 - 1000 - 250),
			wantCats:    []Category{FOB, InternationalFreight, Insurance, II, IPI, BrokerFees, PortFees, SimulatedWarehouse, SimulatedAdditionalFees},
		},
		{
			name:        "schedule selected with zero days",
			params:      SimulationParameters{WarehouseSchedule: &schedule},
			wantII:      BRLs(12500),
			wantFee:     BRLs(0),
			wantSavings: BRLs(0),
			wantCats:    []Category{FOB, InternationalFreight, Insurance, II, IPI, BrokerFees, PortFees, SimulatedWarehouse},
		},
		{
			name:        "negative fees are ignored",
			params:      SimulationParameters{AdditionalFeesBRL: dec("-100")},
			wantII:      BRLs(12500),
			wantFee:     BRLs(0),
			wantSavings: BRLs(0),
			wantCats:    []Category{FOB, InternationalFreight, Insurance, II, IPI, BrokerFees, PortFees},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simulate(profile, tt.params, testRates())
			if err != nil {
				t.Fatalf("Simulate() error = %v", err)
			}
			assertMoney(t, "Original.Total()", got.Original.Total(), BRLs(135800))
			assertMoney(t, "Simulated II", got.Simulated.Amount(II), tt.wantII)
			assertMoney(t, "WarehouseFee", got.WarehouseFee, tt.wantFee)
			assertMoney(t, "Savings()", got.Savings(), tt.wantSavings)
			if cats := got.Categories(); !slices.Equal(cats, tt.wantCats) {
				t.Errorf("Categories() = %v, want %v", cats, tt.wantCats)
			}
			if got.Original.Has(SimulatedWarehouse) || got.Original.Has(SimulatedAdditionalFees) {
				t.Error("the original breakdown must not carry synthetic categories")
			}
		})
	}
}

func TestSimulate_Delta(t *testing.T) {
	profile := ImportCostProfile{Items: sampleItems(), ExTariffPercent: dec("40")}
	got, err := Simulate(profile, SimulationParameters{ApplyExTariff: true}, testRates())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	assertMoney(t, "Delta(II)", got.Delta(II), BRLs(-5000))
	assertMoney(t, "Delta(FOB)", got.Delta(FOB), BRLs(0))
}

func TestSimulate_RatesUnavailable(t *testing.T) {
	_, err := Simulate(ImportCostProfile{Items: sampleItems()}, SimulationParameters{}, nil)
	if !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("Simulate(nil rates) error = %v, want ErrRatesUnavailable", err)
	}
}
