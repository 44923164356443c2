package landedcost

import (
	"testing"
)

// cifBreakdown returns a breakdown with a CIF of 100,000 BRL.
func cifBreakdown(t *testing.T) CostBreakdown {
	t.Helper()
	b, err := Aggregate([]CostLineItem{
		item("fob", FOB, "18000", USD),     // 90000
		item("freight", InternationalFreight, "8000", BRL),
		item("ins", Insurance, "2000", BRL),
		item("ii", II, "9999", BRL), // not part of CIF
	}, testRates())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	assertMoney(t, "CIF()", b.CIF(), BRLs(100000))
	return b
}

func TestStoragePeriods(t *testing.T) {
	tests := []struct{ days, want int }{
		{-3, 0},
		{0, 0},
		{1, 1},
		{14, 1},
		{15, 1},
		{16, 2},
		{30, 2},
		{31, 3},
	}
	for _, tt := range tests {
		if got := StoragePeriods(tt.days); got != tt.want {
			t.Errorf("StoragePeriods(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestSimulateWarehouseFee(t *testing.T) {
	b := cifBreakdown(t)
	minimumWins := WarehouseFeeSchedule{Name: "min", PercentOfCIF: dec("0.003"), MinimumFeeBRL: dec("500")}
	percentWins := WarehouseFeeSchedule{Name: "pct", PercentOfCIF: dec("0.01"), MinimumFeeBRL: dec("500")}

	tests := []struct {
		name     string
		schedule WarehouseFeeSchedule
		days     int
		want     Money
	}{
		{"minimum floor, one period", minimumWins, 15, BRLs(500)},
		{"minimum floor applies per period", minimumWins, 16, BRLs(1000)},
		{"percent of CIF", percentWins, 10, BRLs(1000)},
		{"percent of CIF, three periods", percentWins, 45, BRLs(3000)},
		{"zero days bills nothing", minimumWins, 0, BRLs(0)},
		{"negative days bills nothing", minimumWins, -10, BRLs(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, "SimulateWarehouseFee()", SimulateWarehouseFee(b, tt.schedule, tt.days), tt.want)
		})
	}
}

func TestSimulateWarehouseFee_EmptyBreakdown(t *testing.T) {
	b, _ := Aggregate(nil, testRates())
	s := WarehouseFeeSchedule{PercentOfCIF: dec("0.003"), MinimumFeeBRL: dec("500")}
	assertMoney(t, "fee", SimulateWarehouseFee(b, s, 20), BRLs(1000))
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultCatalog().Validate() = %v", err)
	}
	s, err := c.Lookup("DRY-PORT")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if s.Name != "dry-port" {
		t.Errorf("Lookup() = %q", s.Name)
	}
	if _, err := c.Lookup("dry-prot"); err == nil {
		t.Error("Lookup() of an unknown name should fail")
	}

	dup := append(DefaultCatalog(), WarehouseFeeSchedule{Name: "Port-Terminal"})
	if err := dup.Validate(); err == nil {
		t.Error("Validate() should reject duplicated names")
	}
}
